// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		allowsAny bool
		list      []string
		allowed   []string
		denied    []string
	}{
		{
			name:      "wildcard",
			raw:       "*",
			allowsAny: true,
			list:      []string{"*"},
			allowed:   []string{"https://any.example", "http://localhost:3000"},
		},
		{
			name:    "comma list with spaces",
			raw:     " https://a.example , https://b.example",
			list:    []string{"https://a.example", "https://b.example"},
			allowed: []string{"https://a.example", "https://b.example"},
			denied:  []string{"https://c.example", " https://a.example"},
		},
		{
			name:    "empty entries dropped",
			raw:     "https://a.example,,  ,",
			list:    []string{"https://a.example"},
			allowed: []string{"https://a.example"},
			denied:  []string{""},
		},
		{
			name:      "wildcard inside list",
			raw:       "https://a.example,*",
			allowsAny: true,
			list:      []string{"*"},
			allowed:   []string{"https://z.example"},
		},
		{
			name:   "empty",
			raw:    "",
			list:   []string{},
			denied: []string{"https://a.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := ParseOrigins(tt.raw)

			assert.Equal(t, tt.allowsAny, o.AllowsAny())
			assert.Equal(t, tt.list, o.List())
			for _, origin := range tt.allowed {
				assert.True(t, o.Allows(origin), origin)
			}
			for _, origin := range tt.denied {
				assert.False(t, o.Allows(origin), origin)
			}
		})
	}
}

func TestCORS_AllowedOrigins(t *testing.T) {
	o := CORS{Origins: "https://a.example"}.AllowedOrigins()
	assert.True(t, o.Allows("https://a.example"))
	assert.False(t, o.AllowsAny())
}
