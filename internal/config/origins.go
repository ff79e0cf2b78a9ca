// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"strings"
)

// WildcardOrigin allows requests from any origin.
const WildcardOrigin = "*"

// Origins is the parsed form of the CORS origins setting: either a wildcard
// or a set of explicit origins.
type Origins struct {
	any bool
	set map[string]struct{}
}

// ParseOrigins parses raw as "*" or a comma-separated list. Entries are
// trimmed and empty entries are dropped. A list that contains "*" is treated
// as a wildcard.
func ParseOrigins(raw string) Origins {
	o := Origins{set: make(map[string]struct{})}

	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == WildcardOrigin {
			o.any = true
			continue
		}
		o.set[origin] = struct{}{}
	}

	return o
}

// AllowsAny reports whether every origin is allowed.
func (o Origins) AllowsAny() bool {
	return o.any
}

// Allows reports whether origin is allowed.
func (o Origins) Allows(origin string) bool {
	if o.any {
		return true
	}
	_, ok := o.set[origin]
	return ok
}

// List returns the explicit origins in sorted order, or ["*"] for a wildcard.
func (o Origins) List() []string {
	if o.any {
		return []string{WildcardOrigin}
	}

	list := make([]string, 0, len(o.set))
	for origin := range o.set {
		list = append(list, origin)
	}
	slices.Sort(list)

	return list
}
