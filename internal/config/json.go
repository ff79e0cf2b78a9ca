// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape accepted from
// a JSON file.
type StructuredJSONConfig struct {
	App struct {
		ProjectName string `json:"project_name"`
		Version     string `json:"version"`
		Description string `json:"description"`
		Environment string `json:"environment"`
		APIPrefix   string `json:"api_prefix"`
		Debug       bool   `json:"debug"`
		LogDir      string `json:"log_dir"`
	} `json:"app,omitempty"`

	Auth struct {
		SecretKey     string   `json:"secret_key"`
		Algorithm     string   `json:"algorithm"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	CORS struct {
		Origins string `json:"origins"`
	} `json:"cors,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ProjectName: jsonCfg.App.ProjectName,
			Version:     jsonCfg.App.Version,
			Description: jsonCfg.App.Description,
			Environment: jsonCfg.App.Environment,
			APIPrefix:   jsonCfg.App.APIPrefix,
			Debug:       jsonCfg.App.Debug,
			LogDir:      jsonCfg.App.LogDir,
		},
		Auth: Auth{
			SecretKey:     jsonCfg.Auth.SecretKey,
			Algorithm:     jsonCfg.Auth.Algorithm,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		CORS: CORS{
			Origins: jsonCfg.CORS.Origins,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
