// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rivaas.dev/hateoas"
)

const envPrefix = "LIBRARY"

// Config holds the settings of the library server.
type Config struct {
	Addr          string `mapstructure:"addr" validate:"required,hostname_port"`
	BaseURL       string `mapstructure:"base-url" validate:"omitempty,url"`
	AbsoluteLinks bool   `mapstructure:"absolute-links"`
	Verbosity     string `mapstructure:"verbosity" validate:"oneof=maximum minimal max min"`
	ProblemsURL   string `mapstructure:"problems-url" validate:"omitempty,url"`
	Endpoints     string `mapstructure:"endpoints"`
	Seed          bool   `mapstructure:"seed"`
	MetricsPath   string `mapstructure:"metrics-path" validate:"omitempty,startswith=/"`
	OpenAPIPath   string `mapstructure:"openapi-path" validate:"omitempty,startswith=/"`
	LogFormat     string `mapstructure:"log-format" validate:"oneof=json console"`
	LogLevel      string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
}

// bindFlags declares the server flags and their defaults.
func bindFlags(fs *pflag.FlagSet) {
	fs.String("addr", ":8080", "listen address")
	fs.String("base-url", "", "absolute base URL for links (e.g. https://api.example.com)")
	fs.Bool("absolute-links", false, "render absolute links using the request host")
	fs.String("verbosity", "maximum", "link verbosity: maximum or minimal")
	fs.String("problems-url", "", "base URL of problem type URIs")
	fs.String("endpoints", "", "extra endpoint table file (YAML, JSON or TOML)")
	fs.Bool("seed", true, "start with sample customers and books")
	fs.String("metrics-path", "/metrics", "path of the Prometheus endpoint, empty to disable")
	fs.String("openapi-path", "/openapi.json", "path of the OpenAPI document, empty to disable")
	fs.String("log-format", "console", "log format: json or console")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
}

// loadConfig merges flags, environment and the optional config file.
func loadConfig(fs *pflag.FlagSet, path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Verbosity = strings.ToLower(cfg.Verbosity)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fe := verrs[0]
			return Config{}, fmt.Errorf("invalid config: %s: %q fails %q", fe.Field(), fe.Value(), fe.Tag())
		}
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// verbosity returns the parsed link verbosity.
func (c Config) verbosity() hateoas.Verbosity {
	v, err := hateoas.ParseVerbosity(c.Verbosity)
	if err != nil {
		return hateoas.Maximum
	}
	return v
}
