// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigFile names the environment variable holding the config file path.
	EnvConfigFile = "CERTLIST2PEM_CONFIG_FILE"
	// EnvFormat names the environment variable overriding the output format.
	EnvFormat = "CERTLIST2PEM_FORMAT"

	// DefaultFormat is the output format used when nothing else is configured.
	DefaultFormat = "pem"
)

// ErrInvalidConfig indicates that a config file does not match the schema.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed schema.json
var schema string

// Schema returns the JSON Schema that config files are validated against.
func Schema() string { return schema }

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config holds settings shared by the CLI and the MCP server.
type Config struct {
	// Output controls how reports are rendered.
	Output struct {
		// Format is one of pem, json, yaml or table.
		Format string `json:"format" yaml:"format"`
		// Verify re-reads generated PEM bodies before writing the report.
		Verify bool `json:"verify" yaml:"verify"`
	} `json:"output" yaml:"output"`

	// Input controls parsing.
	Input struct {
		// Strict rejects content after the certificate list.
		Strict bool `json:"strict" yaml:"strict"`
	} `json:"input" yaml:"input"`

	// Logging controls diagnostics.
	Logging struct {
		// JSON switches to one JSON object per log line.
		JSON bool `json:"json" yaml:"json"`
		// Silent suppresses diagnostics entirely.
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"logging" yaml:"logging"`
}

// Default returns a Config with default values.
func Default() *Config {
	c := &Config{}
	c.Output.Format = DefaultFormat
	return c
}

// detectFormat determines the configuration file format based on file extension.
// Unknown extensions are treated as JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// decode unmarshals data into a generic document for schema validation.
func decode(data []byte, f format) (any, error) {
	var doc any
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	if doc == nil {
		// An empty file is an empty configuration.
		doc = map[string]any{}
	}
	return doc, nil
}

// validate checks doc against the embedded schema.
func validate(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

// Load reads configuration from path, falling back to defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. EnvConfigFile is checked if path is empty
//  3. Config file values override defaults (if a path is known)
//  4. EnvFormat overrides the output format
func Load(path string) (*Config, error) {
	c := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		doc, err := decode(data, detectFormat(path))
		if err != nil {
			return nil, err
		}
		if err := validate(doc); err != nil {
			return nil, err
		}

		// The document is schema-valid; round-trip it through JSON into the typed struct
		// so both file formats share one set of field tags.
		normalized, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize config: %w", err)
		}
		if err := json.Unmarshal(normalized, c); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}

		if c.Output.Format == "" {
			c.Output.Format = DefaultFormat
		}
	}

	if f := os.Getenv(EnvFormat); f != "" {
		c.Output.Format = strings.ToLower(strings.TrimSpace(f))
	}

	return c, nil
}
