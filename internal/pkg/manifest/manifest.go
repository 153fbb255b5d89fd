// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package manifest resolves the layered stackform configuration into the
// final document handed to the deployment engine.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the configuration document produced by Resolve. It stays a
// loosely-typed YAML tree so downstream templates can address arbitrary keys;
// typed projections are decoded from it on demand and written back after
// mutation.
type Document map[string]interface{}

// StackName returns the document's stack name.
func (d Document) StackName() string {
	s, _ := d["stackName"].(string)
	return s
}

// Stage returns the document's stage name.
func (d Document) Stage() string {
	s, _ := d["stage"].(string)
	return s
}

// Function is the typed projection of one "lambdas" entry. Keys that the CLI
// does not know about are carried through the inline map untouched.
type Function struct {
	Name       string                   `yaml:"name"`
	Handler    string                   `yaml:"handler"`
	Source     string                   `yaml:"source,omitempty"`
	S3Source   string                   `yaml:"s3Source,omitempty"`
	Memory     int                      `yaml:"memory,omitempty"`
	Timeout    int                      `yaml:"timeout,omitempty"`
	Envs       []EnvVar                 `yaml:"envs"`
	FullName   string                   `yaml:"fullName,omitempty"`
	APIGateway []Route                  `yaml:"apiGateway,omitempty"`
	Services   []map[string]interface{} `yaml:"services,omitempty"`

	Extra map[string]interface{} `yaml:",inline"`
}

// EnvVar is one environment variable passed to a function.
type EnvVar struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Route declares one HTTP route served by a function.
type Route struct {
	API    string `yaml:"api"`
	Path   string `yaml:"path"`
	Method string `yaml:"method"`
	Cors   bool   `yaml:"cors,omitempty"`
}

// API declares a logical REST API that routes attach to.
type API struct {
	Name string `yaml:"name"`

	Extra map[string]interface{} `yaml:",inline"`
}

// Functions decodes the document's "lambdas" section. Returns nil when the
// section is absent.
func (d Document) Functions() ([]Function, error) {
	raw, ok := d["lambdas"]
	if !ok {
		return nil, nil
	}
	var out []Function
	if err := reencode(raw, &out); err != nil {
		return nil, fmt.Errorf(`decode "lambdas": %w`, err)
	}
	return out, nil
}

// SetFunctions writes the typed functions back into the document.
func (d Document) SetFunctions(fns []Function) error {
	return d.setSection("lambdas", fns)
}

// APIs decodes the document's "apis" section. Returns nil when the section is
// absent.
func (d Document) APIs() ([]API, error) {
	raw, ok := d["apis"]
	if !ok {
		return nil, nil
	}
	var out []API
	if err := reencode(raw, &out); err != nil {
		return nil, fmt.Errorf(`decode "apis": %w`, err)
	}
	return out, nil
}

func (d Document) setSection(key string, v interface{}) error {
	var out interface{}
	if err := reencode(v, &out); err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	d[key] = out
	return nil
}

// reencode round-trips a value through YAML to convert between the loose tree
// and typed projections.
func reencode(in, out interface{}) error {
	b, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}
