// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package template renders the handlebars templates that make up a stackform
// configuration and parses the rendered text into YAML documents.
package template

import (
	"fmt"

	"github.com/aymerick/raymond"
)

// Renderer renders handlebars template text against a context.
type Renderer struct{}

// New returns a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render substitutes the context's values into text and returns the result.
// The output of a render is YAML, not HTML, so every scalar in the context is
// wrapped in a SafeString to keep the engine from escaping substituted values.
func (r *Renderer) Render(text string, context interface{}) (string, error) {
	tpl, err := raymond.Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	out, err := tpl.Exec(unescaped(context))
	if err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return out, nil
}

// unescaped returns a copy of v with every string wrapped in a
// raymond.SafeString so substitutions are inserted verbatim.
func unescaped(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return raymond.SafeString(val)
	case map[string]string:
		out := make(map[string]interface{}, len(val))
		for k, s := range val {
			out[k] = raymond.SafeString(s)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			out[k] = unescaped(child)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = unescaped(child)
		}
		return out
	default:
		return v
	}
}
