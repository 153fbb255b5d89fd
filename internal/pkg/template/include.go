// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const includeTag = "!include"

// maxIncludeDepth bounds chains of files that include other files.
const maxIncludeDepth = 10

// ParseYAML parses text as a YAML document. A scalar node tagged with
// "!include <path>" is replaced by the parsed content of the referenced file
// before the document is decoded; relative paths are resolved against dir.
// Included files may themselves contain include directives.
func ParseYAML(fs afero.Fs, text, dir string) (map[string]interface{}, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return map[string]interface{}{}, nil
	}
	if err := resolveIncludes(fs, &root, dir, 0); err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := root.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return out, nil
}

func resolveIncludes(fs afero.Fs, node *yaml.Node, dir string, depth int) error {
	if node.Kind == yaml.ScalarNode && node.Tag == includeTag {
		if depth >= maxIncludeDepth {
			return &ErrIncludeChainTooDeep{Path: node.Value, MaxDepth: maxIncludeDepth}
		}
		path := node.Value
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		raw, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("read included file %s: %w", path, err)
		}
		var included yaml.Node
		if err := yaml.Unmarshal(raw, &included); err != nil {
			return fmt.Errorf("parse included file %s: %w", path, err)
		}
		if included.Kind != yaml.DocumentNode || len(included.Content) == 0 {
			return &ErrEmptyInclude{Path: path}
		}
		content := included.Content[0]
		if err := resolveIncludes(fs, content, filepath.Dir(path), depth+1); err != nil {
			return err
		}
		*node = *content
		return nil
	}
	for _, child := range node.Content {
		if err := resolveIncludes(fs, child, dir, depth); err != nil {
			return err
		}
	}
	return nil
}
