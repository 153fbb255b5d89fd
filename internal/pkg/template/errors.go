// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import "fmt"

// ErrIncludeChainTooDeep occurs when include directives nest past maxIncludeDepth,
// usually because two files include each other.
type ErrIncludeChainTooDeep struct {
	Path     string
	MaxDepth int
}

func (e *ErrIncludeChainTooDeep) Error() string {
	return fmt.Sprintf("resolve include %s: chain exceeds %d levels, is there an include cycle?", e.Path, e.MaxDepth)
}

// ErrEmptyInclude occurs when an included file holds no YAML document.
type ErrEmptyInclude struct {
	Path string
}

func (e *ErrEmptyInclude) Error() string {
	return fmt.Sprintf("included file %s holds no YAML document", e.Path)
}
