// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package templates holds the static files embedded in the binary.
package templates

import (
	"embed"
	"fmt"
)

//go:embed cf
var fs embed.FS

// Read returns the contents of the embedded file under "templates/{path}".
func Read(path string) ([]byte, error) {
	dat, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	return dat, nil
}
