// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package dotenv loads the flat variable store from a dotenv-style file.
package dotenv

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// Read parses the key=value pairs in the file at path. A missing file is not
// an error; deployments can run without a variable store.
func Read(fs afero.Fs, path string) (map[string]string, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	f, err := ini.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", path, err)
	}
	vars := map[string]string{}
	for _, key := range f.Section(ini.DefaultSection).Keys() {
		vars[key.Name()] = key.String()
	}
	return vars, nil
}
