// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package archive zips function source directories for upload.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Zip walks root and returns a zip of every file under it, with entry names
// relative to root. The walk is lexical, so the same tree always produces the
// same entry order.
func Zip(fs afero.Fs, root string) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		f, err := w.Create(filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("create zip entry %s: %w", rel, err)
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		_, err = f.Write(data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("zip %s: %w", root, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close zip of %s: %w", root, err)
	}
	return buf.Bytes(), nil
}
