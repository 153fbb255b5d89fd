// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package workspace locates the project's configuration files on disk.
package workspace

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Well-known file names inside a stackform workspace.
const (
	ConfigFileName = "stackform.yml"
	StageFileName  = "stage.yml"
	EnvFileName    = ".env"
)

// Workspace is the directory holding the config file and its siblings.
type Workspace struct {
	fs  afero.Fs
	dir string
}

// New walks up from workingDir until it finds the config file and returns the
// workspace rooted there.
func New(fs afero.Fs, workingDir string) (*Workspace, error) {
	dir := workingDir
	for {
		exists, err := afero.Exists(fs, filepath.Join(dir, ConfigFileName))
		if err != nil {
			return nil, err
		}
		if exists {
			return &Workspace{fs: fs, dir: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, &ErrWorkspaceNotFound{FileName: ConfigFileName, StartDir: workingDir}
		}
		dir = parent
	}
}

// Dir returns the workspace root directory.
func (ws *Workspace) Dir() string {
	return ws.dir
}

// ConfigPath returns the path of the config file.
func (ws *Workspace) ConfigPath() string {
	return filepath.Join(ws.dir, ConfigFileName)
}

// StagePath returns the path of the stage defaults file.
func (ws *Workspace) StagePath() string {
	return filepath.Join(ws.dir, StageFileName)
}

// EnvPath returns the path of the variable store file.
func (ws *Workspace) EnvPath() string {
	return filepath.Join(ws.dir, EnvFileName)
}
