// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the stackform subcommands.
package cli

import (
	"os"
	"path/filepath"

	"github.com/aws/stackform-cli/internal/pkg/dotenv"
	"github.com/aws/stackform-cli/internal/pkg/manifest"
	"github.com/aws/stackform-cli/internal/pkg/workspace"
	"github.com/spf13/afero"
)

// resolveVars holds the flags shared by every command that resolves the
// configuration.
type resolveVars struct {
	stackName     string
	stage         string
	configPath    string
	stageFilePath string
	envFilePath   string
}

// resolveConfig runs the whole resolution pipeline: variable store, stage
// defaults, and the two-pass config render. The returned directory holds the
// configuration file; function source paths are relative to it.
func resolveConfig(fs afero.Fs, vars resolveVars) (manifest.Document, string, error) {
	configPath := vars.configPath
	stagePath := ""
	envPath := ""
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		ws, err := workspace.New(fs, wd)
		if err != nil {
			return nil, "", err
		}
		configPath = ws.ConfigPath()
		stagePath = ws.StagePath()
		envPath = ws.EnvPath()
	} else {
		dir := filepath.Dir(configPath)
		stagePath = filepath.Join(dir, workspace.StageFileName)
		envPath = filepath.Join(dir, workspace.EnvFileName)
	}
	if vars.stageFilePath != "" {
		stagePath = vars.stageFilePath
	}
	if vars.envFilePath != "" {
		envPath = vars.envFilePath
	}

	store, err := dotenv.Read(fs, envPath)
	if err != nil {
		return nil, "", err
	}
	stageVars, err := manifest.ResolveStage(fs, stagePath, store, vars.stage)
	if err != nil {
		return nil, "", err
	}
	doc, err := manifest.Resolve(fs, configPath, stageVars, store, manifest.Overrides{
		StackName: vars.stackName,
		Stage:     vars.stage,
	})
	if err != nil {
		return nil, "", err
	}
	return doc, filepath.Dir(configPath), nil
}
