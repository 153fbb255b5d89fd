// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/stackform-cli/internal/pkg/template"
	"github.com/aws/stackform-cli/internal/pkg/term/log"
	"github.com/spf13/afero"
)

// defaultStageSection is the section every stage overlays.
const defaultStageSection = "default"

// ResolveStage loads the stage defaults file and returns the effective
// variables for the selected stage: the "default" section with the selected
// stage's keys merged over it. A missing stage file is not an error; the
// resolver continues with no stage variables.
func ResolveStage(fs afero.Fs, path string, vars map[string]string, stage string) (map[string]interface{}, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Stage file %s does not exist, continuing without stage variables.\n", path)
			return map[string]interface{}{}, nil
		}
		return nil, fmt.Errorf("read stage file %s: %w", path, err)
	}
	rendered, err := template.New().Render(string(raw), vars)
	if err != nil {
		return nil, fmt.Errorf("render stage file %s: %w", path, err)
	}
	doc, err := template.ParseYAML(fs, rendered, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("parse stage file %s: %w", path, err)
	}

	effective := map[string]interface{}{}
	if raw, ok := doc[defaultStageSection]; ok {
		defaults, ok := raw.(map[string]interface{})
		if !ok {
			return nil, &ErrStageSectionNotMapping{Path: path, Section: defaultStageSection}
		}
		for k, v := range defaults {
			effective[k] = v
		}
	}
	if stage == "" {
		return effective, nil
	}
	section, ok := doc[stage]
	if !ok {
		return effective, nil
	}
	overlay, ok := section.(map[string]interface{})
	if !ok {
		return nil, &ErrStageSectionNotMapping{Path: path, Section: stage}
	}
	// The overlay wins key by key. The merge is deliberately shallow so a
	// stage can replace a nested value wholesale.
	for k, v := range overlay {
		effective[k] = v
	}
	return effective, nil
}
