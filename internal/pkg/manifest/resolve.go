// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/aws/stackform-cli/internal/pkg/apigateway"
	"github.com/aws/stackform-cli/internal/pkg/template"
	"github.com/imdario/mergo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Overrides are caller-supplied identity fields. They are applied after both
// render passes, so they always win over values declared in the template.
type Overrides struct {
	StackName string
	Stage     string
}

// Resolve computes the final configuration document from the config template.
//
// The config text is rendered, parsed with include support, serialized, and
// rendered a second time. Files pulled in by an include directive are spliced
// in at parse time and therefore bypass the first render pass; the second
// pass resolves the placeholders they carry. The function defaulter and the
// API routing synthesizer then run over the parsed result.
func Resolve(fs afero.Fs, configPath string, stageVars map[string]interface{}, vars map[string]string, overrides Overrides) (Document, error) {
	raw, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configPath, err)
	}

	context := map[string]interface{}{}
	for k, v := range stageVars {
		context[k] = v
	}
	store := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		store[k] = v
	}
	// The variable store wins over stage variables in the render context.
	if err := mergo.Merge(&context, store, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merge variables into render context: %w", err)
	}

	renderer := template.New()
	dir := filepath.Dir(configPath)

	firstPass, err := renderer.Render(string(raw), context)
	if err != nil {
		return nil, fmt.Errorf("first render pass over %s: %w", configPath, err)
	}
	doc, err := template.ParseYAML(fs, firstPass, dir)
	if err != nil {
		return nil, fmt.Errorf("parse config after first render pass: %w", err)
	}

	reserialized, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serialize config between render passes: %w", err)
	}
	secondPass, err := renderer.Render(string(reserialized), context)
	if err != nil {
		return nil, fmt.Errorf("second render pass over %s: %w", configPath, err)
	}
	final, err := template.ParseYAML(fs, secondPass, dir)
	if err != nil {
		return nil, fmt.Errorf("parse config after second render pass: %w", err)
	}

	if overrides.StackName != "" {
		final["stackName"] = overrides.StackName
	}
	if overrides.Stage != "" {
		final["stage"] = overrides.Stage
	}
	// Stage variables only fill gaps here: keys the document declares win.
	if err := mergo.Merge(&final, stageVars); err != nil {
		return nil, fmt.Errorf("merge stage variables into config: %w", err)
	}

	out := Document(final)
	if err := applyFunctionDefaults(out); err != nil {
		return nil, err
	}
	if err := synthesizeRouting(out); err != nil {
		return nil, err
	}
	return out, nil
}

// synthesizeRouting expands the functions' route declarations and merges the
// resulting entities into the document.
func synthesizeRouting(doc Document) error {
	fns, err := doc.Functions()
	if err != nil {
		return err
	}
	apis, err := doc.APIs()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(apis))
	for _, api := range apis {
		names = append(names, api.Name)
	}
	var routes []apigateway.Route
	for _, fn := range fns {
		for _, route := range fn.APIGateway {
			routes = append(routes, apigateway.Route{
				Lambda: fn.Name,
				API:    route.API,
				Path:   route.Path,
				Method: route.Method,
				Cors:   route.Cors,
			})
		}
	}
	routing, err := apigateway.Synthesize(names, routes)
	if err != nil {
		return fmt.Errorf("synthesize api routing: %w", err)
	}
	if routing == nil {
		return nil
	}
	if err := doc.setSection("apiResources", routing.Resources); err != nil {
		return err
	}
	if err := doc.setSection("apiMethods", routing.Methods); err != nil {
		return err
	}
	if err := doc.setSection("apiMethodsOptions", routing.Options); err != nil {
		return err
	}
	return doc.setSection("apiDependencies", routing.Dependencies)
}
