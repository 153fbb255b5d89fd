// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package manifest

import "fmt"

const (
	defaultMemory  = 1024
	defaultTimeout = 300
)

// applyFunctionDefaults validates each declared function, fills unset
// memory/timeout/envs fields, stamps each service record with its owning
// function's name, and computes the fully-qualified function name. Running it
// over its own output is a no-op.
func applyFunctionDefaults(doc Document) error {
	fns, err := doc.Functions()
	if err != nil {
		return err
	}
	if fns == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(fns))
	for i := range fns {
		fn := &fns[i]
		if err := fn.validate(); err != nil {
			return err
		}
		if _, ok := seen[fn.Name]; ok {
			return &ErrDuplicateFunction{Name: fn.Name}
		}
		seen[fn.Name] = struct{}{}
		if fn.Memory == 0 {
			fn.Memory = defaultMemory
		}
		if fn.Timeout == 0 {
			fn.Timeout = defaultTimeout
		}
		if fn.Envs == nil {
			fn.Envs = []EnvVar{}
		}
		for _, svc := range fn.Services {
			svc["lambdaName"] = fn.Name
		}
		fn.FullName = fmt.Sprintf("%s-%s-%s", doc.StackName(), doc.Stage(), fn.Name)
	}
	return doc.SetFunctions(fns)
}

func (f *Function) validate() error {
	if f.Name == "" {
		return &ErrMissingFunctionField{Field: "name"}
	}
	if f.Handler == "" {
		return &ErrMissingFunctionField{Field: "handler", Function: f.Name}
	}
	if f.Source == "" && f.S3Source == "" {
		return &ErrFunctionSource{Function: f.Name, reason: "neither is set"}
	}
	if f.Source != "" && f.S3Source != "" {
		return &ErrFunctionSource{Function: f.Name, reason: "both are set"}
	}
	return nil
}
