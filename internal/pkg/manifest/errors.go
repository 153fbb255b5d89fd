// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package manifest

import "fmt"

// ErrMissingFunctionField occurs when a "lambdas" entry lacks a required field.
type ErrMissingFunctionField struct {
	Field    string
	Function string
}

func (e *ErrMissingFunctionField) Error() string {
	if e.Function == "" {
		return fmt.Sprintf("a lambda is missing the required field %q", e.Field)
	}
	return fmt.Sprintf("lambda %q is missing the required field %q", e.Function, e.Field)
}

// ErrFunctionSource occurs when a "lambdas" entry does not declare exactly one
// of "source" and "s3Source".
type ErrFunctionSource struct {
	Function string
	reason   string
}

func (e *ErrFunctionSource) Error() string {
	return fmt.Sprintf(`lambda %q must set exactly one of "source" and "s3Source": %s`, e.Function, e.reason)
}

// ErrStageSectionNotMapping occurs when a stage file section is a scalar or a
// sequence instead of a key/value mapping.
type ErrStageSectionNotMapping struct {
	Path    string
	Section string
}

func (e *ErrStageSectionNotMapping) Error() string {
	return fmt.Sprintf("section %q in stage file %s is not a mapping", e.Section, e.Path)
}

// ErrDuplicateFunction occurs when two "lambdas" entries share a name.
type ErrDuplicateFunction struct {
	Name string
}

func (e *ErrDuplicateFunction) Error() string {
	return fmt.Sprintf("lambda name %q is declared more than once", e.Name)
}
