// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import "fmt"

// ErrStackNotFound occurs when a stack with the given name does not exist.
type ErrStackNotFound struct {
	Name string
}

func (e *ErrStackNotFound) Error() string {
	return fmt.Sprintf("stack named %s cannot be found", e.Name)
}

// ErrStackUpdateInProgress occurs when a stack is already being updated.
type ErrStackUpdateInProgress struct {
	Name   string
	Status string
}

func (e *ErrStackUpdateInProgress) Error() string {
	return fmt.Sprintf("stack %s is currently being updated (status %s) and cannot be deployed to", e.Name, e.Status)
}

// ErrChangeSetEmpty occurs when the change set does not carry any changes.
type ErrChangeSetEmpty struct {
	Stack     string
	ChangeSet string
}

func (e *ErrChangeSetEmpty) Error() string {
	return fmt.Sprintf("change set with name %s for stack %s has no changes", e.ChangeSet, e.Stack)
}
