// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cloudformation provides a client to deploy stackform stacks with AWS CloudFormation.
package cloudformation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
)

var waiters = []request.WaiterOption{
	request.WithWaiterDelay(request.ConstantWaiterDelay(5 * time.Second)), // How long to wait in between polls for updates.
	request.WithWaiterMaxAttempts(360),                                    // Wait for at most 30 mins for any cfn action.
}

type api interface {
	changeSetAPI

	DescribeStacks(*cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error)
	DeleteStack(*cloudformation.DeleteStackInput) (*cloudformation.DeleteStackOutput, error)
	WaitUntilStackCreateCompleteWithContext(aws.Context, *cloudformation.DescribeStacksInput, ...request.WaiterOption) error
	WaitUntilStackUpdateCompleteWithContext(aws.Context, *cloudformation.DescribeStacksInput, ...request.WaiterOption) error
	WaitUntilStackDeleteCompleteWithContext(aws.Context, *cloudformation.DescribeStacksInput, ...request.WaiterOption) error
}

// CloudFormation represents a client to make requests to AWS CloudFormation.
type CloudFormation struct {
	client api
}

// New creates a new CloudFormation client.
func New(s *session.Session) *CloudFormation {
	return &CloudFormation{
		client: cloudformation.New(s),
	}
}

// Deploy creates the stack if it does not exist yet and updates it otherwise,
// then blocks until the operation completes. A stack stuck in a failed create
// is deleted and re-created. Returns ErrChangeSetEmpty when the deployed
// template carries no changes.
func (c *CloudFormation) Deploy(stack *Stack) error {
	descr, err := c.Describe(stack.Name)
	if err != nil {
		var notFound *ErrStackNotFound
		if !errors.As(err, &notFound) {
			return err
		}
		return c.create(stack)
	}
	status := StackStatus(aws.StringValue(descr.StackStatus))
	switch {
	case status.requiresCleanup():
		if err := c.DeleteAndWait(stack.Name); err != nil {
			return fmt.Errorf("clean up previously failed stack %s: %w", stack.Name, err)
		}
		return c.create(stack)
	case status.InProgress():
		return &ErrStackUpdateInProgress{Name: stack.Name, Status: string(status)}
	default:
		return c.update(stack)
	}
}

// Describe returns the description of an existing stack. If the stack does
// not exist it returns ErrStackNotFound.
func (c *CloudFormation) Describe(name string) (*StackDescription, error) {
	out, err := c.client.DescribeStacks(&cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if stackDoesNotExist(err) {
			return nil, &ErrStackNotFound{Name: name}
		}
		return nil, fmt.Errorf("describe stack %s: %w", name, err)
	}
	if len(out.Stacks) == 0 {
		return nil, &ErrStackNotFound{Name: name}
	}
	descr := StackDescription(*out.Stacks[0])
	return &descr, nil
}

// DeleteAndWait removes the stack and blocks until the deletion completes.
// Deleting a stack that does not exist is a no-op.
func (c *CloudFormation) DeleteAndWait(name string) error {
	_, err := c.client.DeleteStack(&cloudformation.DeleteStackInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if stackDoesNotExist(err) {
			return nil
		}
		return fmt.Errorf("delete stack %s: %w", name, err)
	}
	err = c.client.WaitUntilStackDeleteCompleteWithContext(context.Background(), &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	}, waiters...)
	if err != nil {
		return fmt.Errorf("wait for deletion of stack %s: %w", name, err)
	}
	return nil
}

func (c *CloudFormation) create(stack *Stack) error {
	if err := c.executeChangeSet(stack, cloudformation.ChangeSetTypeCreate); err != nil {
		return err
	}
	err := c.client.WaitUntilStackCreateCompleteWithContext(context.Background(), &cloudformation.DescribeStacksInput{
		StackName: aws.String(stack.Name),
	}, waiters...)
	if err != nil {
		return fmt.Errorf("wait for creation of stack %s: %w", stack.Name, err)
	}
	return nil
}

func (c *CloudFormation) update(stack *Stack) error {
	if err := c.executeChangeSet(stack, cloudformation.ChangeSetTypeUpdate); err != nil {
		return err
	}
	err := c.client.WaitUntilStackUpdateCompleteWithContext(context.Background(), &cloudformation.DescribeStacksInput{
		StackName: aws.String(stack.Name),
	}, waiters...)
	if err != nil {
		return fmt.Errorf("wait for update of stack %s: %w", stack.Name, err)
	}
	return nil
}

func (c *CloudFormation) executeChangeSet(stack *Stack, changeSetType string) error {
	cs, err := newChangeSet(c.client, stack.Name)
	if err != nil {
		return err
	}
	if err := cs.createAndWait(stack, changeSetType); err != nil {
		return err
	}
	descr, err := cs.describe()
	if err != nil {
		return err
	}
	if len(descr.changes) == 0 {
		// The change set is empty, deleting it so it doesn't pollute the console.
		_ = cs.delete()
		return &ErrChangeSetEmpty{Stack: stack.Name, ChangeSet: cs.name}
	}
	return cs.execute()
}

// stackDoesNotExist returns true if the underlying error is a stack doesn't exist.
func stackDoesNotExist(err error) bool {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false
	}
	if aerr.Code() != "ValidationError" {
		return false
	}
	return strings.Contains(aerr.Message(), "does not exist")
}
