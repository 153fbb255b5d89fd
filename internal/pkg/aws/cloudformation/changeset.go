// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/google/uuid"
)

// The change set name must match [a-zA-Z][-a-zA-Z0-9]*. A generated UUID can
// start with a number, prefixing it with a word guarantees a letter.
const fmtChangeSetName = "stackform-%s"

type changeSetAPI interface {
	CreateChangeSet(*cloudformation.CreateChangeSetInput) (*cloudformation.CreateChangeSetOutput, error)
	WaitUntilChangeSetCreateCompleteWithContext(aws.Context, *cloudformation.DescribeChangeSetInput, ...request.WaiterOption) error
	DescribeChangeSet(*cloudformation.DescribeChangeSetInput) (*cloudformation.DescribeChangeSetOutput, error)
	ExecuteChangeSet(*cloudformation.ExecuteChangeSetInput) (*cloudformation.ExecuteChangeSetOutput, error)
	DeleteChangeSet(*cloudformation.DeleteChangeSetInput) (*cloudformation.DeleteChangeSetOutput, error)
}

type changeSet struct {
	name      string
	stackName string
	client    changeSetAPI
}

type changeSetDescription struct {
	executionStatus string
	statusReason    string
	changes         []*cloudformation.Change
}

func newChangeSet(client changeSetAPI, stackName string) (*changeSet, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate random id for change set: %w", err)
	}
	return &changeSet{
		name:      fmt.Sprintf(fmtChangeSetName, id.String()),
		stackName: stackName,
		client:    client,
	}, nil
}

func (cs *changeSet) String() string {
	return fmt.Sprintf("change set %s for stack %s", cs.name, cs.stackName)
}

// createAndWait creates the change set and waits until its creation completes.
func (cs *changeSet) createAndWait(stack *Stack, changeSetType string) error {
	_, err := cs.client.CreateChangeSet(&cloudformation.CreateChangeSetInput{
		ChangeSetName: aws.String(cs.name),
		StackName:     aws.String(cs.stackName),
		ChangeSetType: aws.String(changeSetType),
		TemplateBody:  aws.String(stack.Template),
		Parameters:    stack.sdkParameters(),
		Tags:          stack.sdkTags(),
		Capabilities: aws.StringSlice([]string{
			cloudformation.CapabilityCapabilityIam,
			cloudformation.CapabilityCapabilityNamedIam,
		}),
	})
	if err != nil {
		return fmt.Errorf("create %s: %w", cs, err)
	}
	err = cs.client.WaitUntilChangeSetCreateCompleteWithContext(context.Background(), &cloudformation.DescribeChangeSetInput{
		ChangeSetName: aws.String(cs.name),
		StackName:     aws.String(cs.stackName),
	}, waiters...)
	if err != nil {
		// An empty change set fails its creation; let describe() decide
		// whether this is the empty-changes case.
		descr, descrErr := cs.describe()
		if descrErr != nil || len(descr.changes) > 0 {
			return fmt.Errorf("wait for creation of %s: %w", cs, err)
		}
	}
	return nil
}

// describe collects all the changes that the change set will apply.
func (cs *changeSet) describe() (*changeSetDescription, error) {
	var executionStatus, statusReason string
	var changes []*cloudformation.Change
	var nextToken *string
	for {
		out, err := cs.client.DescribeChangeSet(&cloudformation.DescribeChangeSetInput{
			ChangeSetName: aws.String(cs.name),
			StackName:     aws.String(cs.stackName),
			NextToken:     nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", cs, err)
		}
		executionStatus = aws.StringValue(out.ExecutionStatus)
		statusReason = aws.StringValue(out.StatusReason)
		changes = append(changes, out.Changes...)
		nextToken = out.NextToken
		if nextToken == nil {
			break
		}
	}
	return &changeSetDescription{
		executionStatus: executionStatus,
		statusReason:    statusReason,
		changes:         changes,
	}, nil
}

func (cs *changeSet) execute() error {
	_, err := cs.client.ExecuteChangeSet(&cloudformation.ExecuteChangeSetInput{
		ChangeSetName: aws.String(cs.name),
		StackName:     aws.String(cs.stackName),
	})
	if err != nil {
		return fmt.Errorf("execute %s: %w", cs, err)
	}
	return nil
}

func (cs *changeSet) delete() error {
	_, err := cs.client.DeleteChangeSet(&cloudformation.DeleteChangeSetInput{
		ChangeSetName: aws.String(cs.name),
		StackName:     aws.String(cs.stackName),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", cs, err)
	}
	return nil
}
