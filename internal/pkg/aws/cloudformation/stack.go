// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
)

// Stack represents a CloudFormation stack to deploy.
type Stack struct {
	Name       string
	Template   string
	Parameters map[string]string
	Tags       map[string]string
}

// StackDescription is an alias for the SDK's stack description.
type StackDescription cloudformation.Stack

func (s *Stack) sdkParameters() []*cloudformation.Parameter {
	if len(s.Parameters) == 0 {
		return nil
	}
	out := make([]*cloudformation.Parameter, 0, len(s.Parameters))
	for key, value := range s.Parameters {
		out = append(out, &cloudformation.Parameter{
			ParameterKey:   aws.String(key),
			ParameterValue: aws.String(value),
		})
	}
	return out
}

func (s *Stack) sdkTags() []*cloudformation.Tag {
	if len(s.Tags) == 0 {
		return nil
	}
	out := make([]*cloudformation.Tag, 0, len(s.Tags))
	for key, value := range s.Tags {
		out = append(out, &cloudformation.Tag{
			Key:   aws.String(key),
			Value: aws.String(value),
		})
	}
	return out
}
