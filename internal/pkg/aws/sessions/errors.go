// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sessions

// errMissingRegion occurs when the region is missing from the session config.
type errMissingRegion struct{}

func (e *errMissingRegion) Error() string {
	return "missing region configuration, set the AWS_REGION environment variable or configure a default profile"
}
