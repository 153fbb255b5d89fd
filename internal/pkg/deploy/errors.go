// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import "fmt"

// ErrBucketRequired occurs when a function declares a local source but no
// artifact bucket is configured.
type ErrBucketRequired struct {
	Function string
}

func (e *ErrBucketRequired) Error() string {
	return fmt.Sprintf(`lambda %q has a local source, set an artifact bucket with --bucket or the "bucket" key`, e.Function)
}
