// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package workspace

import "fmt"

// ErrWorkspaceNotFound occurs when none of the parent directories hold a config file.
type ErrWorkspaceNotFound struct {
	FileName string
	StartDir string
}

func (e *ErrWorkspaceNotFound) Error() string {
	return fmt.Sprintf("couldn't find %s in %s or any parent directory", e.FileName, e.StartDir)
}
