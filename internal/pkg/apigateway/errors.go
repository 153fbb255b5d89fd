// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package apigateway

import "fmt"

// ErrUndeclaredAPI occurs when a route references an API identifier that is
// not declared under the top-level "apis" list.
type ErrUndeclaredAPI struct {
	API    string
	Lambda string
	Path   string
}

func (e *ErrUndeclaredAPI) Error() string {
	return fmt.Sprintf(`route %q of lambda %q references api %q which is not declared under "apis"`, e.Path, e.Lambda, e.API)
}
