// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package apigateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	testCases := map[string]struct {
		inAPIs   []string
		inRoutes []Route

		wanted    *Routing
		wantedErr error
	}{
		"returns nil when there is nothing to synthesize": {
			wanted: nil,
		},
		"shared prefixes collapse onto one resource": {
			inAPIs: []string{"Orders"},
			inRoutes: []Route{
				{Lambda: "list", API: "Orders", Path: "/foo", Method: "get"},
				{Lambda: "show", API: "Orders", Path: "/foo/bar", Method: "get"},
				{Lambda: "create", API: "Orders", Path: "/foo/baz", Method: "post"},
			},
			wanted: &Routing{
				Resources: []Resource{
					{Name: "ApiGateWayResourceFoo", PathPart: "foo", Parents: "!GetAtt Orders.RootResourceId", API: "Orders"},
					{Name: "ApiGateWayResourceFooBar", PathPart: "bar", Parents: "!Ref ApiGateWayResourceFoo", API: "Orders"},
					{Name: "ApiGateWayResourceFooBaz", PathPart: "baz", Parents: "!Ref ApiGateWayResourceFoo", API: "Orders"},
				},
				Methods: []Method{
					{Name: "FooGET", Method: "GET", Resource: "!Ref ApiGateWayResourceFoo", Lambda: "list", API: "Orders"},
					{Name: "FooBarGET", Method: "GET", Resource: "!Ref ApiGateWayResourceFooBar", Lambda: "show", API: "Orders"},
					{Name: "FooBazPOST", Method: "POST", Resource: "!Ref ApiGateWayResourceFooBaz", Lambda: "create", API: "Orders"},
				},
				Options: []OptionsMethod{},
				Dependencies: []Dependency{
					{Name: "Orders", Methods: []string{"FooGET", "FooBarGET", "FooBazPOST"}},
				},
			},
		},
		"variable segments strip braces and underscores": {
			inAPIs: []string{"Orders"},
			inRoutes: []Route{
				{Lambda: "show", API: "Orders", Path: "/{short_name}/items", Method: "get"},
			},
			wanted: &Routing{
				Resources: []Resource{
					{Name: "ApiGateWayResourceShortNameVar", PathPart: "{short_name}", Parents: "!GetAtt Orders.RootResourceId", API: "Orders"},
					{Name: "ApiGateWayResourceShortNameVarItems", PathPart: "items", Parents: "!Ref ApiGateWayResourceShortNameVar", API: "Orders"},
				},
				Methods: []Method{
					{Name: "ShortNameVarItemsGET", Method: "GET", Resource: "!Ref ApiGateWayResourceShortNameVarItems", Lambda: "show", API: "Orders"},
				},
				Options: []OptionsMethod{},
				Dependencies: []Dependency{
					{Name: "Orders", Methods: []string{"ShortNameVarItemsGET"}},
				},
			},
		},
		"cors routes sharing a leaf produce one preflight method": {
			inAPIs: []string{"Orders"},
			inRoutes: []Route{
				{Lambda: "show", API: "Orders", Path: "/foo", Method: "get", Cors: true},
				{Lambda: "create", API: "Orders", Path: "/foo", Method: "post", Cors: true},
			},
			wanted: &Routing{
				Resources: []Resource{
					{Name: "ApiGateWayResourceFoo", PathPart: "foo", Parents: "!GetAtt Orders.RootResourceId", API: "Orders"},
				},
				Methods: []Method{
					{Name: "FooGET", Method: "GET", Cors: true, Resource: "!Ref ApiGateWayResourceFoo", Lambda: "show", API: "Orders"},
					{Name: "FooPOST", Method: "POST", Cors: true, Resource: "!Ref ApiGateWayResourceFoo", Lambda: "create", API: "Orders"},
				},
				Options: []OptionsMethod{
					{Name: "FooOptions", Resource: "!Ref ApiGateWayResourceFoo", API: "Orders"},
				},
				Dependencies: []Dependency{
					{Name: "Orders", Methods: []string{"FooGET", "FooPOST"}},
				},
			},
		},
		"a root route attaches to the api's root resource": {
			inAPIs: []string{"Orders"},
			inRoutes: []Route{
				{Lambda: "home", API: "Orders", Path: "/", Method: "get", Cors: true},
			},
			wanted: &Routing{
				Resources: []Resource{},
				Methods: []Method{
					{Name: "RootGET", Method: "GET", Cors: true, Resource: "!GetAtt Orders.RootResourceId", Lambda: "home", API: "Orders"},
				},
				Options: []OptionsMethod{
					{Name: "RootOptions", Resource: "!GetAtt Orders.RootResourceId", API: "Orders"},
				},
				Dependencies: []Dependency{
					{Name: "Orders", Methods: []string{"RootGET"}},
				},
			},
		},
		"dependency lists keep api declaration order": {
			inAPIs: []string{"Admin", "Public"},
			inRoutes: []Route{
				{Lambda: "list", API: "Public", Path: "/items", Method: "get"},
				{Lambda: "purge", API: "Admin", Path: "/items", Method: "delete"},
			},
			wanted: &Routing{
				Resources: []Resource{
					// Insert/overwrite semantics: the later Admin route wins the
					// node's fields, the key keeps its first-reference position.
					{Name: "ApiGateWayResourceItems", PathPart: "items", Parents: "!GetAtt Admin.RootResourceId", API: "Admin"},
				},
				Methods: []Method{
					{Name: "ItemsGET", Method: "GET", Resource: "!Ref ApiGateWayResourceItems", Lambda: "list", API: "Public"},
					{Name: "ItemsDELETE", Method: "DELETE", Resource: "!Ref ApiGateWayResourceItems", Lambda: "purge", API: "Admin"},
				},
				Options: []OptionsMethod{},
				Dependencies: []Dependency{
					{Name: "Admin", Methods: []string{"ItemsDELETE"}},
					{Name: "Public", Methods: []string{"ItemsGET"}},
				},
			},
		},
		"fails on an undeclared api and names the identifier": {
			inAPIs: []string{"Other"},
			inRoutes: []Route{
				{Lambda: "show", API: "Missing", Path: "/foo", Method: "get"},
			},
			wantedErr: &ErrUndeclaredAPI{API: "Missing", Lambda: "show", Path: "/foo"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// WHEN
			routing, err := Synthesize(tc.inAPIs, tc.inRoutes)

			// THEN
			if tc.wantedErr != nil {
				var undeclared *ErrUndeclaredAPI
				require.True(t, errors.As(err, &undeclared))
				require.EqualError(t, err, tc.wantedErr.Error())
				require.Contains(t, err.Error(), "Missing")
				require.Nil(t, routing)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wanted, routing)
		})
	}
}

func TestSynthesize_DeclaredAPIsWithoutRoutes(t *testing.T) {
	// GIVEN an api list but no routes.
	routing, err := Synthesize([]string{"Orders"}, nil)

	// THEN the dependency list still carries one empty entry per api.
	require.NoError(t, err)
	require.Equal(t, &Routing{
		Resources:    []Resource{},
		Methods:      []Method{},
		Options:      []OptionsMethod{},
		Dependencies: []Dependency{{Name: "Orders", Methods: []string{}}},
	}, routing)
}
