// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyFunctionDefaults(t *testing.T) {
	testCases := map[string]struct {
		inDoc Document

		wantedFns []Function
		wantedErr string
	}{
		"no-op without a lambdas section": {
			inDoc: Document{"stackName": "demo"},
		},
		"fills memory, timeout, envs and the full name": {
			inDoc: Document{
				"stackName": "demo",
				"stage":     "beta",
				"lambdas": []interface{}{
					map[string]interface{}{"name": "orders", "handler": "index.handler", "source": "./orders"},
				},
			},
			wantedFns: []Function{
				{
					Name:     "orders",
					Handler:  "index.handler",
					Source:   "./orders",
					Memory:   1024,
					Timeout:  300,
					Envs:     []EnvVar{},
					FullName: "demo-beta-orders",
				},
			},
		},
		"keeps fields that are already set": {
			inDoc: Document{
				"stackName": "demo",
				"stage":     "beta",
				"lambdas": []interface{}{
					map[string]interface{}{
						"name":    "orders",
						"handler": "index.handler",
						"source":  "./orders",
						"memory":  256,
						"timeout": 30,
						"envs":    []interface{}{map[string]interface{}{"name": "TABLE", "value": "orders"}},
					},
				},
			},
			wantedFns: []Function{
				{
					Name:     "orders",
					Handler:  "index.handler",
					Source:   "./orders",
					Memory:   256,
					Timeout:  30,
					Envs:     []EnvVar{{Name: "TABLE", Value: "orders"}},
					FullName: "demo-beta-orders",
				},
			},
		},
		"stamps services with the owning function's name": {
			inDoc: Document{
				"stackName": "demo",
				"stage":     "beta",
				"lambdas": []interface{}{
					map[string]interface{}{
						"name":    "orders",
						"handler": "index.handler",
						"source":  "./orders",
						"services": []interface{}{
							map[string]interface{}{"type": "dynamodb"},
						},
					},
				},
			},
			wantedFns: []Function{
				{
					Name:     "orders",
					Handler:  "index.handler",
					Source:   "./orders",
					Memory:   1024,
					Timeout:  300,
					Envs:     []EnvVar{},
					FullName: "demo-beta-orders",
					Services: []map[string]interface{}{
						{"type": "dynamodb", "lambdaName": "orders"},
					},
				},
			},
		},
		"fails without a name": {
			inDoc: Document{
				"lambdas": []interface{}{
					map[string]interface{}{"handler": "index.handler", "source": "./orders"},
				},
			},
			wantedErr: `missing the required field "name"`,
		},
		"fails without a handler": {
			inDoc: Document{
				"lambdas": []interface{}{
					map[string]interface{}{"name": "orders", "source": "./orders"},
				},
			},
			wantedErr: `lambda "orders" is missing the required field "handler"`,
		},
		"fails without a source": {
			inDoc: Document{
				"lambdas": []interface{}{
					map[string]interface{}{"name": "orders", "handler": "index.handler"},
				},
			},
			wantedErr: "neither is set",
		},
		"fails with both sources": {
			inDoc: Document{
				"lambdas": []interface{}{
					map[string]interface{}{"name": "orders", "handler": "index.handler", "source": "./orders", "s3Source": "s3://bucket/key"},
				},
			},
			wantedErr: "both are set",
		},
		"fails on duplicate names": {
			inDoc: Document{
				"lambdas": []interface{}{
					map[string]interface{}{"name": "orders", "handler": "index.handler", "source": "./orders"},
					map[string]interface{}{"name": "orders", "handler": "index.handler", "source": "./orders"},
				},
			},
			wantedErr: `lambda name "orders" is declared more than once`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// WHEN
			err := applyFunctionDefaults(tc.inDoc)

			// THEN
			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			fns, err := tc.inDoc.Functions()
			require.NoError(t, err)
			require.Equal(t, tc.wantedFns, fns)
		})
	}
}

func TestApplyFunctionDefaults_Idempotent(t *testing.T) {
	// GIVEN a document the defaulter already ran over.
	doc := Document{
		"stackName": "demo",
		"stage":     "beta",
		"lambdas": []interface{}{
			map[string]interface{}{"name": "orders", "handler": "index.handler", "source": "./orders", "memory": 256},
		},
	}
	require.NoError(t, applyFunctionDefaults(doc))
	first, err := doc.Functions()
	require.NoError(t, err)

	// WHEN it runs a second time over its own output.
	require.NoError(t, applyFunctionDefaults(doc))
	second, err := doc.Functions()
	require.NoError(t, err)

	// THEN nothing changes.
	require.Equal(t, first, second)
}
