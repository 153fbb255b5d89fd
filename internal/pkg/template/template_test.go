// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	testCases := map[string]struct {
		inText    string
		inContext interface{}

		wanted    string
		wantedErr string
	}{
		"substitutes scalars": {
			inText:    "name: {{serviceName}}",
			inContext: map[string]string{"serviceName": "orders"},
			wanted:    "name: orders",
		},
		"does not escape substituted values": {
			inText:    "arn: {{arn}}",
			inContext: map[string]string{"arn": `arn:aws:iam::1234:role/a&b<c>`},
			wanted:    `arn: arn:aws:iam::1234:role/a&b<c>`,
		},
		"iterates over sequences": {
			inText: "{{#each subnets}}- {{id}}\n{{/each}}",
			inContext: map[string]interface{}{
				"subnets": []interface{}{
					map[string]interface{}{"id": "subnet-1"},
					map[string]interface{}{"id": "subnet-2"},
				},
			},
			wanted: "- subnet-1\n- subnet-2\n",
		},
		"iterates over mappings with key and value": {
			inText: "{{#each tags}}{{@key}}={{this}};{{/each}}",
			inContext: map[string]interface{}{
				"tags": map[string]interface{}{"team": "platform"},
			},
			wanted: "team=platform;",
		},
		"renders the if branch": {
			inText:    "{{#if vpc}}has-vpc{{else}}no-vpc{{/if}}",
			inContext: map[string]interface{}{"vpc": "vpc-1234"},
			wanted:    "has-vpc",
		},
		"renders the else branch": {
			inText:    "{{#if vpc}}has-vpc{{else}}no-vpc{{/if}}",
			inContext: map[string]interface{}{},
			wanted:    "no-vpc",
		},
		"surfaces parse errors": {
			inText:    "{{#each}",
			inContext: map[string]interface{}{},
			wantedErr: "parse template",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// WHEN
			out, err := New().Render(tc.inText, tc.inContext)

			// THEN
			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wanted, out)
		})
	}
}
