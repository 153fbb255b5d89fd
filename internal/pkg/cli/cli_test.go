// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig(t *testing.T) {
	testCases := map[string]struct {
		files map[string]string
		vars  resolveVars

		wantedStackName string
		wantedFullName  string
		wantedDir       string
		wantedErr       string
	}{
		"resolves the config next to its stage defaults and variable store": {
			files: map[string]string{
				"/ws/stackform.yml": `
stackName: "{{service}}"
stage: "{{stage}}"
lambdas:
  - name: orders
    handler: index.handler
    source: ./orders
`,
				"/ws/stage.yml": `
default:
  stage: dev
prod:
  stage: prod
`,
				"/ws/.env": "service=shop\n",
			},
			vars: resolveVars{
				stage:      "prod",
				configPath: "/ws/stackform.yml",
			},
			wantedStackName: "shop",
			wantedFullName:  "shop-prod-orders",
			wantedDir:       "/ws",
		},
		"stage defaults and variable store are optional": {
			files: map[string]string{
				"/ws/stackform.yml": `
stackName: shop
lambdas:
  - name: orders
    handler: index.handler
    source: ./orders
`,
			},
			vars: resolveVars{
				stage:      "dev",
				configPath: "/ws/stackform.yml",
			},
			wantedStackName: "shop",
			wantedFullName:  "shop-dev-orders",
			wantedDir:       "/ws",
		},
		"surfaces resolution errors": {
			files: map[string]string{},
			vars: resolveVars{
				configPath: "/ws/stackform.yml",
			},
			wantedErr: "read config file /ws/stackform.yml",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			fs := afero.NewMemMapFs()
			for path, content := range tc.files {
				require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
			}

			// WHEN
			doc, dir, err := resolveConfig(fs, tc.vars)

			// THEN
			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedDir, dir)
			require.Equal(t, tc.wantedStackName, doc.StackName())
			fns, err := doc.Functions()
			require.NoError(t, err)
			require.Len(t, fns, 1)
			require.Equal(t, tc.wantedFullName, fns[0].FullName)
		})
	}
}
