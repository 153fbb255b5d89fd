// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/aws/stackform-cli/internal/pkg/deploy"
	"github.com/aws/stackform-cli/internal/pkg/term/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type printOpts struct {
	resolveVars
	fs afero.Fs
}

// Execute resolves the configuration and writes the deployable stack
// template to standard output.
func (o *printOpts) Execute() error {
	doc, _, err := resolveConfig(o.fs, o.resolveVars)
	if err != nil {
		return err
	}
	body, err := deploy.Render(doc)
	if err != nil {
		return err
	}
	fmt.Fprint(log.OutputWriter, body)
	return nil
}

// BuildPrintCmd builds the command for printing the rendered stack template.
func BuildPrintCmd() *cobra.Command {
	vars := resolveVars{}
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Prints the deployable CloudFormation template without deploying it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &printOpts{
				resolveVars: vars,
				fs:          afero.NewOsFs(),
			}
			return opts.Execute()
		},
	}
	cmd.Flags().StringVar(&vars.stackName, stackNameFlag, "", stackNameFlagDescription)
	cmd.Flags().StringVarP(&vars.stage, stageFlag, stageFlagShort, "", stageFlagDescription)
	cmd.Flags().StringVar(&vars.configPath, configFlag, "", configFlagDescription)
	cmd.Flags().StringVar(&vars.stageFilePath, stageFileFlag, "", stageFileFlagDescription)
	cmd.Flags().StringVar(&vars.envFilePath, envFileFlag, "", envFileFlagDescription)
	return cmd
}
