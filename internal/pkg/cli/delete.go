// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	awscfn "github.com/aws/stackform-cli/internal/pkg/aws/cloudformation"
	"github.com/aws/stackform-cli/internal/pkg/aws/sessions"
	"github.com/aws/stackform-cli/internal/pkg/deploy"
	"github.com/aws/stackform-cli/internal/pkg/term/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type deleteVars struct {
	resolveVars
	skipConfirmation bool
}

type deleteOpts struct {
	deleteVars
	fs afero.Fs
}

// Execute resolves the configuration and deletes the stack it names.
func (o *deleteOpts) Execute() error {
	doc, dir, err := resolveConfig(o.fs, o.resolveVars)
	if err != nil {
		return err
	}
	if !o.skipConfirmation {
		return fmt.Errorf("deleting stack %s is irreversible, rerun with --%s to confirm", doc.StackName(), yesFlag)
	}
	sess, err := sessions.NewProvider().Default()
	if err != nil {
		return err
	}
	deployer := deploy.New(o.fs, dir, awscfn.New(sess), nil)
	if err := deployer.Delete(doc); err != nil {
		return err
	}
	log.Successf("Deleted stack %s.\n", doc.StackName())
	return nil
}

// BuildDeleteCmd builds the command for deleting a deployed stack.
func BuildDeleteCmd() *cobra.Command {
	vars := deleteVars{}
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Deletes the stack described by the workspace's configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &deleteOpts{
				deleteVars: vars,
				fs:         afero.NewOsFs(),
			}
			return opts.Execute()
		},
	}
	cmd.Flags().StringVar(&vars.stackName, stackNameFlag, "", stackNameFlagDescription)
	cmd.Flags().StringVarP(&vars.stage, stageFlag, stageFlagShort, "", stageFlagDescription)
	cmd.Flags().StringVar(&vars.configPath, configFlag, "", configFlagDescription)
	cmd.Flags().StringVar(&vars.stageFilePath, stageFileFlag, "", stageFileFlagDescription)
	cmd.Flags().StringVar(&vars.envFilePath, envFileFlag, "", envFileFlagDescription)
	cmd.Flags().BoolVar(&vars.skipConfirmation, yesFlag, false, yesFlagDescription)
	return cmd
}
