// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"

	awscfn "github.com/aws/stackform-cli/internal/pkg/aws/cloudformation"
	"github.com/aws/stackform-cli/internal/pkg/aws/s3"
	"github.com/aws/stackform-cli/internal/pkg/aws/sessions"
	"github.com/aws/stackform-cli/internal/pkg/deploy"
	"github.com/aws/stackform-cli/internal/pkg/manifest"
	"github.com/aws/stackform-cli/internal/pkg/term/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type deployVars struct {
	resolveVars
	bucket string
}

type deployOpts struct {
	deployVars
	fs afero.Fs
}

// Execute resolves the configuration and deploys the stack.
func (o *deployOpts) Execute() error {
	doc, dir, err := resolveConfig(o.fs, o.resolveVars)
	if err != nil {
		return err
	}
	sess, err := sessions.NewProvider().Default()
	if err != nil {
		return err
	}
	deployer := deploy.New(o.fs, dir, awscfn.New(sess), s3.New(sess))
	err = deployer.Deploy(doc, o.artifactBucket(doc))
	if err != nil {
		var empty *awscfn.ErrChangeSetEmpty
		if errors.As(err, &empty) {
			log.Warningf("The stack is already up to date, there is nothing to deploy.\n")
			return nil
		}
		return err
	}
	log.Successf("Deployed stack %s.\n", doc.StackName())
	return nil
}

// artifactBucket prefers the flag over the document's "bucket" key.
func (o *deployOpts) artifactBucket(doc manifest.Document) string {
	if o.bucket != "" {
		return o.bucket
	}
	bucket, _ := doc["bucket"].(string)
	return bucket
}

// BuildDeployCmd builds the command for deploying a configured stack.
func BuildDeployCmd() *cobra.Command {
	vars := deployVars{}
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploys the stack described by the workspace's configuration.",
		Example: `
  Deploys the "staging" stage.
  /code $ stackform deploy --stage staging`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &deployOpts{
				deployVars: vars,
				fs:         afero.NewOsFs(),
			}
			return opts.Execute()
		},
	}
	cmd.Flags().StringVar(&vars.stackName, stackNameFlag, "", stackNameFlagDescription)
	cmd.Flags().StringVarP(&vars.stage, stageFlag, stageFlagShort, "", stageFlagDescription)
	cmd.Flags().StringVar(&vars.bucket, bucketFlag, "", bucketFlagDescription)
	cmd.Flags().StringVar(&vars.configPath, configFlag, "", configFlagDescription)
	cmd.Flags().StringVar(&vars.stageFilePath, stageFileFlag, "", stageFileFlagDescription)
	cmd.Flags().StringVar(&vars.envFilePath, envFileFlag, "", envFileFlagDescription)
	return cmd
}
