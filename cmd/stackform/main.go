// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command.
package main

import (
	"os"

	"github.com/aws/stackform-cli/internal/pkg/cli"
	"github.com/aws/stackform-cli/internal/pkg/term/log"
	"github.com/aws/stackform-cli/internal/pkg/version"
	"github.com/spf13/cobra"
)

func init() {
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Errorln(err.Error())
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stackform",
		Short: "Deploy lambda services to CloudFormation from a layered configuration.",
		Example: `
  Deploys the workspace's stack to the "staging" stage.
  /code $ stackform deploy --stage staging`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(log.OutputWriter)
	cmd.SetErr(log.DiagnosticWriter)

	cmd.Version = version.Version
	cmd.SetVersionTemplate("stackform version: {{.Version}}\n")

	cmd.AddCommand(cli.BuildDeployCmd())
	cmd.AddCommand(cli.BuildDeleteCmd())
	cmd.AddCommand(cli.BuildPrintCmd())
	return cmd
}
