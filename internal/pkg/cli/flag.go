// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

// Long flag names.
const (
	stackNameFlag = "stack-name"
	stageFlag     = "stage"
	bucketFlag    = "bucket"
	configFlag    = "config"
	stageFileFlag = "stage-file"
	envFileFlag   = "env-file"
	yesFlag       = "yes"
)

// Short flag names.
const (
	stageFlagShort = "s"
)

// Descriptions for flags.
const (
	stackNameFlagDescription = "Optional. Overrides the stack name declared in the configuration."
	stageFlagDescription     = "Optional. Name of the stage to deploy."
	bucketFlagDescription    = "Optional. S3 bucket for lambda artifacts."
	configFlagDescription    = "Optional. Path to the configuration file. Defaults to stackform.yml in the workspace."
	stageFileFlagDescription = "Optional. Path to the stage defaults file. Defaults to stage.yml next to the configuration."
	envFileFlagDescription   = "Optional. Path to the variable store file. Defaults to .env next to the configuration."
	yesFlagDescription       = "Skips the confirmation prompt."
)
