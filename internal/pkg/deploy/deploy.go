// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package deploy drives a resolved configuration through packaging, upload,
// and CloudFormation.
package deploy

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/stackform-cli/internal/pkg/archive"
	"github.com/aws/stackform-cli/internal/pkg/aws/cloudformation"
	"github.com/aws/stackform-cli/internal/pkg/aws/s3"
	"github.com/aws/stackform-cli/internal/pkg/manifest"
	"github.com/aws/stackform-cli/internal/pkg/template"
	"github.com/aws/stackform-cli/internal/pkg/term/log"
	"github.com/aws/stackform-cli/templates"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

const baseTemplatePath = "cf/stack.yml"

type stackDeployer interface {
	Deploy(stack *cloudformation.Stack) error
	DeleteAndWait(name string) error
}

type artifactUploader interface {
	PutArtifact(bucket, stack, fileName string, data io.Reader) (string, error)
}

// Deployer packages function sources, uploads them, and deploys the rendered
// stack template.
type Deployer struct {
	fs    afero.Fs
	wsDir string
	cfn   stackDeployer
	s3    artifactUploader
}

// New returns a Deployer rooted at the workspace directory.
func New(fs afero.Fs, wsDir string, cfn stackDeployer, s3 artifactUploader) *Deployer {
	return &Deployer{
		fs:    fs,
		wsDir: wsDir,
		cfn:   cfn,
		s3:    s3,
	}
}

// Render renders the embedded base template against the resolved document and
// returns the deployable stack template body.
func Render(doc manifest.Document) (string, error) {
	base, err := templates.Read(baseTemplatePath)
	if err != nil {
		return "", err
	}
	body, err := template.New().Render(string(base), map[string]interface{}(doc))
	if err != nil {
		return "", fmt.Errorf("render stack template: %w", err)
	}
	return body, nil
}

// Deploy packages every function that declares a local source, uploads the
// archives to the bucket, and creates or updates the CloudFormation stack.
func (d *Deployer) Deploy(doc manifest.Document, bucket string) error {
	if err := d.packageFunctions(doc, bucket); err != nil {
		return err
	}
	body, err := Render(doc)
	if err != nil {
		return err
	}
	stackName := qualifiedStackName(doc)
	log.Infof("Deploying stack %s.\n", stackName)
	return d.cfn.Deploy(&cloudformation.Stack{
		Name:     stackName,
		Template: body,
	})
}

// Delete removes the document's stack.
func (d *Deployer) Delete(doc manifest.Document) error {
	return d.cfn.DeleteAndWait(qualifiedStackName(doc))
}

func (d *Deployer) packageFunctions(doc manifest.Document, bucket string) error {
	fns, err := doc.Functions()
	if err != nil {
		return err
	}
	dirty := false
	for i := range fns {
		fn := &fns[i]
		if fn.Source == "" {
			continue
		}
		if bucket == "" {
			return &ErrBucketRequired{Function: fn.Name}
		}
		data, err := archive.Zip(d.fs, filepath.Join(d.wsDir, fn.Source))
		if err != nil {
			return fmt.Errorf("package lambda %s: %w", fn.Name, err)
		}
		fileName := fn.FullName + ".zip"
		url, err := d.s3.PutArtifact(bucket, qualifiedStackName(doc), fileName, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("upload lambda %s: %w", fn.Name, err)
		}
		log.Infof("Uploaded %s (%s) to %s.\n", fileName, humanize.Bytes(uint64(len(data))), url)
		fn.S3Source = s3.ArtifactKey(qualifiedStackName(doc), fileName)
		fn.Source = ""
		dirty = true
	}
	if !dirty {
		return nil
	}
	doc["bucket"] = bucket
	return doc.SetFunctions(fns)
}

// qualifiedStackName suffixes the stack name with the stage so stages deploy
// side by side.
func qualifiedStackName(doc manifest.Document) string {
	if doc.Stage() == "" {
		return doc.StackName()
	}
	return doc.StackName() + "-" + doc.Stage()
}
