// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package s3 provides a client to upload deployment artifacts to Amazon S3.
package s3

import (
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const artifactDirName = "artifacts"

// ArtifactKey returns the object key PutArtifact stores an artifact under.
// Templates reference uploaded code by this key.
func ArtifactKey(stack, fileName string) string {
	return path.Join(artifactDirName, stack, fileName)
}

type s3ManagerAPI interface {
	Upload(input *s3manager.UploadInput, options ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// S3 wraps an Amazon Simple Storage Service client.
type S3 struct {
	s3Manager s3ManagerAPI
}

// New returns an S3 client configured against the input session.
func New(s *session.Session) *S3 {
	return &S3{
		s3Manager: s3manager.NewUploader(s),
	}
}

// PutArtifact uploads data to the bucket under artifacts/<stack>/<fileName>
// and returns the object's URL.
func (s *S3) PutArtifact(bucket, stack, fileName string, data io.Reader) (string, error) {
	key := ArtifactKey(stack, fileName)
	resp, err := s.s3Manager.Upload(&s3manager.UploadInput{
		Body:   data,
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("put %s to bucket %s: %w", key, bucket, err)
	}
	return resp.Location, nil
}
