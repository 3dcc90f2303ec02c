package store

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// SpacesConfig holds connection settings for an S3-compatible object store
// (DigitalOcean Spaces, AWS S3, MinIO).
type SpacesConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
}

// SpacesBlobStore keeps the collection blob as a single object in an
// S3-compatible bucket. The object key is the fixed storage key; everything
// else about the blob contract (last write wins, no versioning) carries over.
type SpacesBlobStore struct {
	s3Client *s3.S3
	bucket   string
	key      string
}

// NewSpacesBlobStore creates an object-storage-backed blob store.
func NewSpacesBlobStore(config SpacesConfig, key string) (*SpacesBlobStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
		Endpoint:         aws.String(config.Endpoint),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage session: %w", err)
	}

	return &SpacesBlobStore{
		s3Client: s3.New(sess),
		bucket:   config.Bucket,
		key:      key,
	}, nil
}

func (s *SpacesBlobStore) Load() ([]byte, bool, error) {
	result, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to fetch object: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read object body: %w", err)
	}
	return data, true, nil
}

func (s *SpacesBlobStore) Save(data []byte) error {
	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}
