package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/dreamjobs/portal/config"
)

// CloudStorageClient keeps resumes in a Google Cloud Storage bucket
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.CVBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// Save uploads a resume and returns its object name
func (c *CloudStorageClient) Save(ctx context.Context, owner, filename, contentType string, data []byte) (string, error) {
	objectName := objectKey(owner, filename, time.Now())

	wc := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType
	if wc.ContentType == "" {
		wc.ContentType = ContentTypeFor(filename)
	}

	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return objectName, nil
}

// Load downloads a resume
func (c *CloudStorageClient) Load(ctx context.Context, objectName string) ([]byte, error) {
	rc, err := c.client.Bucket(c.bucketName).Object(objectName).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("resume %s: %w", objectName, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	return data, nil
}

// Delete removes a resume. Missing objects are not an error.
func (c *CloudStorageClient) Delete(ctx context.Context, objectName string) error {
	err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

// ContentTypeFor maps a resume file name to its MIME type
func ContentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
