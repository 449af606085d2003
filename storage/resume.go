package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dreamjobs/portal/config"
)

// ResumeStore keeps uploaded resume files. Keys returned by Save are
// opaque and only meaningful to the store that produced them.
type ResumeStore interface {
	Save(ctx context.Context, owner, filename, contentType string, data []byte) (string, error)
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// NewResumeStore returns the backend selected by RESUME_BACKEND.
func NewResumeStore(ctx context.Context, cfg *config.Config) (ResumeStore, error) {
	switch cfg.ResumeBackend {
	case "", "local":
		return NewLocalResumeStore(cfg.UploadDir)
	case "gcs":
		return NewCloudStorageClient(ctx, cfg)
	case "s3":
		return NewS3ResumeStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown resume backend %q", cfg.ResumeBackend)
	}
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// objectKey builds "resumes/<owner>/<timestamp>_<name>" with the file name
// reduced to a safe character set.
func objectKey(owner, filename string, now time.Time) string {
	name := unsafeName.ReplaceAllString(filepath.Base(filename), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "resume"
	}
	owner = unsafeName.ReplaceAllString(owner, "_")
	return fmt.Sprintf("resumes/%s/%d_%s", owner, now.UnixMilli(), name)
}

// LocalResumeStore writes resumes below a directory on disk.
type LocalResumeStore struct {
	dir string
}

// NewLocalResumeStore creates dir if needed.
func NewLocalResumeStore(dir string) (*LocalResumeStore, error) {
	if dir == "" {
		return nil, errors.New("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalResumeStore{dir: dir}, nil
}

func (l *LocalResumeStore) Save(_ context.Context, owner, filename, _ string, data []byte) (string, error) {
	key := objectKey(owner, filename, time.Now())
	path, err := l.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating resume directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing resume: %w", err)
	}
	return key, nil
}

func (l *LocalResumeStore) Load(_ context.Context, key string) ([]byte, error) {
	path, err := l.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("resume %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading resume: %w", err)
	}
	return data, nil
}

func (l *LocalResumeStore) Delete(_ context.Context, key string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("deleting resume: %w", err)
	}
	return nil
}

// path resolves key inside the upload directory, rejecting keys that
// would escape it.
func (l *LocalResumeStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid resume key %q", key)
	}
	return filepath.Join(l.dir, clean), nil
}
