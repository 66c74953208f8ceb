package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// LocalStore writes objects below a directory that is served under baseURL.
type LocalStore struct {
	directory string
	baseURL   string
	logger    *zap.Logger
}

func NewLocalStore(directory, baseURL string, logger *zap.Logger) *LocalStore {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &LocalStore{directory: directory, baseURL: baseURL, logger: logger}
}

func (l *LocalStore) Directory() string {
	return l.directory
}

func (l *LocalStore) Save(_ context.Context, key, _ string, data []byte) (string, error) {
	target, err := l.path(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), dirPermissions); err != nil {
		return "", err
	}

	if err := os.WriteFile(target, data, filePermissions); err != nil {
		l.logger.Error("error writing media file", zap.String("key", key), zap.Error(err))

		return "", err
	}

	return l.baseURL + key, nil
}

func (l *LocalStore) Delete(_ context.Context, key string) error {
	target, err := l.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (l *LocalStore) Key(url string) string {
	key, found := strings.CutPrefix(url, l.baseURL)
	if !found {
		return ""
	}

	return key
}

// path resolves key below the store directory, refusing keys that escape it.
func (l *LocalStore) path(key string) (string, error) {
	if !filepath.IsLocal(filepath.FromSlash(key)) {
		return "", fmt.Errorf("invalid media key %q", key)
	}

	return filepath.Join(l.directory, filepath.FromSlash(key)), nil
}
