// Package media stores uploaded recipe images and hands out their public URLs.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
)

const imagePrefix = "recipes/images"

var ErrInvalidImage = errors.New("invalid image")

// Store keeps objects under a key and serves them under a public URL.
type Store interface {
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	// Key returns the object key behind a URL handed out by Save, or "" when
	// the URL does not belong to the store.
	Key(url string) string
}

var extensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Image is a decoded upload.
type Image struct {
	ContentType string
	Data        []byte
}

func (i Image) Key() string {
	return path.Join(imagePrefix, uuid.NewString()+"."+extensions[i.ContentType])
}

// DecodeDataURI parses "data:image/png;base64,<payload>".
func DecodeDataURI(uri string) (*Image, error) {
	header, payload, found := strings.Cut(uri, ",")
	if !found {
		return nil, fmt.Errorf("%w: expected a data URI", ErrInvalidImage)
	}

	mediaType, ok := strings.CutPrefix(header, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: expected a data URI", ErrInvalidImage)
	}

	contentType, ok := strings.CutSuffix(mediaType, ";base64")
	if !ok {
		return nil, fmt.Errorf("%w: image must be base64 encoded", ErrInvalidImage)
	}

	if _, known := extensions[contentType]; !known {
		return nil, fmt.Errorf("%w: unsupported image type %q", ErrInvalidImage, contentType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: image is empty", ErrInvalidImage)
	}

	return &Image{ContentType: contentType, Data: data}, nil
}

// SaveImage stores a decoded upload under a fresh key.
func SaveImage(ctx context.Context, store Store, image *Image) (string, error) {
	return store.Save(ctx, image.Key(), image.ContentType, image.Data)
}

// Open returns the store selected by conf.Media.Backend.
func Open(ctx context.Context, conf *configs.Config, logger *zap.Logger) (Store, error) {
	switch conf.Media.Backend {
	case configs.MediaBackendS3:
		return NewS3Store(ctx, conf.Media, logger)
	case configs.MediaBackendLocal:
		return NewLocalStore(conf.Media.Directory, conf.Media.BaseURL, logger), nil
	}

	return nil, fmt.Errorf("%w: unknown media backend %q", configs.ErrConfiguration, conf.Media.Backend)
}
