// Package storage keeps uploaded profile images on an afero filesystem and
// serves them back over HTTP.
package storage

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/radit-thy/G3-Carefinder-Backend/config"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var (
	ErrUnsupportedImage = errors.New("image must be a jpeg or png file")
	ErrImageTooLarge    = errors.New("image exceeds the upload limit")
	ErrEmptyImage       = errors.New("image is empty")
)

var allowedImages = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

type ImageStorage interface {
	SaveProfileImage(userID uuid.UUID, r io.Reader) (string, error)
	Delete(key string) error
	URL(key string) string
	Handler() http.Handler
}

type imageStorage struct {
	fs         afero.Fs
	baseURL    string
	publicPath string
	maxBytes   int64
}

// NewImageStorage roots the storage at cfg.Root on the local disk.
func NewImageStorage(cfg config.StorageConfig, baseURL string) (ImageStorage, error) {
	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return NewImageStorageFs(afero.NewBasePathFs(afero.NewOsFs(), cfg.Root), cfg, baseURL), nil
}

func NewImageStorageFs(fs afero.Fs, cfg config.StorageConfig, baseURL string) ImageStorage {
	return &imageStorage{
		fs:         fs,
		baseURL:    strings.TrimRight(baseURL, "/"),
		publicPath: "/" + strings.Trim(cfg.PublicPath, "/"),
		maxBytes:   cfg.MaxUploadBytes,
	}
}

// SaveProfileImage stores the image under profiles/user-<id>/<sha256>.<ext>
// and returns that key. Re-uploading identical content yields the same key.
func (s *imageStorage) SaveProfileImage(userID uuid.UUID, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)
	ext, ok := allowedImages[mtype.String()]
	if !ok {
		return "", ErrUnsupportedImage
	}

	sum := sha256.Sum256(data)
	dir := path.Join("profiles", "user-"+userID.String())
	key := path.Join(dir, hex.EncodeToString(sum[:])+ext)

	if err := s.fs.MkdirAll(fsPath(dir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}
	if err := afero.WriteReader(s.fs, fsPath(key), bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return key, nil
}

// Delete removes a stored image. A missing file is not an error.
func (s *imageStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	err := s.fs.Remove(fsPath(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func (s *imageStorage) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.baseURL + path.Join(s.publicPath, key)
}

// fsPath maps a key to the rooted path the file server opens.
func fsPath(key string) string {
	return path.Join("/", key)
}

// Handler serves stored files below the public path. Directory listings are not exposed.
func (s *imageStorage) Handler() http.Handler {
	fileServer := http.FileServer(afero.NewHttpFs(s.fs))
	return http.StripPrefix(s.publicPath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	}))
}
