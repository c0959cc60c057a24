package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/restaurantes-api/internal/application/ports"
)

var _ ports.BlobStorage = (*LocalStorage)(nil)

// LocalStorage guarda archivos bajo un directorio público servido en baseURL.
type LocalStorage struct {
	root    string
	baseURL string
}

// NewLocalStorage crea el directorio raíz si no existe.
func NewLocalStorage(root, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear raíz de almacenamiento: %w", err)
	}
	return &LocalStorage{root: root, baseURL: baseURL}, nil
}

// Root directorio raíz del disco público.
func (s *LocalStorage) Root() string { return s.root }

func (s *LocalStorage) Store(_ context.Context, namespace string, content []byte, ext string) (string, error) {
	key := objectKey(namespace, ext)
	full := s.fullPath(key)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("crear carpeta %s: %w", namespace, err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return "", fmt.Errorf("escribir %s: %w", key, err)
	}
	return key, nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	if cleanKey(key) == "" {
		return nil
	}
	err := os.Remove(s.fullPath(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("eliminar %s: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) URL(key string) string {
	return publicURL(s.baseURL, key)
}

func (s *LocalStorage) fullPath(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(cleanKey(key)))
}
