package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// localStorage is the local-filesystem driver.
type localStorage struct {
	root    string
	baseURL string
}

func NewLocal(root, baseURL string) (Storage, error) {

	if !filepath.IsAbs(root) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("storage/local: resolving working directory: %w", err)
		}

		root = filepath.Join(cwd, root)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage/local: creating root %s: %w", root, err)
	}

	return &localStorage{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *localStorage) abs(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}

func (s *localStorage) Put(path string, r io.Reader) (string, error) {

	full := s.abs(path)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage/local: mkdir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("storage/local: create %s: %w", path, err)
	}

	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("storage/local: write %s: %w", path, err)
	}

	return s.URL(path), nil
}

func (s *localStorage) Exists(path string) bool {
	_, err := os.Stat(s.abs(path))
	return err == nil
}

func (s *localStorage) Delete(path string) error {

	err := os.Remove(s.abs(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage/local: delete %s: %w", path, err)
	}

	return nil
}

func (s *localStorage) URL(path string) string {
	return s.baseURL + "/" + strings.TrimLeft(filepath.ToSlash(path), "/")
}
