package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore persists uploaded files under a single content root. The stored
// name is the leaf of the caller-supplied filename, verbatim; saving the
// same name again silently overwrites the previous content.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes the content of r and returns the path to persist alongside the
// owning row.
func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	path := filepath.Join(s.root, filepath.Base(filename))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return path, nil
}

// Remove deletes a previously saved file. Used as best-effort cleanup when
// the row insert fails after the file write.
func (s *DiskStore) Remove(path string) error {
	return os.Remove(path)
}

// Root exposes the content root for static serving.
func (s *DiskStore) Root() string {
	return s.root
}
