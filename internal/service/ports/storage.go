package ports

import "io"

type FileStore interface {
	Save(filename string, r io.Reader) (string, error)
	Remove(path string) error
}
