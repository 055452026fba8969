package store

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

// ErrIO is matched by every IOError.
var ErrIO = errors.New("i/o failure")

// IOError describes a failed read, write or removal of the data file.
// It satisfies errors.Is(err, ErrIO).
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "could not " + e.Op + " data file " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// CorruptedError carries the path of a snapshot that failed to decode.
// It satisfies errors.Is(err, ErrCorrupted).
type CorruptedError struct {
	Path string
	Err  error
}

func (e *CorruptedError) Error() string {
	return "unable to parse data file " + e.Path + ": " + e.Err.Error()
}

func (e *CorruptedError) Unwrap() error { return e.Err }

// File is a snapshot on disk.
type File struct {
	path string
}

// NewFile returns a File backed by path. Nothing is touched until Load or Save.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the data file location.
func (f *File) Path() string {
	return f.path
}

// Load reads and decodes the snapshot. A missing file is an empty store.
func (f *File) Load() (*Store, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, &IOError{Op: "read", Path: f.path, Err: err}
	}
	s, err := Decode(data)
	if err != nil {
		return nil, &CorruptedError{Path: f.path, Err: err}
	}
	return s, nil
}

// Save replaces the snapshot with the full contents of s.
func (f *File) Save(s *Store) error {
	data, err := Encode(s)
	if err != nil {
		return &IOError{Op: "encode", Path: f.path, Err: err}
	}
	if err := atomic.WriteFile(f.path, bytes.NewReader(data)); err != nil {
		return &IOError{Op: "write", Path: f.path, Err: err}
	}
	return nil
}

// Remove deletes the snapshot. Removing a missing file is not an error.
func (f *File) Remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &IOError{Op: "remove", Path: f.path, Err: err}
	}
	return nil
}
