// Package storage persists the session state of the tool as flat files:
// the active address record and the scratch rendered document.
package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// addressFile holds the active address as a single line.
	addressFile = "address"

	// documentFile holds the last rendered message. It is overwritten on every view.
	documentFile = "message.html"
)

// IOError reports a failed read or write of one of the state files.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Store reads and writes state files under a single directory.
// There is no locking: concurrent invocations race and the last writer wins.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is created lazily on the
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding the state files.
func (s *Store) Dir() string {
	return s.dir
}

// AddressPath returns the path of the address record.
func (s *Store) AddressPath() string {
	return filepath.Join(s.dir, addressFile)
}

// DocumentPath returns the path of the scratch rendered document.
func (s *Store) DocumentPath() string {
	return filepath.Join(s.dir, documentFile)
}

// LoadAddress returns the persisted address. ok is false when the record is
// missing or empty.
func (s *Store) LoadAddress() (addr string, ok bool, err error) {
	path := s.AddressPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, &IOError{Op: "read", Path: path, Err: err}
	}

	addr = strings.TrimSpace(string(data))
	if addr == "" {
		return "", false, nil
	}
	return addr, true, nil
}

// SaveAddress overwrites the address record with addr on a single line.
func (s *Store) SaveAddress(addr string) error {
	path := s.AddressPath()
	if err := s.write(path, []byte(addr+"\n")); err != nil {
		return err
	}
	slog.Debug("saved address", "path", path)
	return nil
}

// WriteDocument overwrites the scratch document with html and returns its path.
func (s *Store) WriteDocument(html string) (string, error) {
	path := s.DocumentPath()
	if err := s.write(path, []byte(html)); err != nil {
		return "", err
	}
	slog.Debug("wrote rendered document", "path", path, "bytes", len(html))
	return path, nil
}

func (s *Store) write(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return &IOError{Op: "create", Path: s.dir, Err: err}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
