// Package store persists project data as JSON files on local disk. Each
// project owns a directory under projects/{id} holding one file per
// aggregate, plus a files/ tree for uploaded documents. A missing file or
// directory is "no data yet", never an error. There is no locking or write
// versioning: concurrent writers are last-write-wins.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// UploadKind selects the subdirectory uploaded files are stored under.
type UploadKind string

const (
	UploadQuotations UploadKind = "quotations"
	UploadDrawings   UploadKind = "drawings"
	UploadRenderings UploadKind = "renderings"
)

// Store is a flat-file JSON store rooted at a data directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root data directory.
func (s *Store) Dir() string {
	return s.dir
}

// ReadJSON reads the JSON file at the given store-relative path into a value
// of type T. A missing file returns (nil, nil).
func ReadJSON[T any](s *Store, relPath string) (*T, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, relPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", relPath, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", relPath, err)
	}
	return &v, nil
}

// WriteJSON writes v as indented JSON to the given store-relative path,
// creating parent directories as needed.
func (s *Store) WriteJSON(relPath string, v any) error {
	full := filepath.Join(s.dir, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", relPath, err)
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", relPath, err)
	}
	if err := os.WriteFile(full, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}

// ListDirectories returns the names of subdirectories of the given
// store-relative path. A missing directory returns an empty list.
func (s *Store) ListDirectories(relPath string) []string {
	entries, err := os.ReadDir(filepath.Join(s.dir, relPath))
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// ProjectFilePath returns the store-relative path of a named file inside a
// project's directory.
func ProjectFilePath(projectID, name string) string {
	return filepath.Join("projects", projectID, name)
}

// EnsureProjectDir creates a project's directory tree, including the upload
// subdirectories.
func (s *Store) EnsureProjectDir(projectID string) error {
	base := filepath.Join(s.dir, "projects", projectID)
	for _, kind := range []UploadKind{UploadQuotations, UploadDrawings, UploadRenderings} {
		if err := os.MkdirAll(filepath.Join(base, "files", string(kind)), 0o755); err != nil {
			return fmt.Errorf("create project dir %s: %w", projectID, err)
		}
	}
	return nil
}

// RemoveProjectDir deletes a project's entire directory tree.
func (s *Store) RemoveProjectDir(projectID string) error {
	if err := os.RemoveAll(filepath.Join(s.dir, "projects", projectID)); err != nil {
		return fmt.Errorf("remove project dir %s: %w", projectID, err)
	}
	return nil
}

// StoredFile describes an uploaded file saved under a project's files/ tree.
type StoredFile struct {
	ID          string
	FileName    string
	FileSize    int64
	MimeType    string
	StoragePath string
	UploadedAt  string
}

// SaveUpload streams src into the project's files/{kind} directory under a
// fresh uuid name, keeping the original extension, and returns the file
// metadata to record on the owning aggregate.
func (s *Store) SaveUpload(projectID string, kind UploadKind, fileName, mimeType string, src io.Reader) (*StoredFile, error) {
	if err := s.EnsureProjectDir(projectID); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	name := id + filepath.Ext(fileName)
	relPath := filepath.Join("projects", projectID, "files", string(kind), name)

	dst, err := os.Create(filepath.Join(s.dir, relPath))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &StoredFile{
		ID:          id,
		FileName:    fileName,
		FileSize:    size,
		MimeType:    mimeType,
		StoragePath: relPath,
		UploadedAt:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}
