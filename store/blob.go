package store

import (
	"errors"
	"os"
	"path/filepath"
)

// StorageKey is the single durable-storage key the university collection
// lives under. Kept identical to the original deployment's key so existing
// payloads load unchanged.
const StorageKey = "uniinone_universities"

// BlobStore mirrors the collection to durable storage as one opaque blob
// under a fixed key. Load returns found=false when nothing has been written
// yet; that is not an error. Implementations make no atomicity promises
// across processes: two writers to the same key race and the last write
// wins, silently. That matches the storage contract this service was
// specified against and is deliberately not "fixed" here.
type BlobStore interface {
	Load() (data []byte, found bool, err error)
	Save(data []byte) error
}

// FileBlobStore keeps the blob in a single JSON file on disk. It is the
// default backend and the closest analogue to the origin-scoped key-value
// storage the collection originally lived in.
type FileBlobStore struct {
	path string
}

// NewFileBlobStore creates a file-backed blob store. The parent directory is
// created on first save, not here.
func NewFileBlobStore(path string) *FileBlobStore {
	return &FileBlobStore{path: path}
}

func (f *FileBlobStore) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileBlobStore) Save(data []byte) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, data, 0o644)
}

// MemoryBlobStore holds the blob in memory only. Used by tests and as the
// no-durability fallback when no backend is configured.
type MemoryBlobStore struct {
	data  []byte
	found bool
}

// NewMemoryBlobStore creates an empty in-memory blob store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{}
}

func (m *MemoryBlobStore) Load() ([]byte, bool, error) {
	if !m.found {
		return nil, false, nil
	}
	return m.data, true, nil
}

func (m *MemoryBlobStore) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	m.found = true
	return nil
}
