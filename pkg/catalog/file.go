package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// shardLen is the number of leading digest characters used as the
// subdirectory name, keeping any single directory small.
const shardLen = 2

// FileStore persists records as JSON files under a directory, sharded by
// digest prefix. Suited to CLI usage where the catalog outlives a run.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over
// it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("catalog dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get retrieves the record for a digest.
func (s *FileStore) Get(ctx context.Context, digest string) (Record, error) {
	path, err := s.path(digest)
	if err != nil {
		return Record{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Record{}, fmt.Errorf("record %s: %w", digest, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("read record %s: %w", digest, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record %s: %w", digest, err)
	}
	return rec, nil
}

// Put stores the record unless its digest is already catalogued.
func (s *FileStore) Put(ctx context.Context, rec Record) (bool, error) {
	path, err := s.path(rec.Digest)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("encode record %s: %w", rec.Digest, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("record dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write record %s: %w", rec.Digest, err)
	}
	return true, nil
}

// List walks the directory and returns all records sorted by digest.
func (s *FileStore) List(ctx context.Context) ([]Record, error) {
	var recs []Record
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	slices.SortFunc(recs, func(a, b Record) int { return strings.Compare(a.Digest, b.Digest) })
	return recs, nil
}

// Delete removes the record for a digest. Missing digests are not an
// error.
func (s *FileStore) Delete(ctx context.Context, digest string) error {
	path, err := s.path(digest)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete record %s: %w", digest, err)
	}
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(digest string) (string, error) {
	if len(digest) <= shardLen {
		return "", fmt.Errorf("digest %q too short: %w", digest, ErrNotFound)
	}
	return filepath.Join(s.dir, digest[:shardLen], digest[shardLen:]+".json"), nil
}

var _ Store = (*FileStore)(nil)
