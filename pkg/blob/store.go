// Package blob stores binary artifacts (screenshots, rendered reports) on
// local disk under a configured root.
package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a local-disk blob store. Paths are slash-separated keys relative
// to the root, e.g. studies/{id}/sessions/{id}/steps/step_001.png.
type Store struct {
	root string
}

// NewStore creates the root directory if needed and returns the store.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("blob root must not be empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving blob root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating blob root: %w", err)
	}
	return &Store{root: abs}, nil
}

// Put writes bytes at the given key, creating parent directories.
func (s *Store) Put(path string, data []byte) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("creating blob directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("writing blob %s: %w", path, err)
	}
	return nil
}

// Get reads the bytes stored at the given key.
func (s *Store) Get(path string) ([]byte, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", path, err)
	}
	return data, nil
}

// Exists reports whether a blob is stored at the given key.
func (s *Store) Exists(path string) (bool, error) {
	full, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat blob %s: %w", path, err)
	}
	return true, nil
}

// FullPath returns the absolute filesystem path for a key, for callers that
// hand the file to external tooling.
func (s *Store) FullPath(path string) (string, error) {
	return s.resolve(path)
}

// resolve joins the key onto the root and rejects escapes.
func (s *Store) resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("blob path must not be empty")
	}
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if full != s.root && !strings.HasPrefix(full, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("blob path %q escapes store root", path)
	}
	return full, nil
}

// ScreenshotPath is the canonical key for a step screenshot.
func ScreenshotPath(studyID, sessionID string, stepNumber int) string {
	return fmt.Sprintf("studies/%s/sessions/%s/steps/step_%03d.png", studyID, sessionID, stepNumber)
}

// ReportPath is the canonical key for a rendered study report.
func ReportPath(studyID, ext string) string {
	return fmt.Sprintf("studies/%s/report.%s", studyID, ext)
}
