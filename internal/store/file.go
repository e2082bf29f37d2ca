package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"todo-cli/internal/checklist"
	"todo-cli/internal/model"
)

// File persists a checklist document at Path.
type File struct {
	Path string
}

// Load reads and parses the checklist. Read errors are returned alongside an
// empty result so callers can decide whether to degrade or abort.
func (f File) Load() ([]model.Item, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return checklist.Parse(string(b)), nil
}

// Save overwrites the checklist, creating it if needed. A symlinked path is
// written through to its target so the link survives.
func (f File) Save(items []model.Item) error {
	if f.Path == "" {
		return errors.New("missing checklist path")
	}
	path, err := f.target()
	if err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	dir := filepath.Dir(path)
	if err := atomicWriteFile(dir, ".todo-*.tmp", path, []byte(checklist.Serialize(items)), filePerm(path)); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}

// target resolves symlinks in Path. A path that does not exist yet is used as is.
func (f File) target() (string, error) {
	path, err := filepath.EvalSymlinks(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return f.Path, nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

func filePerm(path string) os.FileMode {
	if st, err := os.Stat(path); err == nil {
		return st.Mode().Perm()
	}
	return 0o644
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	tmpf, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := tmpf.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := tmpf.Write(b); err != nil {
		_ = tmpf.Close()
		return err
	}
	if err := tmpf.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
