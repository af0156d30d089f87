// Package fswrite writes generated configuration files for pystack.
// Writes are whole-file overwrites; an existing target is renamed to a
// backup sibling first unless force mode is on. Dry-run mode logs intent
// and performs no I/O.
package fswrite

import (
	"os"

	"github.com/raveheart1/pystack/internal/errors"
)

// Writer applies the run configuration's write policy to every target file.
type Writer struct {
	// DryRun logs intent without touching the filesystem.
	DryRun bool
	// Force overwrites existing files without creating backups.
	Force bool
	// BackupSuffix is appended to the original name for backups (e.g. ".bak").
	BackupSuffix string
	// Log receives verbose step logging; nil disables it.
	Log func(format string, args ...interface{})
	// Notice receives user-facing notices (e.g. backup created); nil disables it.
	Notice func(format string, args ...interface{})
}

// Write writes content to path, backing up any existing file first unless
// force mode is on. A failed backup rename or write is fatal to the run.
func (w *Writer) Write(path, content string) error {
	w.logf("writing file: %s", path)
	if w.DryRun {
		return nil
	}

	if _, err := os.Stat(path); err == nil && !w.Force {
		backupPath := path + w.BackupSuffix
		if err := os.Rename(path, backupPath); err != nil {
			return errors.BackupFailed(path, err)
		}
		w.noticef("backup created: %s", backupPath)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.WriteFailed(path, err)
	}
	return nil
}

// Append appends content to path, creating the file when absent.
// No backup is taken: appends preserve existing content by construction.
func (w *Writer) Append(path, content string) error {
	w.logf("appending to file: %s", path)
	if w.DryRun {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.WriteFailed(path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return errors.WriteFailed(path, err)
	}
	return nil
}

// EnsureDir creates dir and any missing parents. Already existing is fine.
func (w *Writer) EnsureDir(dir string) error {
	w.logf("ensuring directory: %s", dir)
	if w.DryRun {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.DirCreateFailed(dir, err)
	}
	return nil
}

func (w *Writer) logf(format string, args ...interface{}) {
	if w.Log != nil {
		w.Log(format, args...)
	}
}

func (w *Writer) noticef(format string, args ...interface{}) {
	if w.Notice != nil {
		w.Notice(format, args...)
	}
}
