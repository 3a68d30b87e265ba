package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"example.com/ste/pkg/buffer"
)

var (
	// ErrNoPath is returned by Save when the session has no file name.
	ErrNoPath = errors.New("no file name")
	// ErrNotUTF8 marks input that cannot be edited without corrupting it.
	ErrNotUTF8 = errors.New("file is not valid UTF-8")
)

// LoadStatus tags the outcome of LoadFile.
type LoadStatus int

const (
	// Loaded means the file was read into the buffer.
	Loaded LoadStatus = iota
	// NewFile means there is nothing on disk yet; the buffer starts empty.
	NewFile
	// LoadFailed means the file exists but could not be used.
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case NewFile:
		return "new file"
	case LoadFailed:
		return "load failed"
	}
	return fmt.Sprintf("LoadStatus(%d)", int(s))
}

// LoadResult is returned by LoadFile. Err is set only for LoadFailed.
type LoadResult struct {
	Status LoadStatus
	Lines  int
	Err    error
}

// LoadFile replaces the buffer with the contents of path and resets the
// cursor. A missing file is a new file, not an error. On LoadFailed the
// buffer is left empty and the caller decides whether to continue.
func (r *Runner) LoadFile(path string) LoadResult {
	r.Buf = buffer.New()
	r.Row, r.Col, r.Offset = 0, 0, 0
	r.File = InputFile{Path: path, Hash: r.Buf.CalculateHash()}
	if path == "" {
		return LoadResult{Status: NewFile, Lines: 1}
	}

	r.Logger.Event("open.attempt", map[string]any{"file": path})
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.Logger.Event("open.new", map[string]any{"file": path})
		return LoadResult{Status: NewFile, Lines: 1}
	case err != nil:
		r.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return LoadResult{Status: LoadFailed, Err: err}
	case !utf8.Valid(data):
		err = fmt.Errorf("%s: %w", path, ErrNotUTF8)
		r.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return LoadResult{Status: LoadFailed, Err: err}
	}

	r.Buf = buffer.FromLines(buffer.SplitLines(string(data)))
	r.File.Exists = true
	r.File.Hash = r.Buf.CalculateHash()
	r.Logger.Event("open.success", map[string]any{"file": path, "bytes": len(data), "lines": r.Buf.LinesCount()})
	return LoadResult{Status: Loaded, Lines: r.Buf.LinesCount()}
}

// Save trims trailing blank lines, writes the buffer to the current path,
// creating the file if needed, and records the new content hash.
func (r *Runner) Save() error {
	r.ensureBuffer()
	if r.File.Path == "" {
		return ErrNoPath
	}
	r.Buf.RemoveEmptyLines(0, true)
	if last := r.Buf.LinesCount() - 1; r.Row > last {
		r.Row = last
	}
	data := []byte(r.Buf.String())
	if err := os.WriteFile(r.File.Path, data, 0644); err != nil {
		return err
	}
	r.File.Exists = true
	r.File.Hash = r.Buf.CalculateHash()
	return nil
}

// saveFromKey saves and reports the outcome in the status bar. Failures
// leave the session running.
func (r *Runner) saveFromKey() {
	if err := r.Save(); err != nil {
		r.Message = "save failed: " + err.Error()
		r.Logger.Event("save.error", map[string]any{"file": r.File.Path, "error": err.Error()})
		return
	}
	n := r.Buf.LinesCount()
	r.Message = fmt.Sprintf("%d lines written to %s", n, r.File.Path)
	r.Logger.Event("save.success", map[string]any{"file": r.File.Path, "lines": n})
}
