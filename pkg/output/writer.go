package output

import (
	"fmt"
	"path/filepath"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/filesystem"
	log "github.com/cloudposse/fngen/pkg/logger"
	"github.com/cloudposse/fngen/pkg/schema"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer saves generated code next to the user.
type Writer struct {
	fs     filesystem.FileSystem
	dir    string
	suffix string
	maxLen int
}

// NewWriter creates a Writer from the generator settings. A nil fs uses the local disk.
func NewWriter(fs filesystem.FileSystem, settings *schema.GeneratorSettings) *Writer {
	if fs == nil {
		fs = filesystem.NewOSFileSystem()
	}

	w := &Writer{
		fs:     fs,
		dir:    ".",
		suffix: DefaultSuffix,
		maxLen: DefaultMaxNameLength,
	}
	if settings == nil {
		return w
	}
	if settings.OutputDir != "" {
		w.dir = settings.OutputDir
	}
	if settings.FilenameSuffix != "" {
		w.suffix = settings.FilenameSuffix
	}
	if settings.MaxNameLength > 0 {
		w.maxLen = settings.MaxNameLength
	}
	return w
}

// Path returns where Save would write code for description.
func (w *Writer) Path(description, ext string) string {
	return filepath.Join(w.dir, Filename(description, w.suffix, ext, w.maxLen))
}

// Save writes code verbatim and returns the written path.
// Any failure is returned as ErrFileWrite.
func (w *Writer) Save(description, ext, code string) (string, error) {
	path := w.Path(description, ext)

	if info, err := w.fs.Stat(w.dir); err == nil && !info.IsDir() {
		return "", errUtils.Build(errUtils.ErrFileWrite).
			WithCause(fmt.Errorf("%s is not a directory", w.dir)).
			WithHint("Point --output-dir or settings.generator.output_dir at a directory").
			WithContext("dir", w.dir).
			Err()
	}

	if err := w.fs.MkdirAll(w.dir, dirPerm); err != nil {
		return "", errUtils.Build(errUtils.ErrFileWrite).
			WithCause(err).
			WithContext("dir", w.dir).
			Err()
	}

	if err := w.fs.WriteFile(path, []byte(code), filePerm); err != nil {
		return "", errUtils.Build(errUtils.ErrFileWrite).
			WithCause(err).
			WithContext("path", path).
			Err()
	}

	log.Debug("Saved generated code", "path", path, "bytes", len(code))
	return path, nil
}
