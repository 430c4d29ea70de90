package picker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// NativeDialog shows the platform file chooser. Load blocks the calling
// goroutine until the user resolves the dialog.
type NativeDialog struct{}

func (NativeDialog) PickFile(opts Options) (File, error) {
	builder := dialog.File()
	if opts.Title != "" {
		builder = builder.Title(opts.Title)
	}
	if len(opts.Extensions) > 0 {
		builder = builder.Filter(opts.FilterName, opts.Extensions...)
	}
	if opts.StartDir != "" {
		builder = builder.SetStartDir(opts.StartDir)
	}

	path, err := builder.Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return nil, ErrCanceled
		}
		return nil, fmt.Errorf("native dialog: %w", err)
	}
	if path == "" {
		return nil, ErrCanceled
	}

	return NewLocalFile(path), nil
}

// LocalFile is a chosen file on the local filesystem.
type LocalFile struct {
	path string
}

func NewLocalFile(path string) *LocalFile {
	return &LocalFile{path: path}
}

// Name returns the display name, the path's final element.
func (f *LocalFile) Name() string {
	return filepath.Base(f.path)
}

func (f *LocalFile) Path() string {
	return f.path
}

func (f *LocalFile) Read() ([]byte, error) {
	return os.ReadFile(f.path)
}
