package picker

import "errors"

// ErrCanceled is returned by a Dialog when the user dismisses it without choosing a file.
var ErrCanceled = errors.New("picker: dialog canceled")

// PickRequest asks the worker to open the file dialog. It carries no payload.
type PickRequest struct{}

// FileSelection reports a file the user chose. Err is set when the file was
// chosen but its content could not be read.
type FileSelection struct {
	Name string
	Path string
	Size int
	Err  error
}

type State int32

const (
	StateIdle State = iota
	StateAwaitingUser
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAwaitingUser:
		return "AwaitingUser"
	default:
		return "Unknown"
	}
}

// Options configures each dialog invocation.
type Options struct {
	Title      string
	FilterName string
	Extensions []string
	StartDir   string
}

func DefaultOptions() Options {
	return Options{
		Title:      "Open File",
		FilterName: "text",
		Extensions: []string{"txt"},
		StartDir:   ".",
	}
}

// File is a handle to the chosen file.
type File interface {
	Name() string
	Path() string
	Read() ([]byte, error)
}

// Dialog shows a modal file chooser and blocks until the user resolves it.
// Implementations return ErrCanceled when nothing was chosen.
type Dialog interface {
	PickFile(opts Options) (File, error)
}

// DialogFunc adapts a function to Dialog.
type DialogFunc func(opts Options) (File, error)

func (f DialogFunc) PickFile(opts Options) (File, error) {
	return f(opts)
}
