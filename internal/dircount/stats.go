package dircount

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrUsage is returned when the tool is invoked with the wrong arguments.
	ErrUsage = errors.New("usage error")
	// ErrNotDirectory is returned when the root path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// IOError reports a filesystem failure that aborts the walk.
type IOError struct {
	// Op is the failed operation, e.g. "stat" or "read directory".
	Op string
	// Path is the path the operation was applied to.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Counts holds the counters accumulated during a walk.
type Counts struct {
	// Files is the number of non-directory entries visited.
	Files uint64
	// Dirs is the number of directories visited, the root included.
	Dirs uint64
	// Bytes is the summed size of all files whose metadata could be read.
	Bytes uint64
}

// Entries returns the total number of visited entries.
func (c Counts) Entries() uint64 {
	return c.Files + c.Dirs
}

// Stats holds the result of a run.
type Stats struct {
	Counts

	// Root is the cleaned root path that was walked.
	Root string
	// Elapsed is the wall-clock duration of the walk.
	Elapsed time.Duration
}

// Options configures a run.
type Options struct {
	// Path is the directory to walk.
	Path string
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Observer is notified as the walk progresses.
// Callbacks never influence the counts.
type Observer interface {
	OnDirectoryVisited(path string)
	OnFileVisited(path string)
	OnBytesAdded(n uint64)
}

// ObserverFuncs adapts plain functions to the Observer interface.
// Nil fields are skipped.
type ObserverFuncs struct {
	Directory func(path string)
	File      func(path string)
	Bytes     func(n uint64)
}

// OnDirectoryVisited implements Observer.
func (o ObserverFuncs) OnDirectoryVisited(path string) {
	if o.Directory != nil {
		o.Directory(path)
	}
}

// OnFileVisited implements Observer.
func (o ObserverFuncs) OnFileVisited(path string) {
	if o.File != nil {
		o.File(path)
	}
}

// OnBytesAdded implements Observer.
func (o ObserverFuncs) OnBytesAdded(n uint64) {
	if o.Bytes != nil {
		o.Bytes(n)
	}
}
