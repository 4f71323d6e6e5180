package dircount

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
	"github.com/charmbracelet/log"
)

// logger provides conditional debug output.
type logger struct {
	l *log.Logger
}

// debug logs if a logger is configured.
func (l logger) debug(msg string, keyvals ...any) {
	if l.l != nil {
		l.l.Debug(msg, keyvals...)
	}
}

// nopObserver is used when the caller passes no observer.
type nopObserver struct{}

func (nopObserver) OnDirectoryVisited(string) {}
func (nopObserver) OnFileVisited(string)      {}
func (nopObserver) OnBytesAdded(uint64)       {}

// Walk traverses the tree rooted at root and returns the accumulated counts.
//
// The root must exist and be a directory. A failure to read the root's
// metadata, or to list any directory below it, aborts the walk with an
// *IOError and no counts. Files whose metadata cannot be read are still
// counted but contribute zero bytes.
//
// obs may be nil.
func Walk(ctx context.Context, root string, obs Observer) (Counts, error) {
	return walk(ctx, root, obs, logger{})
}

func walk(ctx context.Context, root string, obs Observer, log logger) (Counts, error) {
	if obs == nil {
		obs = nopObserver{}
	}

	info, err := os.Stat(root)
	if err != nil {
		return Counts{}, &IOError{Op: "stat", Path: root, Err: err}
	}

	if !info.IsDir() {
		return Counts{}, fmt.Errorf("path %q: %w", root, ErrNotDirectory)
	}

	var counts Counts

	// Directories still to visit. Popping from the end gives depth-first order.
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return Counts{}, err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		counts.Dirs++
		obs.OnDirectoryVisited(dir)

		entries, err := os.ReadDir(dir)
		if err != nil {
			return Counts{}, &IOError{Op: "read directory", Path: dir, Err: err}
		}

		log.debug("listing directory", "path", dir, "entries", len(entries))

		var subdirs []string

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			if entry.IsDir() {
				subdirs = append(subdirs, path)

				continue
			}

			// Follows symlinks, so a link to a directory is descended into
			// and a link to a file reports the target's size.
			info, err := fastwalk.StatDirEntry(path, entry)
			if err == nil && info.IsDir() {
				subdirs = append(subdirs, path)

				continue
			}

			counts.Files++
			obs.OnFileVisited(path)

			if err != nil {
				log.debug("skipping size of unreadable file", "path", path, "err", err)

				continue
			}

			size := uint64(info.Size()) //nolint:gosec // Sizes reported by stat are never negative
			counts.Bytes += size
			obs.OnBytesAdded(size)
		}

		// Push in reverse so subdirectories are visited in listing order.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return counts, nil
}
