package dircount

import (
	"context"
	"errors"
	"path/filepath"
	"time"
)

// Run walks the directory at opt.Path and returns the collected statistics.
//
// The path is cleaned before use. Progress is reported to obs, which may be nil.
// Errors are those of Walk.
func Run(ctx context.Context, opt Options, obs Observer) (*Stats, error) {
	log := logger{l: opt.Logger}

	if opt.Path == "" {
		return nil, errors.New("empty path")
	}

	// filepath.Clean handles both separators and converts to native format
	root := filepath.Clean(opt.Path)

	log.debug("starting walk", "root", root)

	start := time.Now()

	counts, err := walk(ctx, root, obs, log)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Counts:  counts,
		Root:    root,
		Elapsed: time.Since(start),
	}

	log.debug("walk finished",
		"files", stats.Files,
		"dirs", stats.Dirs,
		"bytes", stats.Bytes,
		"elapsed", stats.Elapsed,
	)

	return stats, nil
}
