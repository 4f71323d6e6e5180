package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dircount/internal/dircount"
)

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newLogger creates the stderr logger, at debug level if requested.
func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "dircount",
		Level:  log.WarnLevel,
	})

	if debug {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	}

	return logger
}

func (c CLI) logic(ctx context.Context, opts options) error {
	enableProgress := !opts.NoProgress &&
		!opts.Debug &&
		isTerminal(c.stderr)

	var (
		observer dircount.Observer
		spinner  *progress
	)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(c.stderr, "\033[?25l")
		defer fmt.Fprint(c.stderr, "\033[?25h")

		spinner = newProgress(c.stderr, opts.ProgressInterval)
		observer = spinner
	}

	stats, err := dircount.Run(ctx, dircount.Options{
		Path:   opts.Path,
		Logger: newLogger(c.stderr, opts.Debug),
	}, observer)

	if spinner != nil {
		spinner.finish()
	}

	if errors.Is(err, dircount.ErrNotDirectory) {
		printError(c.stderr, "Provided path is not a directory", isTerminal(c.stderr))

		return nil
	}

	if err != nil {
		return err
	}

	return PrintReport(stats, c.stdout, isTerminal(c.stdout))
}
