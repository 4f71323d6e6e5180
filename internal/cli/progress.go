package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

// DefaultProgressInterval is the default interval between progress redraws.
const DefaultProgressInterval = 100 * time.Millisecond

// spinnerType selects the braille dot spinner.
const spinnerType = 14

// progress renders the walk's counters as a single spinner line.
// It implements dircount.Observer and is driven from the walking goroutine.
type progress struct {
	bar      *progressbar.ProgressBar
	interval time.Duration
	last     time.Time

	files uint64
	dirs  uint64
	bytes uint64
}

// newProgress creates a spinner writing to w.
func newProgress(w io.Writer, interval time.Duration) *progress {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSpinnerType(spinnerType),
		progressbar.OptionSetDescription("Processing..."),
		progressbar.OptionThrottle(interval),
		progressbar.OptionClearOnFinish(),
	)

	return &progress{bar: bar, interval: interval}
}

// OnDirectoryVisited implements dircount.Observer.
func (p *progress) OnDirectoryVisited(string) {
	p.dirs++
	p.tick()
}

// OnFileVisited implements dircount.Observer.
func (p *progress) OnFileVisited(string) {
	p.files++
	p.tick()
}

// OnBytesAdded implements dircount.Observer.
func (p *progress) OnBytesAdded(n uint64) {
	p.bytes += n
	p.tick()
}

// status returns the current progress line.
func (p *progress) status() string {
	return fmt.Sprintf("Processing... Files: %d  Dirs: %d  Size: %s",
		p.files, p.dirs, humanize.IBytes(p.bytes))
}

// tick advances the spinner and refreshes the description at most once per interval.
func (p *progress) tick() {
	if now := time.Now(); now.Sub(p.last) >= p.interval {
		p.last = now
		p.bar.Describe(p.status())
	}

	_ = p.bar.Add(1)
}

// finish stops the spinner and clears its line.
func (p *progress) finish() {
	_ = p.bar.Finish()
}
