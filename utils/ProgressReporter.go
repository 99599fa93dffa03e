package utils

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter defines methods for reporting progress.
type ProgressReporter interface {
	// SetTotal reinitializes the progress bar with the new total count.
	SetTotal(total int)
	// Increment increases the progress by one.
	Increment()
}

// BarProgressReporter is a concrete implementation using progressbar.
type BarProgressReporter struct {
	description string
	bar         *progressbar.ProgressBar
}

// NewBarProgressReporter creates a new BarProgressReporter with the given total and description.
func NewBarProgressReporter(total int, description string) *BarProgressReporter {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(100e6),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionUseANSICodes(true),
	)
	return &BarProgressReporter{
		description: description,
		bar:         bar,
	}
}

// SetTotal resizes the progress bar for the new total count.
func (p *BarProgressReporter) SetTotal(total int) {
	p.bar.ChangeMax(total)
	p.bar.Reset()
}

// Increment increases the progress bar by one.
func (p *BarProgressReporter) Increment() {
	_ = p.bar.Add(1)
}
