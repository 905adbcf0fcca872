package progress

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/highwind-nft/highwind/internal/usecase"
)

// SpinnerSink renders progress events with a terminal spinner
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
	stage   string
}

// NewSpinnerSink creates a spinner-backed progress sink writing to stderr
func NewSpinnerSink() *SpinnerSink {
	return newSpinnerSink(os.Stderr)
}

func newSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     out,
	}
}

// OnProgress starts, updates or stops the spinner
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.stage = event.Stage

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

// pause stops the spinner around fn so output lines are not interleaved
func (r *SpinnerSink) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	fn()

	if wasActive {
		r.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
