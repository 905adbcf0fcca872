package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/highwind-nft/highwind/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerSink(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx := context.Background()
	var buf bytes.Buffer
	sink := newSpinnerSink(&buf)

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "signer", Message: "Building signer", Spinner: true})
	assert.Equal(t, " Building signer", sink.spinner.Suffix)
	assert.Equal(t, "signer", sink.stage)

	sink.Info("hello")
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "check"})
	assert.False(t, sink.spinner.Active())
	assert.Equal(t, "check", sink.stage)

	sink.Error("boom")
	assert.Contains(t, buf.String(), "hello\n")
	assert.Contains(t, buf.String(), "boom\n")
}

func TestForConfig(t *testing.T) {
	assert.IsType(t, &NopSink{}, ForConfig(true, false))
	assert.IsType(t, &NopSink{}, ForConfig(false, true))
	assert.IsType(t, &SpinnerSink{}, ForConfig(false, false))
}
