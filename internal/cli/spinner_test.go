package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/wallcable/pkg/observability"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testSpinner(ctx context.Context, msg string) (*Spinner, *syncBuffer) {
	var out syncBuffer
	s := newSpinnerWithContext(ctx, msg)
	s.out = &out
	return s, &out
}

func TestSpinnerDraws(t *testing.T) {
	s, out := testSpinner(context.Background(), "Computing Center...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(out.String(), "Computing Center...") {
		t.Errorf("output %q missing message", out.String())
	}
	if s.Cancelled() {
		t.Error("stopped spinner reports cancelled")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	s, out := testSpinner(context.Background(), "first")
	s.draw("⠋")
	s.SetMessage("x")
	s.draw("⠙")

	if got := s.Message(); got != "x" {
		t.Errorf("Message() = %q, want x", got)
	}
	// The shorter second line is padded over the first.
	lines := strings.Split(out.String(), "\r")
	if len(lines) != 3 || len(lines[2]) < len(lines[1]) {
		t.Errorf("second line not padded: %q", out.String())
	}
}

func TestSpinnerCancelledByContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, _ := testSpinner(ctx, "waiting")
	s.Start()
	cancel()
	time.Sleep(50 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := testSpinner(context.Background(), "stop")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	s, _ := testSpinner(context.Background(), "start")
	restore := withSpinnerHooks(s)

	observability.Pipeline().OnComputeStart(context.Background(), "Center", 142)
	if got, want := s.Message(), "Computing Center (142 panels)..."; got != want {
		t.Errorf("after compute start: %q, want %q", got, want)
	}
	observability.Pipeline().OnRenderStart(context.Background(), "Center", "svg")
	if got, want := s.Message(), "Rendering Center as svg..."; got != want {
		t.Errorf("after render start: %q, want %q", got, want)
	}

	restore()
	observability.Pipeline().OnComputeStart(context.Background(), "Stage Left", 24)
	if strings.Contains(s.Message(), "Stage Left") {
		t.Error("hooks still routed to spinner after restore")
	}
}
