package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatch(t *testing.T) {
	assert := assert.New(t)

	p, layout, runner := newTestPipeline(t)
	if err := os.WriteFile(layout.Program, []byte("int a;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var reports atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.Watch(ctx, layout.Program, 10*time.Millisecond, func(rpt *Report, err error) {
			reports.Add(1)
		})
	}()

	// Unrelated files in the same directory do not trigger a run.
	other := filepath.Join(filepath.Dir(layout.Program), "notes.txt")

	assert.Eventually(func() bool {
		_ = os.WriteFile(other, []byte("x"), 0o644)
		_ = os.WriteFile(layout.Program, []byte("int a = 1;\n"), 0o644)
		return reports.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(<-done)

	// The first run completed every step before it was reported.
	assert.GreaterOrEqual(runner.calls(), 3)
}

func TestWatchMissingDir(t *testing.T) {
	assert := assert.New(t)

	p, _, _ := newTestPipeline(t)
	err := p.Watch(context.Background(), filepath.Join(t.TempDir(), "no", "such.sl"), time.Millisecond, nil)
	assert.Error(err)
}
