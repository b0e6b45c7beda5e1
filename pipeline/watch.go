package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after a change before a run starts.
const DefaultDebounce = 250 * time.Millisecond

// Watch re-runs the pipeline each time the file at path is written.
//
// Changes are debounced; runs happen on the calling goroutine so they never
// overlap. onReport, if set, receives every run's outcome. Watch returns nil
// once ctx is done.
func (p *Pipeline) Watch(ctx context.Context, path string, debounce time.Duration, onReport func(*Report, error)) (err error) {
	path, err = filepath.Abs(path)
	if err != nil {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}
	defer watcher.Close()

	// Watch the directory; editors often replace files rather than write them.
	err = watcher.Add(filepath.Dir(path))
	if err != nil {
		return
	}

	log := p.logger().With(zap.String("watch", path))
	log.Info("watching")

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("change", zap.Stringer("op", event.Op))
			timer.Reset(debounce)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error", zap.Error(werr))
		case <-timer.C:
			rpt, rerr := p.Run(ctx)
			if onReport != nil {
				onReport(rpt, rerr)
			}
		}
	}
}
