package app

import (
	"context"
	"fmt"

	"github.com/corey/ngram/internal/domain/ngram"
	"github.com/corey/ngram/internal/ports"
)

// Watch runs req once and hands the result to emit, then reruns the full
// analysis each time w reports a change to req.Path, until ctx is done.
//
// A failed first run is returned. A failed rerun (for example a file caught
// half-written) is logged and the loop keeps waiting for the next change.
// An emit error stops the loop. Watch stops w before returning.
func (a *App) Watch(ctx context.Context, req Request, w ports.Watcher, emit func(*ngram.Result) error) error {
	res, err := a.Run(ctx, req)
	if err != nil {
		return err
	}
	if err := emit(res); err != nil {
		return err
	}

	// One pending signal is enough: a rerun reads the file as it is then.
	changes := make(chan struct{}, 1)
	err = w.Watch(req.Path, func(string) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", req.Path, err)
	}
	defer w.Stop()
	a.log.Info("watching for changes", "path", req.Path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			a.log.Info("input changed, rerunning", "path", req.Path)
			res, err := a.Run(ctx, req)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.log.Error("rerun failed", "path", req.Path, "err", err)
				continue
			}
			if err := emit(res); err != nil {
				return err
			}
		}
	}
}
