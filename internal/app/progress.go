package app

import (
	"sync/atomic"

	"github.com/cheggaaa/pb"
)

// progressInterval is how many words pass between progress log lines.
const progressInterval = 10000

// progress returns the per-word callback for one analysis of total words and
// a finish func to call once the analysis returns. With cfg.Progress a bar is
// drawn on stderr; otherwise an Info line is logged every
// progressInterval words.
func (a *App) progress(total int) (onWord func(), finish func()) {
	if a.cfg.Progress && total > 0 {
		bar := pb.New(total)
		bar.Output = a.progressOut
		bar.ShowSpeed = true
		bar.Start()
		return func() { bar.Increment() }, bar.Finish
	}

	var n atomic.Int64
	onWord = func() {
		if c := n.Add(1); c%progressInterval == 0 {
			a.log.Info("processed words", "count", c)
		}
	}
	return onWord, func() {}
}
