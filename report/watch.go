// report/watch.go
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay gives writers that replace the snapshot file time to
// finish before the re-render reads it.
const settleDelay = 250 * time.Millisecond

// WatchBreakdown renders the breakdown once, then re-renders whenever
// the snapshot file is rewritten. The parent directory is watched
// because producers typically replace the file rather than writing in
// place. It returns only when the initial render or the watcher fails.
func WatchBreakdown(path string, opts Options) error {
	if err := RunBreakdown(path, opts); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not start watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("could not resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("could not watch %s: %w", filepath.Dir(target), err)
	}
	fmt.Printf("\nWatching %s for changes...\n", path)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			evPath, _ := filepath.Abs(ev.Name)
			if evPath != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			time.Sleep(settleDelay)
			drain(watcher)
			fmt.Printf("\n%s changed at %s\n\n", path, time.Now().Format("15:04:05"))
			if err := RunBreakdown(path, opts); err != nil {
				// Likely a half-written file; the next event retries.
				fmt.Println(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch failed: %w", err)
		}
	}
}

// drain discards the burst of events a single rewrite produces.
func drain(watcher *fsnotify.Watcher) {
	for {
		select {
		case <-watcher.Events:
		default:
			return
		}
	}
}
