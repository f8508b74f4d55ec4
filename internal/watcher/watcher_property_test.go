//go:build property

package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var fixtureNames = []string{"a.yml", "b.yml", "c.yml", "diaries.yml"}

func TestFileWatcherProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9876)
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("rapid writes to the data file collapse into fewer batches", prop.ForAll(
		func(debounceMs int, changeCount int) bool {
			dir := t.TempDir()
			target := filepath.Join(dir, "diaries.yml")
			if err := os.WriteFile(target, []byte("diaries: []\n"), 0o644); err != nil {
				return false
			}

			watcher, err := NewFileWatcher(time.Duration(debounceMs)*time.Millisecond, nil)
			if err != nil {
				return false
			}
			defer watcher.Stop()

			var (
				mu      sync.Mutex
				batches int
				paths   = map[string]bool{}
			)
			watcher.AddHandler(func(events []ChangeEvent) error {
				mu.Lock()
				defer mu.Unlock()
				batches++
				for _, e := range events {
					paths[e.Path] = true
				}
				return nil
			})
			if err := watcher.WatchFile(target); err != nil {
				return false
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := watcher.Start(ctx); err != nil {
				return false
			}

			for i := 0; i < changeCount; i++ {
				content := fmt.Sprintf("diaries: []\n# revision %d\n", i)
				if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
					return false
				}
				time.Sleep(time.Duration(debounceMs/4) * time.Millisecond)
			}

			time.Sleep(time.Duration(debounceMs*3) * time.Millisecond)

			mu.Lock()
			defer mu.Unlock()
			return batches >= 1 && batches <= changeCount && len(paths) == 1 && paths[target]
		},
		gen.IntRange(40, 200),
		gen.IntRange(2, 8),
	))

	properties.Property("debouncer keeps one event per path", prop.ForAll(
		func(picks []int) bool {
			names := make([]string, len(picks))
			for i, p := range picks {
				names[i] = fixtureNames[p]
			}

			d := &Debouncer{
				delay:  time.Hour,
				events: make(chan ChangeEvent, 1),
				output: make(chan []ChangeEvent, 1),
			}

			unique := map[string]bool{}
			for _, n := range names {
				d.addEvent(ChangeEvent{Type: EventTypeModified, Path: n})
				unique[n] = true
			}
			if len(names) == 0 {
				d.flush()
				return len(d.output) == 0
			}
			d.timer.Stop()
			d.flush()

			events := <-d.output
			if len(events) != len(unique) {
				return false
			}
			for i := 1; i < len(events); i++ {
				if events[i-1].Path >= events[i].Path {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, len(fixtureNames)-1)),
	))

	properties.TestingRun(t)
}
