package corpus

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/veritaslabs/veritas/internal/embed"
)

// Watch reloads the corpus whenever the file at path changes, then
// rebuilds embeddings. It blocks until ctx is cancelled. Editors often
// emit several events per save, so reloads are debounced.
func (c *Corpus) Watch(ctx context.Context, path string, embedder embed.Embedder) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create corpus watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch corpus file %s: %w", path, err)
	}

	var debounce *time.Timer
	reload := func() {
		loaded, err := Load(path)
		if err != nil {
			log.Printf("corpus reload failed: %v", err)
			return
		}
		c.Replace(loaded.Entries())
		if err := c.Build(ctx, embedder); err != nil {
			log.Printf("corpus re-embed failed: %v", err)
			return
		}
		log.Printf("corpus reloaded: %d entries", c.Len())
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(500*time.Millisecond, reload)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("corpus watcher error: %v", err)
		}
	}
}
