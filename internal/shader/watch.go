package shader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the pair from dir each time VertexFile or FragmentFile changes and sends
// it on the returned channel. Only the newest unread pair is kept. A reload that fails is
// logged and skipped. The watcher stops, closing the channel, when ctx is done.
func Watch(ctx context.Context, dir string, log Logger) (<-chan Pair, error) {
	if isURL(dir) {
		return nil, fmt.Errorf("shader: cannot watch remote source %s", dir)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader: watch: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("shader: watch %s: %w", dir, err)
	}

	out := make(chan Pair, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !relevant(ev) {
					continue
				}
				p, err := Load(ctx, dir)
				if err != nil {
					if log != nil {
						log.Log("shader reload skipped: " + err.Error())
					}
					continue
				}
				select {
				case <-out:
				default:
				}
				out <- p
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if log != nil {
					log.Log("shader watch: " + err.Error())
				}
			}
		}
	}()
	return out, nil
}

func relevant(ev fsnotify.Event) bool {
	switch filepath.Base(ev.Name) {
	case VertexFile, FragmentFile:
	default:
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
