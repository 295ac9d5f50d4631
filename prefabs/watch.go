package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports table and script files that change under the watched
// directories. A file is reported once it has been quiet for the debounce
// window, so a burst of writes yields one report after the last write.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changed chan string
	Errors  chan error

	settled chan settle
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		Changed: make(chan string, 16),
		Errors:  make(chan error, 1),
		settled: make(chan settle),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		<-w.done
		close(w.Changed)
		close(w.Errors)
	})
	return err
}

// settle is a quiet-period timer firing. gen tells a stale firing, one
// raced by a newer event on the same file, from the current one.
type settle struct {
	name string
	gen  int
}

type pendingFile struct {
	timer *time.Timer
	gen   int
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]*pendingFile)
	defer func() {
		for _, p := range pending {
			p.timer.Stop()
		}
	}()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			p, ok := pending[ev.Name]
			if ok {
				p.timer.Stop()
			} else {
				p = &pendingFile{}
				pending[ev.Name] = p
			}
			p.gen++
			s := settle{name: ev.Name, gen: p.gen}
			p.timer = time.AfterFunc(debounce, func() {
				select {
				case w.settled <- s:
				case <-w.closeCh:
				}
			})

		case s := <-w.settled:
			if p, ok := pending[s.name]; !ok || p.gen != s.gen {
				continue
			}
			delete(pending, s.name)
			select {
			case w.Changed <- s.name:
			case <-w.closeCh:
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.closeCh:
			return
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
