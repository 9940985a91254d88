package app

import (
	"context"
	"errors"
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/service"
)

// Templates holds the parsed layout/component set. Page files are parsed per
// request on top of a clone of this set, so a reload only has to swap the root.
type Templates struct {
	mu       sync.RWMutex
	root     *template.Template
	viewsDir string
	log      zerolog.Logger
}

func InitTemplates(viewsDir string, log zerolog.Logger) (*Templates, error) {
	t := &Templates{
		viewsDir: viewsDir,
		log:      log.With().Str("component", "templates").Logger(),
	}
	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Templates) load() error {
	root := template.New("").Funcs(funcMap())

	// Layouts are required; components are optional.
	if _, err := root.ParseGlob(filepath.Join(t.viewsDir, "layouts", "*.html")); err != nil {
		return err
	}
	if _, err := root.ParseGlob(filepath.Join(t.viewsDir, "components", "*.html")); err != nil {
		t.log.Warn().Err(err).Msg("no components loaded")
	}

	t.mu.Lock()
	t.root = root
	t.mu.Unlock()

	t.log.Debug().Str("templates", root.DefinedTemplates()).Msg("templates loaded")
	return nil
}

// Base returns the current layout/component set. Callers must Clone before
// parsing page files into it.
func (t *Templates) Base() *template.Template {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root
}

// PagePath maps a page name like "public/index.html" to its file path.
func (t *Templates) PagePath(page string) string {
	return filepath.Join(t.viewsDir, "pages", page)
}

// Watch reloads the template set whenever a view file changes. Dev mode only;
// returns when ctx is done.
func (t *Templates) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	err = filepath.WalkDir(t.viewsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".html") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			t.log.Info().Str("file", event.Name).Msg("view changed, reloading templates")
			if err := t.load(); err != nil {
				t.log.Error().Err(err).Msg("template reload failed, keeping previous set")
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if !errors.Is(werr, fsnotify.ErrEventOverflow) {
				t.log.Warn().Err(werr).Msg("template watcher error")
			}
		}
	}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"list": func(values ...interface{}) []interface{} {
			return values
		},
		"formatMoney": func(val interface{}) string {
			return humanize.Commaf(cast.ToFloat64(val))
		},
		"sub": func(a, b int) int { return a - b },
		"add": func(a, b int) int { return a + b },
		"seq": func(from, to int) []int {
			if to < from {
				return nil
			}
			out := make([]int, 0, to-from+1)
			for i := from; i <= to; i++ {
				out = append(out, i)
			}
			return out
		},
		"substr": func(start, length int, s string) string {
			if start < 0 {
				start = 0
			}
			if start >= len(s) {
				return ""
			}
			end := start + length
			if end > len(s) {
				end = len(s)
			}
			return s[start:end]
		},
		"urlslug": func(svc core.ServiceRecord) string {
			return service.URLSlug(svc)
		},
	}
}
