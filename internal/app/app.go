// Package app wires together the lexicon sources, the optional cache and the
// n-gram analysis. It owns one run's lifecycle: load, analyze, and rerun on
// change in watch mode. Formatting the result is left to the caller.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/corey/ngram/internal/adapters/bbolt"
	"github.com/corey/ngram/internal/adapters/subtlex"
	"github.com/corey/ngram/internal/adapters/wordcount"
	"github.com/corey/ngram/internal/config"
	"github.com/corey/ngram/internal/domain/ngram"
	"github.com/corey/ngram/internal/ports"
)

// Source names the kind of lexicon file a Request reads.
type Source string

const (
	// SourceSubtlex is a SUBTLEX-style CSV with typed columns.
	SourceSubtlex Source = "subtlex"
	// SourceWordCount is a flat file of "word count" pairs.
	SourceWordCount Source = "count"
)

// Request describes one analysis input.
type Request struct {
	Source Source
	Path   string
	// Column is the weight column of a SourceSubtlex file.
	Column string
}

// App is the top-level container wiring all components together.
type App struct {
	cfg   *config.Config
	log   *slog.Logger
	cache ports.LexiconCache // nil = caching disabled
	store *bbolt.Store       // owned; closed by Close

	// progressOut receives the progress bar when cfg.Progress is set.
	progressOut io.Writer
}

// New creates an App from cfg. When cfg.CachePath is set the bbolt cache is
// opened there (AutoCachePath selects the per-user default).
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{cfg: cfg, log: logger, progressOut: os.Stderr}

	path, err := ResolveCachePath(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	if path != "" {
		store, err := bbolt.NewStore(path)
		if err != nil {
			return nil, fmt.Errorf("open cache %s: %w", path, err)
		}
		a.store = store
		a.cache = store
		a.log.Debug("lexicon cache opened", "path", path)
	}
	return a, nil
}

// Close releases the cache, if one was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	a.cache = nil
	return err
}

// Load reads and validates the lexicon named by req, consulting the cache
// first. A cache failure is logged and never fails the load.
func (a *App) Load(req Request) ([]ports.Entry, error) {
	key, fp, cacheable := a.cacheKey(req)
	if cacheable {
		entries, err := a.cache.LoadLexicon(key, fp)
		switch {
		case err != nil:
			a.log.Warn("lexicon cache read failed", "key", key, "err", err)
		case entries != nil:
			a.log.Info("lexicon loaded from cache", "path", req.Path, "words", len(entries))
			return entries, nil
		default:
			a.log.Debug("lexicon cache miss", "key", key)
		}
	}

	entries, err := loadSource(req)
	if err != nil {
		return nil, err
	}
	a.log.Info("lexicon loaded", "source", string(req.Source), "path", req.Path, "words", len(entries))

	if cacheable {
		if err := a.cache.SaveLexicon(key, fp, entries); err != nil {
			a.log.Warn("lexicon cache write failed", "key", key, "err", err)
		}
	}
	return entries, nil
}

// Run loads the lexicon named by req and analyzes it.
func (a *App) Run(ctx context.Context, req Request) (*ngram.Result, error) {
	entries, err := a.Load(req)
	if err != nil {
		return nil, err
	}

	onWord, finish := a.progress(len(entries))
	a.log.Debug("analysis started", "words", len(entries), "workers", a.cfg.Workers)
	res, err := ngram.Analyze(ctx, entries, ngram.Options{
		Workers: a.cfg.Workers,
		OnWord:  onWord,
	})
	finish()
	if err != nil {
		return nil, err
	}
	a.log.Debug("analysis finished",
		"words", res.Table.Words,
		"buckets", len(res.Table.Buckets),
		"grand_total", res.Table.GrandTotal())
	return res, nil
}

func loadSource(req Request) ([]ports.Entry, error) {
	switch req.Source {
	case SourceSubtlex:
		im, err := subtlex.Open(req.Path)
		if err != nil {
			return nil, err
		}
		column := req.Column
		if column == "" {
			column = subtlex.FrequencyColumn
		}
		lex, err := im.Lexicon(column)
		if err != nil {
			return nil, err
		}
		return lex.Entries(), nil
	case SourceWordCount:
		d, err := wordcount.Open(req.Path)
		if err != nil {
			return nil, err
		}
		return d.Entries(), nil
	default:
		return nil, fmt.Errorf("unknown lexicon source %q", req.Source)
	}
}

// cacheKey identifies req in the cache. cacheable is false when caching is
// off or the input cannot be stat'ed (the load then reports the error).
func (a *App) cacheKey(req Request) (key string, fp ports.Fingerprint, cacheable bool) {
	if a.cache == nil {
		return "", ports.Fingerprint{}, false
	}
	abs, err := filepath.Abs(req.Path)
	if err != nil {
		return "", ports.Fingerprint{}, false
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", ports.Fingerprint{}, false
	}

	key = string(req.Source) + ":" + abs
	if req.Source == SourceSubtlex {
		column := req.Column
		if column == "" {
			column = subtlex.FrequencyColumn
		}
		key += ":" + column
	}
	fp = ports.Fingerprint{Size: info.Size(), ModTime: info.ModTime().UnixNano()}
	return key, fp, true
}
