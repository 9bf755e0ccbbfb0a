// Package ingest reads class descriptors from disk and feeds them into
// a reachability engine. Parsing a real .class file into reach.Clazz is
// out of scope for this repo (see reach.Clazz's doc comment); this
// package's driver instead reads the JSON shape reach.Clazz already
// serializes to, the contract a class-file frontend would produce.
package ingest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/intrigus/robovm/internal/reach"
	"github.com/intrigus/robovm/internal/report"
)

const descriptorCacheSize = 4096

type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

// Loader reads JSON class descriptors, caching parsed results by
// (path, size, mtime) so repeated LoadFile calls on an unchanged file
// decode it only once per Loader.
type Loader struct {
	cache *lru.Cache[cacheKey, reach.Clazz]
}

// NewLoader constructs a Loader with its descriptor cache sized for a
// typical single-run workload.
func NewLoader() (*Loader, error) {
	cache, err := lru.New[cacheKey, reach.Clazz](descriptorCacheSize)
	if err != nil {
		return nil, fmt.Errorf("ingest: constructing descriptor cache: %w", err)
	}
	return &Loader{cache: cache}, nil
}

// LoadFile parses one JSON class descriptor, serving a cache hit when
// the file's size and modification time match a previous read.
func (l *Loader) LoadFile(path string) (reach.Clazz, error) {
	info, err := os.Stat(path)
	if err != nil {
		return reach.Clazz{}, fmt.Errorf("ingest: stat %s: %w", path, err)
	}

	key := cacheKey{path: path, size: info.Size(), modTime: info.ModTime().UnixNano()}
	if cached, ok := l.cache.Get(key); ok {
		return cached, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return reach.Clazz{}, fmt.Errorf("ingest: reading %s: %w", path, err)
	}

	var clazz reach.Clazz
	if err := json.Unmarshal(content, &clazz); err != nil {
		return reach.Clazz{}, fmt.Errorf("ingest: parsing %s: %w", path, err)
	}

	l.cache.Add(key, clazz)
	return clazz, nil
}

// LoadDir walks dir for *.json descriptors and parses each one,
// reporting progress through logger when non-nil. Parse errors on
// individual files are collected and returned alongside whatever
// classes did parse successfully, so one bad descriptor does not
// discard an otherwise-good batch.
func (l *Loader) LoadDir(dir string, logger *report.Logger) ([]reach.Clazz, []error) {
	var paths []string
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			paths = append(paths, path)
		}
		return nil
	})

	var errs []error
	if walkErr != nil {
		errs = append(errs, fmt.Errorf("ingest: walking %s: %w", dir, walkErr))
	}

	if logger != nil {
		logger.StartProgress("Loading class descriptors", len(paths))
		defer logger.FinishProgress()
	}

	classes := make([]reach.Clazz, 0, len(paths))
	for _, p := range paths {
		clazz, err := l.LoadFile(p)
		if err != nil {
			errs = append(errs, err)
		} else {
			classes = append(classes, clazz)
		}
		if logger != nil {
			logger.UpdateProgress(1)
		}
	}

	return classes, errs
}
