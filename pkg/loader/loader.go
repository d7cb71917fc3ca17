package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mpapenbr/careerstats/log"
	"github.com/mpapenbr/careerstats/pkg/model"
	"github.com/mpapenbr/careerstats/pkg/utils/cache"
	"github.com/mpapenbr/careerstats/pkg/utils/cache/loadercache"
)

var ErrEmptyFile = errors.New("empty career file")

// Parse decodes a career save file. Fields with unexpected shapes are read leniently,
// only invalid json and empty input are reported.
func Parse(r io.Reader) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read career data: %w", err)
	}
	return ParseBytes(data)
}

func ParseBytes(data []byte) (*model.Document, error) {
	// the game writes a BOM in front of the document
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}
	doc := &model.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode career data: %w", err)
	}
	return doc, nil
}

// LoadFile reads and parses the career file at path
func LoadFile(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	doc, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}

// DocumentCache holds parsed documents by file path
type DocumentCache struct {
	c   cache.Cache[string, model.Document]
	log *log.Logger
}

type CacheOption func(dc *cacheConfig)

type cacheConfig struct {
	expiration time.Duration
	log        *log.Logger
}

// WithExpiration sets the time after which a document is read again. 0 keeps it forever
func WithExpiration(d time.Duration) CacheOption {
	return func(cfg *cacheConfig) {
		cfg.expiration = d
	}
}

func WithLogger(l *log.Logger) CacheOption {
	return func(cfg *cacheConfig) {
		cfg.log = l
	}
}

func NewDocumentCache(opts ...CacheOption) *DocumentCache {
	cfg := &cacheConfig{log: log.Default().Named("loader")}
	for _, opt := range opts {
		opt(cfg)
	}
	return &DocumentCache{
		log: cfg.log,
		c: loadercache.New(
			loadercache.WithExpiration[string, model.Document](cfg.expiration),
			loadercache.WithLogger[string, model.Document](cfg.log.Named("cache")),
			loadercache.WithLoader(func(ctx context.Context, path string) (
				*model.Document, error,
			) {
				cfg.log.Debug("loading career file", log.String("file", path))
				return LoadFile(path)
			})),
	}
}

func (dc *DocumentCache) Get(ctx context.Context, path string) (*model.Document, error) {
	return dc.c.Get(ctx, path)
}

// Reload drops the cached document of path and reads it again
func (dc *DocumentCache) Reload(ctx context.Context, path string) (*model.Document, error) {
	dc.c.Invalidate(ctx, path)
	return dc.c.Get(ctx, path)
}

func (dc *DocumentCache) Len() int {
	return dc.c.Len()
}
