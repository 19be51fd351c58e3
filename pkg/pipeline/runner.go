package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/cache"
	"github.com/matzehuels/pyunparse/pkg/io"
	"github.com/matzehuels/pyunparse/pkg/observability"
	"github.com/matzehuels/pyunparse/pkg/render/treeviz"
	"github.com/matzehuels/pyunparse/pkg/unparse"
)

// Cache key types reported to [observability.CacheHooks].
const (
	keyTypeRender = "render"
	keyTypeVisual = "visual"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and HTTP server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// RenderTTL is the lifetime of cached source text.
	RenderTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, logs are discarded.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{
		Cache:     c,
		Keyer:     keyer,
		Logger:    logger,
		RenderTTL: cache.TTLRender,
	}
}

// Execute runs the complete decode → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Decode
	decodeStart := time.Now()
	tree, err := r.Decode(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	result.Tree = tree
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.Statements = StatementCount(tree)

	result.TreeHash, err = HashTree(tree)
	if err != nil {
		return nil, fmt.Errorf("hash tree: %w", err)
	}

	opts.Logger.Debug("decoded tree",
		"statements", result.Stats.Statements,
		"hash", result.TreeHash[:12],
		"duration", result.Stats.DecodeTime)

	// Stage 2: Render
	renderStart := time.Now()
	src, renderHit, err := r.RenderWithCacheInfo(ctx, tree, result.TreeHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Source = src
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Bytes = len(src)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered source",
		"statements", result.Stats.Statements,
		"bytes", result.Stats.Bytes,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Decode returns opts.Tree, or decodes opts.Source when no tree is given.
func (r *Runner) Decode(ctx context.Context, opts Options) (ast.Node, error) {
	if err := opts.ValidateInput(); err != nil {
		return nil, err
	}
	if opts.Tree != nil {
		return opts.Tree, nil
	}

	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, len(opts.Source))
	start := time.Now()
	tree, err := io.ReadTree(bytes.NewReader(opts.Source))
	hooks.OnDecodeComplete(ctx, StatementCount(tree), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// RenderWithCacheInfo renders tree with caching and returns cache hit info.
// treeHash must be the [HashTree] of tree.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, tree ast.Node, treeHash string, opts Options) (string, bool, error) {
	r.applyLogger(&opts)
	opts.SetRenderDefaults()

	cacheKey := r.Keyer.RenderKey(treeHash, opts.RenderKeyOpts())
	cacheHooks := observability.Cache()

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cacheHooks.OnCacheHit(ctx, keyTypeRender)
			return string(data), true, nil // Cache hit
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "key", cacheKey, "error", err)
		}
		cacheHooks.OnCacheMiss(ctx, keyTypeRender)
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, treeHash)
	start := time.Now()
	u := unparse.New(unparse.WithIndent(opts.Indent), unparse.WithRawStrings(opts.RawStrings()))
	src, err := u.Unparse(tree)
	hooks.OnRenderComplete(ctx, treeHash, len(src), time.Since(start), err)
	if err != nil {
		return "", false, err
	}

	// Cache the result; a refresh overwrites the stale entry.
	ttl := r.RenderTTL
	if ttl <= 0 {
		ttl = cache.TTLRender
	}
	if err := r.Cache.Set(ctx, cacheKey, []byte(src), ttl); err != nil {
		opts.Logger.Warn("cache write failed", "key", cacheKey, "error", err)
	} else {
		cacheHooks.OnCacheSet(ctx, keyTypeRender, len(src))
	}

	return src, false, nil // Cache miss
}

// Render is a convenience wrapper that calls Execute and returns only the source text.
func (r *Runner) Render(ctx context.Context, opts Options) (string, error) {
	result, err := r.Execute(ctx, opts)
	if err != nil {
		return "", err
	}
	return result.Source, nil
}

// VisualizeWithCacheInfo draws the input tree in opts.Format with caching and
// returns cache hit info.
func (r *Runner) VisualizeWithCacheInfo(ctx context.Context, opts Options) ([]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForVisualize(); err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}

	tree, err := r.Decode(ctx, opts)
	if err != nil {
		return nil, false, fmt.Errorf("decode: %w", err)
	}
	treeHash, err := HashTree(tree)
	if err != nil {
		return nil, false, fmt.Errorf("hash tree: %w", err)
	}

	cacheKey := r.Keyer.VisualKey(treeHash, opts.VisualKeyOpts())
	cacheHooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cacheHooks.OnCacheHit(ctx, keyTypeVisual)
			return data, true, nil
		}
		cacheHooks.OnCacheMiss(ctx, keyTypeVisual)
	}

	g := treeviz.Build(tree, opts.TreeOptions())
	hooks := observability.Pipeline()
	hooks.OnVisualizeStart(ctx, opts.Format, g.NodeCount())
	start := time.Now()
	data, err := treeviz.RenderGraph(ctx, g, opts.Format)
	hooks.OnVisualizeComplete(ctx, opts.Format, time.Since(start), err)
	if err != nil {
		return nil, false, fmt.Errorf("visualize: %w", err)
	}

	opts.Logger.Info("drew tree",
		"nodes", g.NodeCount(),
		"format", opts.Format,
		"duration", time.Since(start))

	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLVisual); err == nil {
		cacheHooks.OnCacheSet(ctx, keyTypeVisual, len(data))
	}
	return data, false, nil
}

// Visualize is a convenience wrapper that calls VisualizeWithCacheInfo and discards the cache hit info.
func (r *Runner) Visualize(ctx context.Context, opts Options) ([]byte, error) {
	data, _, err := r.VisualizeWithCacheInfo(ctx, opts)
	return data, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// HashTree returns the content hash of a tree. Trees that encode to the same
// canonical JSON share a hash regardless of how their documents were laid out.
func HashTree(n ast.Node) (string, error) {
	data, err := json.Marshal(ast.EncodeValue(n))
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
