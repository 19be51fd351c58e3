// Package pipeline provides the decode → render pipeline for pyunparse.
//
// This package implements the complete flow from a JSON tree document to
// source text that is shared by the CLI and the HTTP server. By centralizing
// this logic, both entry points decode, hash, cache and render identically.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Decode: Read the "_type"-tagged JSON document into an [ast.Node]
//  2. Render: Unparse the tree to source text
//
// The tree is hashed between the stages. The hash, combined with the render
// options, keys the cache, so identical trees are rendered only once.
// [Runner.Visualize] draws the decoded tree instead of rendering it.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Source: data})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Source)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/cache"
	"github.com/matzehuels/pyunparse/pkg/errors"
	"github.com/matzehuels/pyunparse/pkg/render/treeviz"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultIndent is the indentation unit of rendered blocks.
	DefaultIndent = "    "

	// DefaultFormat is the default visualisation format.
	DefaultFormat = treeviz.FormatSVG

	// MaxSourceSize bounds the JSON document accepted by the pipeline.
	MaxSourceSize = 32 << 20
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input: exactly one of Source or Tree.
	Source []byte   `json:"-"` // JSON tree document
	Tree   ast.Node `json:"-"` // Already decoded tree

	// Render options
	Indent     string `json:"indent,omitempty"`
	EscapeOnly bool   `json:"escape_only,omitempty"` // Escape backslashes instead of emitting raw literals (default: false = raw)
	Refresh    bool   `json:"refresh,omitempty"`     // Bypass cache reads

	// Visualisation options
	Format   string `json:"format,omitempty"`
	MaxDepth int    `json:"max_depth,omitempty"`
	Detailed bool   `json:"detailed,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the decoded input tree.
	Tree ast.Node

	// TreeHash is the content hash of the tree.
	TreeHash string

	// Source is the rendered source text, without a trailing newline.
	Source string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Statements int
	Bytes      int
	DecodeTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether the source text came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateInput(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := errors.ValidateIndent(o.Indent); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateInput checks that exactly one input is given.
func (o *Options) ValidateInput() error {
	if o.Tree == nil && len(o.Source) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "source or tree is required")
	}
	if o.Tree != nil && len(o.Source) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "source and tree are mutually exclusive")
	}
	if len(o.Source) > MaxSourceSize {
		return errors.New(errors.ErrCodeInvalidInput, "source too large (max %d bytes)", MaxSourceSize)
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
}

// ValidateForVisualize validates and sets defaults for visualisation.
func (o *Options) ValidateForVisualize() error {
	if err := o.ValidateInput(); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_depth cannot be negative")
	}
	return treeviz.ValidateFormat(o.Format)
}

// RawStrings reports whether raw string literals are enabled.
func (o *Options) RawStrings() bool {
	return !o.EscapeOnly
}

// RenderKeyOpts returns cache key options for rendering.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Indent:     o.Indent,
		RawStrings: o.RawStrings(),
	}
}

// VisualKeyOpts returns cache key options for visualisation.
func (o *Options) VisualKeyOpts() cache.VisualKeyOpts {
	return cache.VisualKeyOpts{
		Format:   o.Format,
		MaxDepth: o.MaxDepth,
		Detailed: o.Detailed,
	}
}

// TreeOptions returns the diagram options.
func (o *Options) TreeOptions() treeviz.Options {
	return treeviz.Options{MaxDepth: o.MaxDepth, Detailed: o.Detailed}
}

// StatementCount returns the number of top-level statements of n.
// Bare expressions and patterns count as one.
func StatementCount(n ast.Node) int {
	if m, ok := n.(*ast.Module); ok {
		return len(m.Body)
	}
	if n == nil {
		return 0
	}
	return 1
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
