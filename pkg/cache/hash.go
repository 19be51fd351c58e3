package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer builds cache keys.
type Keyer interface {
	// RenderKey identifies the source text rendered from a tree.
	RenderKey(treeHash string, opts RenderKeyOpts) string

	// VisualKey identifies a visualisation of a tree.
	VisualKey(treeHash string, opts VisualKeyOpts) string
}

// RenderKeyOpts lists the renderer options that change the output text.
type RenderKeyOpts struct {
	Indent     string `json:"indent"`
	RawStrings bool   `json:"raw_strings"`
}

// VisualKeyOpts lists the options that change a tree visualisation.
type VisualKeyOpts struct {
	Format   string `json:"format"`
	MaxDepth int    `json:"max_depth"`
	Detailed bool   `json:"detailed"`
}

// DefaultKeyer produces keys of the form "<kind>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey implements [Keyer].
func (DefaultKeyer) RenderKey(treeHash string, opts RenderKeyOpts) string {
	return hashKey("render", treeHash, opts)
}

// VisualKey implements [Keyer].
func (DefaultKeyer) VisualKey(treeHash string, opts VisualKeyOpts) string {
	return hashKey("visual", treeHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
