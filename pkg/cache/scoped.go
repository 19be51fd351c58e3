package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one backend without colliding, for example "pyunparse:v1:" on Redis.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed key for rendered source.
func (k *ScopedKeyer) RenderKey(treeHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(treeHash, opts)
}

// VisualKey generates a prefixed key for a tree visualisation.
func (k *ScopedKeyer) VisualKey(treeHash string, opts VisualKeyOpts) string {
	return k.prefix + k.inner.VisualKey(treeHash, opts)
}
