package cache

// ScopedKeyer wraps a Keyer with a prefix. Deployments that share one
// Redis or MongoDB instance use it to keep their entries apart:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "boardgraph:v1:")
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

// GraphKey generates a prefixed key for graph results.
func (k *ScopedKeyer) GraphKey(fen, mode string) string {
	return k.prefix + k.inner.GraphKey(fen, mode)
}

// DAGKey generates a prefixed key for rendered assemblies.
func (k *ScopedKeyer) DAGKey(edgesHash string, opts DAGKeyOpts) string {
	return k.prefix + k.inner.DAGKey(edgesHash, opts)
}
