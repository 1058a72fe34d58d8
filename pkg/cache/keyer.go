package cache

// Keyer builds cache keys for pipeline results.
type Keyer interface {
	// GraphKey identifies the graph of one position under one relation mode.
	GraphKey(fen, mode string) string

	// DAGKey identifies one rendered assembly.
	DAGKey(edgesHash string, opts DAGKeyOpts) string
}

// DAGKeyOpts are the render settings that change a DAG response.
type DAGKeyOpts struct {
	Renderer         string `json:"renderer"`
	ReversePrefilter bool   `json:"reverse_prefilter,omitempty"`
	Reduce           bool   `json:"reduce,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GraphKey implements Keyer.
func (DefaultKeyer) GraphKey(fen, mode string) string {
	return hashKey("graph", fen, mode)
}

// DAGKey implements Keyer.
func (DefaultKeyer) DAGKey(edgesHash string, opts DAGKeyOpts) string {
	return hashKey("dag", edgesHash, opts)
}

var _ Keyer = DefaultKeyer{}
