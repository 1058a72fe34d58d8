// Package graph provides the serialization types shared by every relation
// builder: the uniform {nodes, edges} result.
//
// This package defines the canonical wire format for boardgraph results,
// used for HTTP responses, CLI output, caching and golden test fixtures.
//
// # Core Types
//
//   - [Result]: the {nodes, edges} pair returned by every builder
//   - [Node]: one occupied square, or a phantom destination square
//   - [Edge]: a typed, directed relation between two squares
//
// # Wire Format
//
// Results use the node-link JSON shape consumed by the original front end:
//
//	{
//	  "nodes": [{"square": "e1", "piece_type": "K", "color": "white"}],
//	  "edges": [{"type": "protection", "source": "d1", "target": "e1"}]
//	}
//
// Phantom nodes are a [NodeKind] internally and collapse to
// piece_type "phantom" and color "phantom" only when encoded.
package graph
