// Package pkg holds the boardgraph libraries.
//
// # Overview
//
// boardgraph reads a chess position and describes it as a typed graph of
// squares: which pieces threaten or protect each other, which stand next to
// each other, and where each king can step. A second entry point takes any
// edge list and greedily assembles it into an acyclic graph for rendering.
//
//  1. [board] - squares, pieces and the immutable position snapshot
//  2. [oracle] - notnil/chess backed rules: FEN parsing, attacks, legality
//  3. [relation] - node extraction and the relation builders
//  4. [graph] - the nodes-and-edges result and its JSON wire format
//  5. [dag], [dag/acyclic], [dag/transform] - working graph, assembler, reduction
//  6. [render] - diagon, DOT, SVG and plain renderers
//  7. [pipeline] - validation, caching and hooks around all of the above
//
// Supporting packages: [cache] (file, redis and mongo backends), [config]
// (TOML settings), [errors] (coded errors), [observability] (hooks) and
// [buildinfo].
//
// # Data flow
//
//	FEN string
//	     ↓
//	[oracle] parse → [board].Snapshot
//	     ↓
//	[relation] builders → [graph].Result (JSON)
//
//	edge list
//	     ↓
//	[dag/acyclic] Assemble → [dag].DAG
//	     ↓
//	[render] → ascii art / DOT / SVG
package pkg
