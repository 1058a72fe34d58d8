// Package transform provides simplifying transformations over an acyclic
// [dag.DAG].
//
// [TransitiveReduction] drops edges implied by longer paths. Dense relation
// graphs (every defender of every piece) produce many such shortcuts, and
// removing them keeps rendered DAG art readable. The assembler itself never
// calls this package; it is applied on request before rendering.
package transform
