// Package operations binds operation keywords to arithmetic and chains the
// normalisation steps applied to operands and results.
//
// The Registry maps each domain.Operation to an Operator that drives a
// polynomial.Engine. A Pipeline runs Normalisers over a term list in order;
// the calculator service uses one pipeline for operands (simplify) and one
// for results (order, then optionally prune zero terms).
package operations
