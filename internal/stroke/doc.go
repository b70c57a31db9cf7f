// Package stroke converts stroked paths into filled outlines.
//
// A stroke becomes a fill path built from two offset curves: the forward
// side is emitted as-is, the backward side is reversed, and caps join the
// ends. Curves are flattened before offsetting, so the output contains
// only lines and the cubic arcs used for round caps and joins.
//
// Caps: butt, round, square. Joins: miter (bounded by the miter limit),
// round, bevel. The output is meant to be filled with the nonzero rule.
//
// Dash patterns are applied by Dash before expansion.
package stroke
