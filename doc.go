// Package phie implements a φ-calculus object-graph dataization engine.
//
// A program is a table of objects, each either a literal 16-bit Δ value,
// an atom invocation (λ plus ρ/𝛼 operands), or a locator to copy a value
// from. Dataizing an object walks its attribute graph, allocating one
// basket per object instantiation, until the root object's 𝜑 attribute
// resolves to a concrete Data value.
//
// The surface syntax is the Unicode-symbolic form used throughout
// original_source: objects print as ⟦λ↦name, Δ↦0x0000, loc↦target⟧,
// baskets as [νN, ξ:βN, loc→state, ...], and a whole program as one
// νN(𝜋) ↦ object declaration per line.
package phie
