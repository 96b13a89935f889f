// Package schema declares the fixed training-configuration tree: the root
// config plus its optimizer, algorithm, model, replay, task, conditionals,
// and affinity sub-schemas. The shapes are compile-time-known and never
// change at runtime; the strict package enforces them on every access.
//
// Default() produces a fully default-valued tree, Empty() a template where
// every leaf must be supplied explicitly before use.
package schema
