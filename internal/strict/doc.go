// Package strict implements the strict hierarchical configuration tree that
// the rest of the application is built on. A Schema is the closed, ordered
// set of declared fields for one configuration type; a Node is a mutable
// instance of a Schema whose values are scalars or nested Nodes. Every read
// and write is checked against the schema, so a misspelled field name fails
// immediately instead of silently creating a value nothing ever reads.
//
// Two tree walkers operate on Nodes: InitEmpty blanks a tree so every leaf
// holds the Missing sentinel, and Override merges a sparse nested mapping of
// user-supplied values onto a tree in place. Consumers detect fields that
// were never supplied by comparing against Missing.
package strict
