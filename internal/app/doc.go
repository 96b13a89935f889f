// Package app contains the configuration-resolution pipeline. It builds the
// default training config tree, applies user-supplied override files, checks
// for fields that were never supplied, and renders the resolved tree. The
// logic is decoupled from any specific entrypoint like a CLI.
package app
