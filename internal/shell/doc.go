// Package shell renders the statements alienv prints for the invoking shell
// to evaluate. A Dialect knows one shell's syntax for exporting a variable,
// defining and removing aliases, and echoing text; an Emitter accumulates the
// statements of a single invocation and flushes them once.
package shell
