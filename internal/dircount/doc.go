// Package dircount walks a directory tree and counts what it finds.
//
// The walk is a single-threaded, depth-first, pre-order traversal driven by
// an explicit work stack. It counts files, directories and the total size of
// all files whose metadata could be read, and reports each step to an
// Observer so that callers can render progress without the traversal
// knowing about terminals.
package dircount
