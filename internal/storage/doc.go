// Package storage gives the tsconfig loader its view of the filesystem:
// existence checks, directory checks and parsing of JSON-with-comments
// documents, all through an afero.Fs so tests can run against memory.
package storage
