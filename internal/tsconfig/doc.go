// Package tsconfig locates a TypeScript compiler configuration file, follows
// its extends chain, and reports the baseUrl and paths compiler options that
// path-alias resolvers need.
//
// Discovery either resolves a single candidate (ResolvePath) from the working
// directory and the TS_NODE_PROJECT override, or searches parent directories
// (WalkUp). LoadChain merges inherited documents: child values win, nested
// objects merge key by key, arrays are replaced.
package tsconfig
