// Package registry holds the template registry: a read-only mapping from
// plain file names to the literal content generated for them.
//
// The canonical payload, a FastAPI service with a PostgreSQL compose
// stack, is embedded in the binary and returned by [Default]. Its files are
// copied verbatim; nothing in them is parsed or substituted.
package registry
