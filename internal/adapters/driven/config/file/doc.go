// Package file provides TOML-based configuration loading.
//
// Configuration lives in a single config.toml with typed sections for the
// OpenAI services, the Qdrant vector index, chunking, and local storage.
// Secrets can be supplied through environment variables, which take
// precedence over values in the file.
package file
