// Package domain contains the core business entities for the resource
// knowledge pipeline: resources, chunks, vector entries and search results.
// It has no dependencies on adapters or external services.
package domain
