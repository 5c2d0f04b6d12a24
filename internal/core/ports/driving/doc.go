// Package driving defines the interfaces through which external actors
// (CLI, MCP server, folder watcher) call INTO the core services.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
package driving
