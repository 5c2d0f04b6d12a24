// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters): the ingestion pipeline,
// similarity search with per-resource aggregation, and
// grounded answer composition.
package services
