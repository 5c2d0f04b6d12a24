// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Extractor: Converts raw file bytes into plain text
//   - ExtractorRegistry: Selects the extractor for a media type
//   - ResourceStore: Resource record persistence
//   - EmbeddingService: Generates vector embeddings
//   - VectorIndex: Vector storage and similarity search
//   - LLMService: Language model completions for summaries and answers
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
