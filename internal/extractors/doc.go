// Package extractors provides implementations of the Extractor interface
// for the file formats accepted for upload. Each extractor knows how to
// pull plain text out of a specific media type.
//
// Extractors are registered with the Registry at startup.
package extractors
