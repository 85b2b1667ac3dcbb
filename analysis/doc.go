// Package analysis defines the structured code-analysis capability: the
// Analyzer interface, the result types it produces, and the prompt
// templates that drive it. Implementations live next to the thing doing
// the work (a single client or a pool); this package has no dependencies
// on either.
package analysis
