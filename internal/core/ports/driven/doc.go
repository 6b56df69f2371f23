// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - GlossaryStore: Loads and validates glossary data from a source
//   - DocumentParser: Parses raw document bytes into a domain tree
//   - DocumentRenderer: Serialises a domain tree back to text
//   - TreeTransformer: Rewrites a document tree in place
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ReportStore: Coverage report persistence. Without it, annotation
//     still runs but `glossary stats` is disabled.
//   - GlossaryCache: Snapshot cache for glossary loads. Without it, every
//     document re-reads the glossary source.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
