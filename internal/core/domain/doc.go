// Package domain defines the core business entities for Glossa.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TermRecord: A validated glossary entry
//   - Glossary: The set of term records for one scan configuration
//   - Node: A typed node in a parsed document tree
//   - ValidationError: A field-level problem in untrusted glossary data
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
