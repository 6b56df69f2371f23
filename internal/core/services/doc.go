// Package services implements the driving ports: the business logic that
// orchestrates glossary loading, document parsing, scanning and rendering
// through the driven ports.
//
// # Import Rules
//
//   - Can Import: domain, ports/driven, ports/driving, glossary, logger
//   - Cannot Import: Any adapter package
package services
