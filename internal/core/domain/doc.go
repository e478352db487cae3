// Package domain defines the core business entities for Workly.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Credential: The access/refresh token pair of the signed-in user
//   - SessionState: Where the session sits in its lifecycle
//   - Job: A scraped freelance job posting
//   - Contract: A job the user has claimed
//   - Report rows: Contract summaries, financial totals, language usage
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
