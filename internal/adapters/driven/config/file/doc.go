// Package file provides the TOML configuration store.
//
// Settings are kept in ~/.workly/config.toml, grouped into tables:
//
//	[api]
//	base_url = "http://localhost:8080"
//	timeout_seconds = 30
//
// and read back as dot-notation keys such as "api.base_url".
package file
