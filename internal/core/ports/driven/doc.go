// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CredentialStore: Durable storage for the session credential
//   - AuthGateway: Login, refresh and registration endpoints
//   - TokenInspector: Reads the expiry claim of an access token
//   - WorklyAPI: Authenticated job, contract, report and account endpoints
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - CredentialWatcher: Notifies when the stored credential changes outside this process
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
