// Package http implements the local agent API.
//
// The API listens on a loopback address and lets the vault-timeout, lock and
// login logic running outside the agent drive the key hierarchy: hand over an
// access token, unlock with the master password, lock, log out, sync and run
// pending migrations. Request tracing, access logging and unlock throttling
// are handled here before requests reach the service layer.
package http
