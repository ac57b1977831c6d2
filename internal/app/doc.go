// Package app wires the application components together: the metadata
// store, the content cache, the gateway, the library service, and the
// control API server. Each Execute function backs one CLI command.
package app
