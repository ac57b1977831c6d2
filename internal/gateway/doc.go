// Package gateway hosts the long-lived interception layer that sits between
// HTTP clients and the remote origin. It installs the app shell into the
// content cache, claims registered clients by swapping their transports and
// then serves: routing requests by caching policy and executing commands
// received over its mailbox.
package gateway
