// Package http provides custom HTTP transport utilities,
// including request/response logging and User-Agent header injection.
// Every outbound HTTP call made by the application flows through
// a chain of these round trippers.
package http
