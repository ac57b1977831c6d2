// Package model defines the domain types shared across the application:
// track descriptors, offline download records, and playlists.
package model
