// Package mecanica holds module-wide metadata.
package mecanica

// Version is the current mecanica release.
const Version = "0.1.0"
