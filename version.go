// Package survey holds shared metadata for the survey module.
package survey

// Version is the current survey release.
const Version = "0.1.0"
