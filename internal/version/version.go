// Package version holds the application version string, set at build time
// via -ldflags when releasing.
package version

// Version is the application version.
var Version = "0.3.0"
