// Package build carries build-time metadata.
package build

// Version is the anvil release version. Linker flags override the
// development default.
var Version = "dev"
