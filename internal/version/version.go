package version

// Version is overridden at build time with -ldflags "-X pbbarcode/internal/version.Version=...".
var Version = "0.1.0"
