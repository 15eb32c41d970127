package main

// Version is reported by --version and stamped at release time via
// -ldflags "-X main.Version=...".
var Version = "dev"
