package main

import (
	"fmt"
	"os"
)

// Build info, set via -ldflags.
var (
	Version  = "dev"
	CommitID = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
