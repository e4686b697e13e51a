package main

import (
	"os"
)

// version is reported to the tracing backend and by --version.
const version = "0.3.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
