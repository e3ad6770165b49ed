// Package main is the entry point for pitwall, the F1 2020 telemetry decoder.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/pitwall/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
