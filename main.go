// Package main is the entry point for the ifreport interface report tool.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/ifreport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
