// Package main is the entry point for the mutoracle CLI.
package main

import "mutoracle.dev/pkg/mutoracle/cmd"

func main() {
	cmd.Execute()
}
