// Package main provides the mecanica CLI.
package main

import "github.com/mesh-intelligence/mecanica/internal/cli"

func main() {
	cli.Execute()
}
