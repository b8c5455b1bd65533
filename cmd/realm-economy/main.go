package main

import "github.com/andrescamacho/realm-economy/internal/adapters/cli"

func main() {
	cli.Execute()
}
