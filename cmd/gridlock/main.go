package main

import "github.com/jswint/gridlock/internal/cli"

func main() {
	cli.Execute()
}
