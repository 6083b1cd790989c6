package main

import "componentgate/internal/cli"

func main() {
	cli.Execute()
}
