package main

import "stackup/internal/cli"

func main() {
	cli.Execute()
}
