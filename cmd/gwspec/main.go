package main

import "gwspec/internal/cli"

func main() {
	cli.Execute()
}
