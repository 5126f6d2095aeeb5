package main

import "barkeep/internal/cli"

func main() {
	cli.Execute()
}
