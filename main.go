package main

import "github.com/prajaltale/HireMind/internal/cli"

func main() {
	cli.Execute()
}
