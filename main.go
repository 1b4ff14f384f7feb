package main

import "github.com/wildfunctions/mathplot/pkg/cli"

func main() {
	cli.Execute()
}
