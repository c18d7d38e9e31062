package main

import (
	"fmt"
	"os"

	"github.com/funvibe/poly/pkg/cli"
)

func main() {
	if err := cli.Run(os.Exit, os.Args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
