package main

import (
	"os"

	"github.com/dmitrymomot/personagen/cmd/personagen/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
