package main

import (
	"os"

	"github.com/genova-cli/genova/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
