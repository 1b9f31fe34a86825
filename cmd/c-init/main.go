package main

import (
	"os"

	"github.com/c-init/c-init/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
