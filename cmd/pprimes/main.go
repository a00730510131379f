package main

import (
	"os"

	"github.com/primeworks/pprimes/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
