package main

import (
	"os"

	"github.com/cwbudde/go-tscheck/cmd/tscheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
