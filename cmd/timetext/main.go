package main

import (
	"os"

	"github.com/msto63/timetext/cmd/timetext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
