package main

import (
	"os"

	"github.com/calderhouse/menuview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
