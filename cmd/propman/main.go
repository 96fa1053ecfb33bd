package main

import (
	"os"

	"github.com/BainBrain70/PropertyManager/cmd/propman/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
