package main

import (
	"os"

	"github.com/interview-pilot/interview-pilot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
