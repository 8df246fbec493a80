package main

import (
	"os"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
