package main

import (
	"os"

	"github.com/mustdoapp/mustdo/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
