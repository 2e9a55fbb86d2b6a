package main

import (
	"os"

	"github.com/kubegrade/kubegrade/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
