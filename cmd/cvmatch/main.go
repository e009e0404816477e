package main

import (
	"github.com/custodia-labs/cvmatch/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
