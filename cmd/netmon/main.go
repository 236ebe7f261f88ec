package main

import (
	"os"

	"github.com/pratik-anurag/netmon/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
