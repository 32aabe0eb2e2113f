package main

import (
	"os"

	"github.com/long2k5-bit/ds2026/internal/cli"
)

func main() {
	os.Exit(cli.RunHistory(os.Args[1:], os.Stdout, os.Stderr))
}
