package main

import (
	"os"

	"github.com/anthonysuherli/featherweight/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
