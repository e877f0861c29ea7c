package main

import (
	"os"

	"github.com/dshills/mcpsync/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
