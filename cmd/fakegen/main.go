package main

import (
	"context"
	"os"

	"github.com/toyz/fakegen/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
