package main

import (
	"os"

	"github.com/hbjs97/alienv/internal/cli"
)

func main() {
	app := cli.NewApp()
	os.Exit(int(app.Run(os.Args[1:], os.Stdout, os.Stderr)))
}
