package main

import (
	"os"
	"strings"

	"pagemapper/internal/bootstrap"
	"pagemapper/internal/console"
)

func main() {
	if len(os.Args) < 2 || strings.TrimSpace(os.Args[1]) == "" {
		console.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	app := bootstrap.NewApp(bootstrap.Args{URL: os.Args[1]})
	app.Run()
}
