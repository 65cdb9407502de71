package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BreweryDirectory/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Brewery Directory"), kong.Description("BreweryDirectory caches the Open Brewery DB and serves search, favorites and analytics."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
