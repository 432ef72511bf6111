package main

import (
	"github.com/alecthomas/kong"

	"github.com/graphpress/graphpress/cmd/graphpress/commands"
	"github.com/graphpress/graphpress/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("graphpress"),
		kong.Description("Publish a Logseq-style note graph as a multilingual Hugo site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()})

	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
