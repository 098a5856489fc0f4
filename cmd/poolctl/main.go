// ABOUTME: Entry point for the poolctl CLI: status/validate/version commands over a pool deployment config.
// ABOUTME: Mirrors cmd/llmspell's kong-based command style, trimmed to this repo's much smaller surface.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lexlapax/go-respool/pkg/cliexit"
)

var cli struct {
	Status   StatusCmd   `cmd:"" help:"Load a pool config and report the default-manager pool's status snapshot."`
	Validate ValidateCmd `cmd:"" help:"Load and validate a pool deployment config file."`
	Version  VersionCmd  `cmd:"" help:"Show poolctl version information."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("poolctl"),
		kong.Description("Operational CLI for go-respool pool deployments."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, cliexit.FormatForCLI(err))
		os.Exit(cliexit.ExitCodeFor(err))
	}
}
