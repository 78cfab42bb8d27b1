package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/rules"
)

// Version is the build version
var Version string

// GitTag is the git tag of the build
var GitTag string

// BuildDate is the date when the build was created
var BuildDate string

// prepareVersionInfo sets the version from the module information when it
// was not injected by the build.
func prepareVersionInfo() {
	if Version != "" {
		return
	}
	Version = "dev"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prepareVersionInfo()
			_, err := fmt.Fprintf(a.stdout, "Version: %s\nGit tag: %s\nBuild date: %s\nCorpus: %s\nScoring: %s\n",
				Version, GitTag, BuildDate, rules.CorpusVersion, neatcommit.ScoringVersion)
			return err
		},
	}
}
