package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/quickx/pkg/core/version"
)

func newVersionCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
	}
	c.RunE = a.run("version", func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "quickx v%s\n", info.Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", orUnknown(info.Commit))
		fmt.Fprintf(out, "  Build Date: %s\n", orUnknown(info.BuildDate))
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		if a.opts.verbose {
			for _, pkg := range []string{"timex", "datex", "stringx", "seqx", "mathx", "log"} {
				fmt.Fprintf(out, "  %-10s  %s\n", pkg+":", version.PackageVersion(pkg))
			}
		}
		return nil
	})
	return c
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
