package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// BuildVersion is set at build time with -ldflags "-X ...cli.BuildVersion=...".
var BuildVersion = "dev"

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sketches %s (Go version: %s)\n", BuildVersion, runtime.Version())
		},
	}
}
