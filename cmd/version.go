package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/convoscribe/digest-cli/pkg/buildinfo"
)

var versionJSON bool

// NewVersionCommand creates the 'version' subcommand.
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the version, commit hash, and build time of the digest CLI.

Examples:
  digest version
  digest version --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Get()

			if versionJSON {
				return outputJSON(os.Stdout, info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "digest version %s\n", info.Version)
			fmt.Fprintf(out, "  commit:     %s\n", info.Commit)
			fmt.Fprintf(out, "  built:      %s\n", info.BuildTime)
			fmt.Fprintf(out, "  go version: %s\n", info.GoVersion)
			return nil
		},
	}

	cmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")

	return cmd
}
