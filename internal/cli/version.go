package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/pkg/version"
)

// NewVersionCmd creates the "version" command.
func NewVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			info := version.GetInfo()
			switch format {
			case config.FormatJSON:
				return writeJSON(cmd.OutOrStdout(), info)
			case config.FormatNDJSON:
				return writeNDJSON(cmd.OutOrStdout(), []version.Info{info})
			}
			suffix := ""
			if version.IsDevelopment() {
				suffix = " (development build)"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ecodash %s%s\ncommit: %s\nbuilt:  %s\n",
				info.Version, suffix, info.GitCommit, info.BuildDate)
			return err
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}
