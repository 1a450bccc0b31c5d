package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xferdev/xfer-cli/pkg/terminal"
)

// Version is set at build time with -ldflags "-X .../version.Version=...".
var Version = ""

func NewCmdVersion(t *terminal.Terminal) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "version",
		DisableFlagsInUseLine: true,
		Short:                 "Print the xfer version",
		Args:                  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			t.Vprint(buildVersionString(t))
		},
	}
	return cmd
}

func buildVersionString(t *terminal.Terminal) string {
	v := Version
	if v == "" {
		v = "unknown"
	}
	return fmt.Sprintf("xfer %s", t.Green(v))
}
