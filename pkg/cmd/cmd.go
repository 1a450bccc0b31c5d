// Package cmd is the entrypoint to cli
package cmd

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/xferdev/xfer-cli/pkg/cmd/connect"
	"github.com/xferdev/xfer-cli/pkg/cmd/version"
	xfererrors "github.com/xferdev/xfer-cli/pkg/errors"
	"github.com/xferdev/xfer-cli/pkg/featureflag"
	"github.com/xferdev/xfer-cli/pkg/files"
	"github.com/xferdev/xfer-cli/pkg/terminal"
)

func NewDefaultXferCommand(t *terminal.Terminal) *cobra.Command {
	return NewXferCommand(t, files.AppFs, os.Stderr)
}

// NewXferCommand builds the root command; it is the connect command itself
// with the remaining commands hung below it.
func NewXferCommand(t *terminal.Terminal, fs afero.Fs, logOut io.Writer) *cobra.Command {
	var verbose bool

	cmds := connect.NewCmdConnect(t, fs)
	cmds.SilenceErrors = true
	cmds.SilenceUsage = true
	cmds.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		configureLogging(logOut, verbose || featureflag.Debug())
	}
	cmds.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return xfererrors.NewValidationError(err.Error())
	})
	cmds.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log resolution details to stderr")

	cmds.AddCommand(version.NewCmdVersion(t))

	return cmds
}

func configureLogging(out io.Writer, debug bool) {
	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
