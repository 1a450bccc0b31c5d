package main

import (
	"os"

	"github.com/xferdev/xfer-cli/pkg/cmd"
	"github.com/xferdev/xfer-cli/pkg/cmd/cmderrors"
	xfererrors "github.com/xferdev/xfer-cli/pkg/errors"
	"github.com/xferdev/xfer-cli/pkg/featureflag"
	"github.com/xferdev/xfer-cli/pkg/files"
	"github.com/xferdev/xfer-cli/pkg/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	if dir, err := files.GetXferDirectoryPath(); err == nil {
		_ = featureflag.LoadFeatureFlags(dir)
	}

	er := xfererrors.GetDefaultErrorReporter()
	defer er.Setup()()

	t := terminal.New()
	command := cmd.NewDefaultXferCommand(t)

	err := cmderrors.DisplayAndHandleCmdError(er, command.Name(), command.Execute)
	if err != nil {
		cmderrors.DisplayAndHandleError(t, err)
		return 1
	}
	return 0
}
