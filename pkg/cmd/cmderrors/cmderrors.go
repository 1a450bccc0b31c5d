package cmderrors

import (
	"github.com/pkg/errors"

	xfererrors "github.com/xferdev/xfer-cli/pkg/errors"
	"github.com/xferdev/xfer-cli/pkg/featureflag"
	"github.com/xferdev/xfer-cli/pkg/terminal"
)

// DisplayAndHandleCmdError tags and reports a failing command. Outside debug
// mode the trace wrappers are stripped.
func DisplayAndHandleCmdError(er xfererrors.ErrorReporter, name string, cmdFunc func() error) error {
	er.AddTag("command", name)
	err := cmdFunc()
	if err != nil {
		if !xfererrors.IsUserError(err) {
			er.ReportMessage(err.Error())
			er.ReportError(err)
		}
		if featureflag.Debug() || featureflag.IsDev() {
			return err
		}
		return errors.Cause(err) //nolint:wrapcheck //no check
	}
	return nil
}

// DisplayAndHandleError prints err. Mistakes in the command line are shown in
// yellow with a hint; anything else is red.
func DisplayAndHandleError(t *terminal.Terminal, err error) {
	if err == nil {
		return
	}
	if featureflag.Debug() || featureflag.IsDev() {
		t.Eprintf("%+v\n", err)
		return
	}

	cause := errors.Cause(err)
	var ue xfererrors.UserError
	if xfererrors.As(err, &ue) {
		t.Eprint(t.Yellow(cause.Error()))
		if directive := ue.Directive(); directive != "" {
			t.Eprint(t.Yellow(directive))
		}
		return
	}
	t.Eprint(t.Red(cause.Error()))
}
