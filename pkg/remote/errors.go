package remote

import (
	"fmt"

	xfererrors "github.com/xferdev/xfer-cli/pkg/errors"
)

// MaxHostArgs is how many bookmark, ssh host and positional arguments may be
// given in total: a target, a bridge and a local directory.
const MaxHostArgs = 3

var ErrNoRemote = xfererrors.NewValidationError("no remote host specified")

type TooManyArgumentsError struct {
	Given int
}

func (e TooManyArgumentsError) Error() string {
	return "too many arguments"
}

func (e TooManyArgumentsError) Directive() string {
	return fmt.Sprintf("got %d hosts; pass at most %d in total (target, bridge and local directory)", e.Given, MaxHostArgs)
}

type BadAddressError struct {
	Address string
	Err     error
}

func (e BadAddressError) Error() string {
	return fmt.Sprintf("bad address option: %s", e.Err)
}

func (e BadAddressError) Directive() string {
	return "use [protocol://][username@]address[:port][:remote_path]"
}

func (e BadAddressError) Unwrap() error {
	return e.Err
}

type SSHHostNotFoundError struct {
	Alias      string
	ConfigPath string
}

func (e SSHHostNotFoundError) Error() string {
	return fmt.Sprintf("ssh host '%s' not found in %s", e.Alias, e.ConfigPath)
}

func (e SSHHostNotFoundError) Directive() string {
	return "add a matching Host block or pass the address directly"
}

type SSHConfigUnreadableError struct {
	Path string
	Err  error
}

func (e SSHConfigUnreadableError) Error() string {
	return fmt.Sprintf("could not parse ssh config %s: %s", e.Path, e.Err)
}

func (e SSHConfigUnreadableError) Directive() string {
	return "check that the ssh config exists and is readable, or point --ssh-config elsewhere"
}

func (e SSHConfigUnreadableError) Unwrap() error {
	return e.Err
}
