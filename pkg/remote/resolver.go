// Package remote turns the host-like command line arguments into a
// ConnectionPlan.
//
// Arguments are taken in a fixed order regardless of how they were typed:
// bookmarks, then ssh config hosts, then positional addresses. The Nth
// password belongs to the Nth argument in that order. If the last argument
// names something that exists on the local filesystem it becomes the local
// directory instead of a host, whatever its kind. With two hosts the first one
// is the target and the second one the bridge.
package remote

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"

	xfererrors "github.com/xferdev/xfer-cli/pkg/errors"
	"github.com/xferdev/xfer-cli/pkg/filetransfer"
	"github.com/xferdev/xfer-cli/pkg/files"
)

type argKind int

const (
	kindAddress argKind = iota
	kindBookmark
	kindSSHHost
)

// Args are the host-like arguments already split by kind.
type Args struct {
	Bookmarks  []string
	SSHHosts   []string
	Positional []string
	Passwords  []string
}

func (a Args) total() int {
	return len(a.Bookmarks) + len(a.SSHHosts) + len(a.Positional)
}

type rawHostArg struct {
	kind     argKind
	text     string
	password mo.Option[string]
	isLast   bool
}

type AddressParser func(text string) (filetransfer.Params, error)

type Resolver struct {
	fs           afero.Fs
	sshConfig    SSHConfigReader
	parseAddress AddressParser
}

// NewResolver reads ssh hosts from sshConfigPath, normally ~/.ssh/config.
func NewResolver(fs afero.Fs, sshConfigPath string) Resolver {
	return NewResolverWith(fs, NewFileSSHConfigReader(fs, sshConfigPath), filetransfer.ParseRemoteAddress)
}

func NewResolverWith(fs afero.Fs, sshConfig SSHConfigReader, parseAddress AddressParser) Resolver {
	return Resolver{
		fs:           fs,
		sshConfig:    sshConfig,
		parseAddress: parseAddress,
	}
}

func (r Resolver) Resolve(args Args) (ConnectionPlan, error) {
	total := args.total()
	if total > MaxHostArgs {
		return ConnectionPlan{}, xfererrors.WrapAndTrace(TooManyArgumentsError{Given: total})
	}

	plan := NewConnectionPlan()
	lookup := &sshHostLookup{reader: r.sshConfig}

	var hosts []Remote
	for _, arg := range classify(args) {
		if arg.isLast && r.isLocalPath(arg.text) {
			plan.LocalDir = mo.Some(arg.text)
			continue
		}

		resolved, err := r.resolveArg(arg, lookup)
		if err != nil {
			return ConnectionPlan{}, xfererrors.WrapAndTrace(err)
		}
		hosts = append(hosts, resolved)
	}

	switch len(hosts) {
	case 0:
	case 1:
		plan.Target = hosts[0]
	case 2:
		// first is the target, second the bridge
		plan.Target = hosts[0]
		plan.Bridge = hosts[1]
	default:
		return ConnectionPlan{}, xfererrors.WrapAndTrace(TooManyArgumentsError{Given: total})
	}
	return plan, nil
}

// classify concatenates the three kinds in priority order and pairs each
// argument with the password at the same position.
func classify(args Args) []rawHostArg {
	tag := func(kind argKind) func(string, int) rawHostArg {
		return func(text string, _ int) rawHostArg {
			return rawHostArg{kind: kind, text: text}
		}
	}
	raw := lo.Flatten([][]rawHostArg{
		lo.Map(args.Bookmarks, tag(kindBookmark)),
		lo.Map(args.SSHHosts, tag(kindSSHHost)),
		lo.Map(args.Positional, tag(kindAddress)),
	})

	lastIndex := len(raw) - 1
	if lastIndex < 0 {
		lastIndex = 0
	}
	for i := range raw {
		password, err := lo.Nth(args.Passwords, i)
		raw[i].password = mo.TupleToOption(password, err == nil)
		raw[i].isLast = i == lastIndex
	}
	return raw
}

// isLocalPath checks the live filesystem; stat errors count as absent.
func (r Resolver) isLocalPath(path string) bool {
	exists, err := files.Exists(r.fs, path)
	return err == nil && exists
}

func (r Resolver) resolveArg(arg rawHostArg, lookup *sshHostLookup) (Remote, error) {
	switch arg.kind {
	case kindBookmark:
		return BookmarkRemote{Name: arg.text, Password: arg.password}, nil
	case kindAddress:
		params, err := r.parseAddress(arg.text)
		if err != nil {
			return nil, BadAddressError{Address: arg.text, Err: err}
		}
		return HostRemote{Params: params, Password: arg.password}, nil
	case kindSSHHost:
		params, err := lookup.resolve(arg.text)
		if err != nil {
			return nil, err
		}
		return HostRemote{Params: params, Password: arg.password}, nil
	default:
		return nil, xfererrors.Errorf("unknown argument kind %d", arg.kind)
	}
}

// sshHostLookup reads the ssh config at most once per Resolve call.
type sshHostLookup struct {
	reader  SSHConfigReader
	entries []SSHHostEntry
	loaded  bool
}

func (l *sshHostLookup) resolve(arg string) (filetransfer.Params, error) {
	alias, remotePath := splitSSHHostArg(arg)

	if !l.loaded {
		entries, err := l.reader.Hosts()
		if err != nil {
			return filetransfer.Params{}, err
		}
		l.entries = entries
		l.loaded = true
	}

	entry, ok := findSSHHost(l.entries, alias)
	if !ok {
		return filetransfer.Params{}, SSHHostNotFoundError{Alias: alias, ConfigPath: l.reader.Path()}
	}
	return sftpParamsFromSSHHost(entry, alias, remotePath), nil
}
