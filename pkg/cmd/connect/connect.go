// Package connect resolves the command line into a connection plan
package connect

import (
	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/xferdev/xfer-cli/pkg/config"
	xfererrors "github.com/xferdev/xfer-cli/pkg/errors"
	"github.com/xferdev/xfer-cli/pkg/files"
	"github.com/xferdev/xfer-cli/pkg/remote"
	"github.com/xferdev/xfer-cli/pkg/terminal"
)

const (
	connectShort = "Resolve remotes, bridge and local directory for a transfer session"
	connectLong  = `Resolve the hosts given on the command line into a connection plan.

Up to three hosts may be given in total, taken in this order whatever the
order on the command line: bookmarks (-b), ssh config hosts (--ssh-host),
then addresses. The first host is the target and the second one the bridge.
If the last argument names an existing local path it is used as the local
starting directory instead of a host, so always give the local directory last.

Passwords (-P) are matched to hosts by position in the same order.`
	connectExample = `  xfer scp://deploy@10.0.0.5:22:/srv ~/downloads
  xfer -b prod -P hunter2
  xfer --ssh-host myhost:/data jump.example.com
  xfer sftp://target.internal sftp://jump.example.com /tmp`
)

type ConnectOptions struct {
	Bookmarks     []string
	SSHHosts      []string
	Passwords     []string
	SSHConfigPath string
	RequireRemote bool
}

func NewCmdConnect(t *terminal.Terminal, fs afero.Fs) *cobra.Command {
	var opts ConnectOptions

	cmd := &cobra.Command{
		Use:     "xfer [flags] [ADDRESS...] [LOCAL_DIR]",
		Short:   connectShort,
		Long:    connectLong,
		Example: connectExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := RunConnect(t, fs, opts, args)
			if err != nil {
				return xfererrors.WrapAndTrace(err)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Bookmarks, "bookmark", "b", nil, "connect to a saved bookmark (repeatable)")
	cmd.Flags().StringArrayVar(&opts.SSHHosts, "ssh-host", nil, "connect to a Host from the ssh config, as alias or alias:remote_path (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.Passwords, "password", "P", nil, "password for the host at the same position (repeatable)")
	cmd.Flags().StringVar(&opts.SSHConfigPath, "ssh-config", "", "ssh client config to read --ssh-host from (default ~/.ssh/config)")
	cmd.Flags().BoolVar(&opts.RequireRemote, "require-remote", false, "fail when no remote host is given")

	return cmd
}

func RunConnect(t *terminal.Terminal, fs afero.Fs, opts ConnectOptions, positional []string) error {
	sshConfigPath, err := getSSHConfigPath(opts)
	if err != nil {
		return xfererrors.WrapAndTrace(err)
	}

	log.WithFields(log.Fields{
		"bookmarks":  len(opts.Bookmarks),
		"ssh_hosts":  len(opts.SSHHosts),
		"positional": len(positional),
		"passwords":  len(opts.Passwords),
		"ssh_config": sshConfigPath,
	}).Debug("resolving remote arguments")

	resolver := remote.NewResolver(fs, sshConfigPath)
	plan, err := resolver.Resolve(remote.Args{
		Bookmarks:  opts.Bookmarks,
		SSHHosts:   opts.SSHHosts,
		Positional: positional,
		Passwords:  opts.Passwords,
	})
	if err != nil {
		return xfererrors.WrapAndTrace(err)
	}

	if opts.RequireRemote {
		if err := plan.RequireRemote(); err != nil {
			return xfererrors.WrapAndTrace(err)
		}
	}

	log.WithFields(log.Fields{
		"target":    plan.Target.String(),
		"bridge":    plan.Bridge.String(),
		"local_dir": plan.LocalDir.OrEmpty(),
	}).Debug("resolved connection plan")

	displayPlan(t, plan)
	return nil
}

// getSSHConfigPath picks --ssh-config, then XFER_SSH_CONFIG, then
// ~/.ssh/config. The home directory is only looked up when an ssh host was
// asked for.
func getSSHConfigPath(opts ConnectOptions) (string, error) {
	if opts.SSHConfigPath != "" {
		return opts.SSHConfigPath, nil
	}
	if p := config.GlobalConfig.GetSSHConfigPath(); p != "" {
		return p, nil
	}
	if len(opts.SSHHosts) == 0 {
		return "", nil
	}
	p, err := files.GetUserSSHConfigPath()
	if err != nil {
		return "", xfererrors.WrapAndTrace(err)
	}
	return p, nil
}

func displayPlan(t *terminal.Terminal, plan remote.ConnectionPlan) {
	if plan.IsLocalOnly() {
		t.Vprint(t.Yellow("No remote given, starting in local mode"))
	}

	ta := table.NewWriter()
	ta.SetOutputMirror(t.Out())
	ta.Style().Options = getXferTableOptions()
	ta.AppendHeader(table.Row{"ROLE", "KIND", "ENDPOINT", "PASSWORD"})
	ta.AppendRow(remoteRow("target", plan.Target))
	ta.AppendRow(remoteRow("bridge", plan.Bridge))

	localDir := "-"
	if dir, ok := plan.LocalDir.Get(); ok {
		localDir = dir
	}
	ta.AppendRow(table.Row{"local", "directory", localDir, "-"})
	ta.Render()
}

func remoteRow(role string, r remote.Remote) table.Row {
	password := "-"
	if remote.HasPassword(r) {
		password = "set"
	}

	switch v := r.(type) {
	case remote.BookmarkRemote:
		return table.Row{role, "bookmark", v.Name, password}
	case remote.HostRemote:
		return table.Row{role, string(v.Params.Protocol), v.Params.String(), password}
	case remote.NoRemote:
		return table.Row{role, "-", "-", password}
	default:
		return table.Row{role, "-", "-", password}
	}
}

func getXferTableOptions() table.Options {
	options := table.OptionsDefault
	options.DrawBorder = false
	options.SeparateColumns = false
	options.SeparateRows = false
	options.SeparateHeader = false
	return options
}
