package remote

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/kevinburke/ssh_config"
	"github.com/samber/mo"
	"github.com/spf13/afero"

	"github.com/xferdev/xfer-cli/pkg/filetransfer"
)

// HostPattern is one pattern from a Host line; "!name" is negated.
type HostPattern struct {
	Text    string
	Negated bool
}

// SSHHostEntry is one Host block of an ssh client config, reduced to what a
// connection needs.
type SSHHostEntry struct {
	Patterns []HostPattern
	HostName mo.Option[string]
	Port     mo.Option[int]
	User     mo.Option[string]
}

// MatchesExactly is true when alias is listed verbatim and not negated.
// Wildcards are not expanded.
func (e SSHHostEntry) MatchesExactly(alias string) bool {
	for _, p := range e.Patterns {
		if !p.Negated && p.Text == alias {
			return true
		}
	}
	return false
}

type SSHConfigReader interface {
	Path() string
	Hosts() ([]SSHHostEntry, error)
}

type FileSSHConfigReader struct {
	fs   afero.Fs
	path string
}

var _ SSHConfigReader = FileSSHConfigReader{}

func NewFileSSHConfigReader(fs afero.Fs, path string) FileSSHConfigReader {
	return FileSSHConfigReader{fs: fs, path: path}
}

func (r FileSSHConfigReader) Path() string {
	return r.path
}

func (r FileSSHConfigReader) Hosts() ([]SSHHostEntry, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, SSHConfigUnreadableError{Path: r.path, Err: err}
	}

	cfg, err := ssh_config.Decode(bytes.NewReader(skipMatchBlocks(data)))
	if err != nil {
		return nil, SSHConfigUnreadableError{Path: r.path, Err: err}
	}

	entries := make([]SSHHostEntry, 0, len(cfg.Hosts))
	for _, hostBlock := range cfg.Hosts {
		entry, err := buildEntry(hostBlock)
		if err != nil {
			return nil, SSHConfigUnreadableError{Path: r.path, Err: err}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// skipMatchBlocks blanks every Match line and its body up to the next Host or
// Match keyword, since the decoder refuses the whole file on Match. Line
// numbers are kept so decode errors still point at the right line.
func skipMatchBlocks(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	inMatch := false
	for i, line := range lines {
		switch configKeyword(line) {
		case "match":
			inMatch = true
		case "host":
			inMatch = false
		}
		if inMatch {
			lines[i] = ""
		}
	}
	return []byte(strings.Join(lines, "\n"))
}

// configKeyword is the lower-cased keyword of a config line, allowing both
// "Key value" and "Key=value".
func configKeyword(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}
	end := strings.IndexAny(line, " \t=")
	if end < 0 {
		end = len(line)
	}
	return strings.ToLower(line[:end])
}

func buildEntry(host *ssh_config.Host) (SSHHostEntry, error) {
	entry := SSHHostEntry{
		Patterns: hostPatterns(host),
		HostName: mo.None[string](),
		Port:     mo.None[int](),
		User:     mo.None[string](),
	}

	kvs := collectKVs(host.Nodes)
	if hostName := kvs["hostname"]; hostName != "" {
		entry.HostName = mo.Some(hostName)
	}
	if user := kvs["user"]; user != "" {
		entry.User = mo.Some(user)
	}
	if portStr := kvs["port"]; portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port < 1 || port > 65535 {
			return SSHHostEntry{}, fmt.Errorf("invalid Port %q for Host %s", portStr, patternList(entry.Patterns))
		}
		entry.Port = mo.Some(port)
	}
	return entry, nil
}

// hostPatterns recovers negation for each pattern. The decoder keeps the
// flag private, so a pattern the block itself refuses to match is negated.
func hostPatterns(host *ssh_config.Host) []HostPattern {
	patterns := make([]HostPattern, 0, len(host.Patterns))
	for _, p := range host.Patterns {
		text := strings.TrimSpace(p.String())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "!") {
			patterns = append(patterns, HostPattern{Text: strings.TrimPrefix(text, "!"), Negated: true})
			continue
		}
		patterns = append(patterns, HostPattern{Text: text, Negated: !host.Matches(text)})
	}
	return patterns
}

// collectKVs keeps the first value per keyword, as ssh does. Keys are
// lower-cased.
func collectKVs(nodes []ssh_config.Node) map[string]string {
	result := map[string]string{}
	for _, node := range nodes {
		kv, ok := node.(*ssh_config.KV)
		if !ok {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(kv.Key))
		value := strings.TrimSpace(kv.Value)
		if key == "" {
			continue
		}
		if _, seen := result[key]; seen {
			continue
		}
		result[key] = value
	}
	return result
}

func patternList(patterns []HostPattern) string {
	texts := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p.Negated {
			texts = append(texts, "!"+p.Text)
		} else {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, " ")
}

// splitSSHHostArg splits "alias" or "alias:remote_path" at the first colon.
// An empty path counts as none.
func splitSSHHostArg(arg string) (string, mo.Option[string]) {
	alias, path, found := strings.Cut(arg, ":")
	if !found || path == "" {
		return alias, mo.None[string]()
	}
	return alias, mo.Some(path)
}

func findSSHHost(entries []SSHHostEntry, alias string) (SSHHostEntry, bool) {
	for _, e := range entries {
		if e.MatchesExactly(alias) {
			return e, true
		}
	}
	return SSHHostEntry{}, false
}

// sftpParamsFromSSHHost builds sftp parameters for alias: HostName defaults
// to the alias, Port to 22, User stays unset when absent.
func sftpParamsFromSSHHost(entry SSHHostEntry, alias string, remotePath mo.Option[string]) filetransfer.Params {
	generic := filetransfer.NewGenericParams().
		WithAddress(entry.HostName.OrElse(alias)).
		WithPort(entry.Port.OrElse(filetransfer.DefaultSSHPort)).
		WithUsername(entry.User)

	params := filetransfer.NewGenericTransferParams(filetransfer.ProtocolSFTP, generic)
	if path, ok := remotePath.Get(); ok {
		params = params.WithRemotePath(path)
	}
	return params
}
