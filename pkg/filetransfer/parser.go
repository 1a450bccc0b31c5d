package filetransfer

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// ParseError is returned when an address string does not follow
//
//	[protocol://][username@]address[:port][:remote_path]
//	s3://bucket@region[:profile][:/remote_path]
//	http[s]://[user[:password]@]host[:port][/remote_path]
type ParseError struct {
	Input  string
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s (%q)", e.Reason, e.Input)
}

func parseErr(input string, format string, a ...interface{}) error {
	return ParseError{Input: input, Reason: fmt.Sprintf(format, a...)}
}

// ParseRemoteAddress turns a user-supplied address into connection
// parameters. Without an explicit protocol sftp is assumed.
func ParseRemoteAddress(text string) (Params, error) {
	if strings.TrimSpace(text) == "" {
		return Params{}, parseErr(text, "empty address")
	}

	protocol := ProtocolSFTP
	rest := text
	if idx := strings.Index(text, "://"); idx >= 0 {
		scheme := text[:idx]
		p, err := ParseProtocol(scheme)
		if err != nil {
			return Params{}, parseErr(text, "unknown protocol %q", scheme)
		}
		protocol = p
		rest = text[idx+len("://"):]
		switch protocol {
		case ProtocolWebDAV:
			return parseWebDAV(text, scheme)
		case ProtocolS3:
			return parseS3(text, rest)
		}
	}
	return parseGeneric(text, protocol, rest)
}

func parseGeneric(input string, protocol Protocol, rest string) (Params, error) {
	generic := NewGenericParams().WithPort(protocol.DefaultPort())

	// the username runs up to the first "@" and may hold ":"; an "@" after a
	// path or inside brackets belongs to the address
	if at := strings.Index(rest, "@"); at >= 0 && !strings.ContainsAny(rest[:at], "/[") {
		if at == 0 {
			return Params{}, parseErr(input, "empty username")
		}
		generic = generic.WithUsername(mo.Some(rest[:at]))
		rest = rest[at+1:]
	}

	address, rest, err := splitAddress(input, rest)
	if err != nil {
		return Params{}, err
	}
	generic = generic.WithAddress(address)

	port, rest, err := splitPort(input, rest)
	if err != nil {
		return Params{}, err
	}
	if p, ok := port.Get(); ok {
		generic = generic.WithPort(p)
	}

	params := NewGenericTransferParams(protocol, generic)
	if strings.HasPrefix(rest, ":") && len(rest) > 1 {
		params = params.WithRemotePath(rest[1:])
	}
	return params, nil
}

// splitAddress takes the host part off the front of s; bracketed IPv6
// literals may contain colons.
func splitAddress(input string, s string) (string, string, error) {
	if strings.HasPrefix(s, "[") {
		end := strings.Index(s, "]")
		if end < 0 {
			return "", "", parseErr(input, "unterminated IPv6 address")
		}
		address := s[1:end]
		if address == "" {
			return "", "", parseErr(input, "missing address")
		}
		return address, s[end+1:], nil
	}
	end := strings.Index(s, ":")
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return "", "", parseErr(input, "missing address")
	}
	return s[:end], s[end:], nil
}

// splitPort consumes ":<digits>" when the digits form the whole segment.
// "host::/path" carries an empty port, which keeps the default.
func splitPort(input string, s string) (mo.Option[int], string, error) {
	if !strings.HasPrefix(s, ":") {
		return mo.None[int](), s, nil
	}
	segment := s[1:]
	next := strings.Index(segment, ":")
	if next >= 0 {
		segment = segment[:next]
	}
	if segment == "" {
		if next >= 0 {
			return mo.None[int](), s[1:], nil
		}
		return mo.None[int](), s, nil
	}
	if !isDigits(segment) {
		return mo.None[int](), s, nil
	}
	port, err := strconv.Atoi(segment)
	if err != nil || port < 1 || port > 65535 {
		return mo.None[int](), s, parseErr(input, "bad port %q", segment)
	}
	return mo.Some(port), s[1+len(segment):], nil
}

func parseS3(input string, rest string) (Params, error) {
	at := strings.LastIndex(rest, "@")
	if at <= 0 {
		return Params{}, parseErr(input, "s3 address must be bucket@region")
	}
	s3 := S3Params{Bucket: rest[:at], Profile: mo.None[string]()}
	rest = rest[at+1:]

	end := strings.Index(rest, ":")
	if end < 0 {
		end = len(rest)
	}
	if end == 0 {
		return Params{}, parseErr(input, "missing s3 region")
	}
	s3.Region = rest[:end]
	rest = rest[end:]

	if strings.HasPrefix(rest, ":") && !strings.HasPrefix(rest, ":/") {
		segment := rest[1:]
		if next := strings.Index(segment, ":"); next >= 0 {
			segment = segment[:next]
		}
		if segment != "" {
			s3.Profile = mo.Some(segment)
		}
		rest = rest[1+len(segment):]
	}

	params := NewS3TransferParams(s3)
	if strings.HasPrefix(rest, ":") && len(rest) > 1 {
		params = params.WithRemotePath(rest[1:])
	}
	return params, nil
}

func parseWebDAV(input string, scheme string) (Params, error) {
	if !strings.EqualFold(scheme, "http") && !strings.EqualFold(scheme, "https") {
		return Params{}, parseErr(input, "webdav addresses must use http:// or https://")
	}
	u, err := url.Parse(input)
	if err != nil {
		return Params{}, parseErr(input, "bad url: %s", err.Error())
	}
	if u.Host == "" {
		return Params{}, parseErr(input, "missing address")
	}

	webdav := WebDAVParams{
		URI:      fmt.Sprintf("%s://%s", strings.ToLower(u.Scheme), u.Host),
		Username: mo.None[string](),
		Password: mo.None[string](),
	}
	if u.User != nil {
		webdav.Username = mo.Some(u.User.Username())
		if pw, ok := u.User.Password(); ok {
			webdav.Password = mo.Some(pw)
		}
	}

	params := NewWebDAVTransferParams(webdav)
	if u.Path != "" && u.Path != "/" {
		params = params.WithRemotePath(u.Path)
	}
	return params, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
