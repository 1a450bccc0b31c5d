// Package filetransfer describes where a transfer session connects and parses
// remote address strings into those parameters.
package filetransfer

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

type Protocol string

const (
	ProtocolSFTP   Protocol = "sftp"
	ProtocolSCP    Protocol = "scp"
	ProtocolFTP    Protocol = "ftp"
	ProtocolFTPS   Protocol = "ftps"
	ProtocolSMB    Protocol = "smb"
	ProtocolS3     Protocol = "s3"
	ProtocolWebDAV Protocol = "webdav"
)

const DefaultSSHPort = 22

// ParseProtocol accepts protocol names case-insensitively. http and https
// both select WebDAV.
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(s) {
	case "sftp":
		return ProtocolSFTP, nil
	case "scp":
		return ProtocolSCP, nil
	case "ftp":
		return ProtocolFTP, nil
	case "ftps":
		return ProtocolFTPS, nil
	case "smb":
		return ProtocolSMB, nil
	case "s3":
		return ProtocolS3, nil
	case "webdav", "http", "https":
		return ProtocolWebDAV, nil
	default:
		return "", fmt.Errorf("unknown protocol %q", s)
	}
}

func (p Protocol) DefaultPort() int {
	switch p {
	case ProtocolFTP, ProtocolFTPS:
		return 21
	case ProtocolSMB:
		return 445
	default:
		return DefaultSSHPort
	}
}

// GenericParams covers every protocol addressed by host and port.
type GenericParams struct {
	Address  string
	Port     int
	Username mo.Option[string]
}

func NewGenericParams() GenericParams {
	return GenericParams{
		Address:  "localhost",
		Port:     DefaultSSHPort,
		Username: mo.None[string](),
	}
}

func (g GenericParams) WithAddress(address string) GenericParams {
	g.Address = address
	return g
}

func (g GenericParams) WithPort(port int) GenericParams {
	g.Port = port
	return g
}

func (g GenericParams) WithUsername(username mo.Option[string]) GenericParams {
	g.Username = username
	return g
}

type S3Params struct {
	Bucket  string
	Region  string
	Profile mo.Option[string]
}

type WebDAVParams struct {
	URI      string
	Username mo.Option[string]
	Password mo.Option[string]
}

// Params is the full description of one remote endpoint. Exactly one of
// Generic, S3 and WebDAV is set, matching Protocol.
type Params struct {
	Protocol   Protocol
	Generic    *GenericParams
	S3         *S3Params
	WebDAV     *WebDAVParams
	RemotePath mo.Option[string]
}

func NewGenericTransferParams(protocol Protocol, generic GenericParams) Params {
	return Params{
		Protocol:   protocol,
		Generic:    &generic,
		RemotePath: mo.None[string](),
	}
}

func NewS3TransferParams(s3 S3Params) Params {
	return Params{
		Protocol:   ProtocolS3,
		S3:         &s3,
		RemotePath: mo.None[string](),
	}
}

func NewWebDAVTransferParams(webdav WebDAVParams) Params {
	return Params{
		Protocol:   ProtocolWebDAV,
		WebDAV:     &webdav,
		RemotePath: mo.None[string](),
	}
}

func (p Params) WithRemotePath(path string) Params {
	p.RemotePath = mo.Some(path)
	return p
}

// String never includes a password.
func (p Params) String() string {
	var b strings.Builder
	switch {
	case p.Generic != nil:
		b.WriteString(string(p.Protocol))
		b.WriteString("://")
		if user, ok := p.Generic.Username.Get(); ok {
			b.WriteString(user)
			b.WriteString("@")
		}
		b.WriteString(net.JoinHostPort(p.Generic.Address, strconv.Itoa(p.Generic.Port)))
	case p.S3 != nil:
		b.WriteString(fmt.Sprintf("s3://%s@%s", p.S3.Bucket, p.S3.Region))
		if profile, ok := p.S3.Profile.Get(); ok {
			b.WriteString(":")
			b.WriteString(profile)
		}
	case p.WebDAV != nil:
		b.WriteString(p.WebDAV.URI)
	default:
		b.WriteString(string(p.Protocol))
	}
	if path, ok := p.RemotePath.Get(); ok {
		if p.WebDAV != nil && strings.HasPrefix(path, "/") {
			b.WriteString(path)
		} else {
			b.WriteString(":")
			b.WriteString(path)
		}
	}
	return b.String()
}
