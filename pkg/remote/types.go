package remote

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/xferdev/xfer-cli/pkg/filetransfer"
)

// Remote is one of BookmarkRemote, HostRemote or NoRemote. The set is closed;
// switches over it should handle all three.
type Remote interface {
	isRemote()
	fmt.Stringer
}

// BookmarkRemote names a saved bookmark. It is looked up later by whoever
// owns the bookmark store.
type BookmarkRemote struct {
	Name     string
	Password mo.Option[string]
}

// HostRemote is a fully resolved endpoint.
type HostRemote struct {
	Params   filetransfer.Params
	Password mo.Option[string]
}

type NoRemote struct{}

var None Remote = NoRemote{}

func (BookmarkRemote) isRemote() {}
func (HostRemote) isRemote()     {}
func (NoRemote) isRemote()       {}

func (b BookmarkRemote) String() string {
	return fmt.Sprintf("bookmark %q", b.Name)
}

func (h HostRemote) String() string {
	return h.Params.String()
}

func (NoRemote) String() string {
	return "none"
}

func IsNone(r Remote) bool {
	if r == nil {
		return true
	}
	_, ok := r.(NoRemote)
	return ok
}

// HasPassword reports whether a password was given on the command line for r.
func HasPassword(r Remote) bool {
	switch v := r.(type) {
	case BookmarkRemote:
		return v.Password.IsPresent()
	case HostRemote:
		return v.Password.IsPresent()
	case NoRemote:
		return false
	default:
		return false
	}
}

// ConnectionPlan is what the command line resolved to: where to connect,
// optionally through which bridge, and where the local browser starts.
type ConnectionPlan struct {
	Bridge   Remote
	Target   Remote
	LocalDir mo.Option[string]
}

func NewConnectionPlan() ConnectionPlan {
	return ConnectionPlan{
		Bridge:   None,
		Target:   None,
		LocalDir: mo.None[string](),
	}
}

// IsLocalOnly is true when no host was given at all.
func (p ConnectionPlan) IsLocalOnly() bool {
	return IsNone(p.Target) && IsNone(p.Bridge)
}

// RequireRemote rejects a pure-local plan for callers that need a remote.
func (p ConnectionPlan) RequireRemote() error {
	if IsNone(p.Target) {
		return ErrNoRemote
	}
	return nil
}
