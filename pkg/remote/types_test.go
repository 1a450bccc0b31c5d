package remote

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"github.com/xferdev/xfer-cli/pkg/filetransfer"
)

func TestIsNone(t *testing.T) {
	assert.True(t, IsNone(nil))
	assert.True(t, IsNone(None))
	assert.True(t, IsNone(NoRemote{}))
	assert.False(t, IsNone(BookmarkRemote{Name: "foo"}))
	assert.False(t, IsNone(HostRemote{}))
}

func TestRemoteString(t *testing.T) {
	params := filetransfer.NewGenericTransferParams(filetransfer.ProtocolSCP,
		filetransfer.NewGenericParams().WithAddress("host1"))

	assert.Equal(t, `bookmark "foo"`, BookmarkRemote{Name: "foo", Password: mo.Some("pw")}.String())
	assert.Equal(t, "scp://host1:22", HostRemote{Params: params, Password: mo.Some("pw")}.String())
	assert.Equal(t, "none", None.String())
}

func TestNewConnectionPlanIsLocalOnly(t *testing.T) {
	plan := NewConnectionPlan()
	assert.True(t, plan.IsLocalOnly())
	assert.Error(t, plan.RequireRemote())

	plan.Target = BookmarkRemote{Name: "foo"}
	assert.False(t, plan.IsLocalOnly())
	assert.NoError(t, plan.RequireRemote())
}

func TestHasPassword(t *testing.T) {
	assert.True(t, HasPassword(BookmarkRemote{Name: "foo", Password: mo.Some("")}))
	assert.False(t, HasPassword(BookmarkRemote{Name: "foo", Password: mo.None[string]()}))
	assert.False(t, HasPassword(None))
}
