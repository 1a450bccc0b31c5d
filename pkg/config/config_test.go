package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSSHConfigPath(t *testing.T) {
	t.Setenv(string(sshConfigPath), "")
	assert.Equal(t, "", GlobalConfig.GetSSHConfigPath())

	t.Setenv(string(sshConfigPath), "/etc/xfer/ssh_config")
	assert.Equal(t, "/etc/xfer/ssh_config", GlobalConfig.GetSSHConfigPath())
}

func TestGetDebug(t *testing.T) {
	t.Setenv(string(debug), "")
	assert.False(t, GlobalConfig.GetDebug())

	t.Setenv(string(debug), "1")
	assert.True(t, GlobalConfig.GetDebug())
}
