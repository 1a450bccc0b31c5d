package version

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"github.com/xferdev/xfer-cli/pkg/terminal"
)

func TestBuildVersionString(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	term := terminal.NewWithWriters(&out, &out)

	Version = ""
	if got := buildVersionString(term); got != "xfer unknown" {
		t.Errorf(`buildVersionString(term) = %q, want "xfer unknown"`, got)
	}

	Version = "v0.3.1"
	t.Cleanup(func() { Version = "" })
	if got := buildVersionString(term); got != "xfer v0.3.1" {
		t.Errorf(`buildVersionString(term) = %q, want "xfer v0.3.1"`, got)
	}
}
