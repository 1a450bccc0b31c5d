package files

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	xfererrors "github.com/xferdev/xfer-cli/pkg/errors"
)

const (
	xferDirectory = ".xfer"
	sshDirectory  = ".ssh"
	sshConfigFile = "config"
)

var AppFs = afero.NewOsFs()

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", xfererrors.WrapAndTrace(err)
	}
	return home, nil
}

// GetXferDirectoryPath is where the optional config.yaml lives.
func GetXferDirectoryPath() (string, error) {
	home, err := GetHomeDir()
	if err != nil {
		return "", xfererrors.WrapAndTrace(err)
	}
	return filepath.Join(home, xferDirectory), nil
}

// GetUserSSHConfigPath returns the per-user ssh client config, ~/.ssh/config.
func GetUserSSHConfigPath() (string, error) {
	return GetUserSSHConfigPathWithHome(GetHomeDir)
}

func GetUserSSHConfigPathWithHome(home func() (string, error)) (string, error) {
	dir, err := home()
	if err != nil {
		return "", xfererrors.WrapAndTrace(err)
	}
	return filepath.Join(dir, sshDirectory, sshConfigFile), nil
}

// Exists reports whether anything (file, dir, or other entry) lives at path.
func Exists(fs afero.Fs, path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, xfererrors.WrapAndTrace(err)
	}
	return exists, nil
}
