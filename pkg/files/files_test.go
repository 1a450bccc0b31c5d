package files

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type filesTestSuite struct {
	suite.Suite
	fs afero.Fs
}

func (s *filesTestSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
}

func (s *filesTestSuite) TestGetUserSSHConfigPath() {
	_, err := GetUserSSHConfigPath()
	s.Nil(err)
}

func (s *filesTestSuite) TestGetUserSSHConfigPathWithHome() {
	path, err := GetUserSSHConfigPathWithHome(func() (string, error) { return "/home/tester", nil })
	s.Nil(err)
	s.Equal(filepath.Join("/home/tester", ".ssh", "config"), path)
}

func (s *filesTestSuite) TestExists() {
	s.Require().NoError(s.fs.MkdirAll("/srv/data", 0o755))
	s.Require().NoError(afero.WriteFile(s.fs, "/srv/notes.txt", []byte("hi"), 0o600))

	for path, want := range map[string]bool{
		"/srv/data":      true,
		"/srv/notes.txt": true,
		"/srv/missing":   false,
		"":               false,
	} {
		got, err := Exists(s.fs, path)
		s.Nil(err)
		s.Equal(want, got, path)
	}
}

func TestFiles(t *testing.T) {
	suite.Run(t, new(filesTestSuite))
}
