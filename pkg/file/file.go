// Package file provides matchers over filesystem paths. Every
// matcher runs against an afero.Fs; the package-level constructors
// use the operating system filesystem and On selects another one,
// such as afero.NewMemMapFs in tests.
package file

import (
	"os"

	"github.com/spf13/afero"
)

// Files builds matchers bound to one filesystem.
type Files struct {
	fs afero.Fs
}

// On returns a matcher catalogue bound to fs.
func On(fs afero.Fs) *Files {
	return &Files{fs: fs}
}

var osFiles = On(afero.NewOsFs())

// Fs returns the filesystem the catalogue is bound to.
func (f *Files) Fs() afero.Fs { return f.fs }

func (f *Files) stat(path string) (os.FileInfo, error) {
	return f.fs.Stat(path)
}

// lstat does not follow a final symbolic link when the filesystem
// supports it.
func (f *Files) lstat(path string) (os.FileInfo, error) {
	if l, ok := f.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return f.fs.Stat(path)
}
