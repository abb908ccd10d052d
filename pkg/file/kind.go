package file

import (
	"os"

	"digital.vasic.matchers/pkg/matcher"
)

// Kind selects the attribute checked by a KindMatcher.
type Kind int

const (
	RegularFile Kind = iota
	Directory
	SymbolicLink
	ZeroSized
	Readonly
	Writable
)

// String returns the attribute as it appears in messages.
func (k Kind) String() string {
	switch k {
	case RegularFile:
		return "a file"
	case Directory:
		return "a directory"
	case SymbolicLink:
		return "a symbolic link"
	case ZeroSized:
		return "zero sized"
	case Readonly:
		return "readonly"
	case Writable:
		return "writable"
	default:
		return "unknown"
	}
}

// KindMatcher checks a file attribute. A path that cannot be
// stat'ed has none of the attributes.
type KindMatcher struct {
	files *Files
	Kind  Kind
}

func (f *Files) kind(k Kind) *KindMatcher {
	return &KindMatcher{files: f, Kind: k}
}

// BeAFile matches regular files in f.
func (f *Files) BeAFile() *KindMatcher { return f.kind(RegularFile) }

// BeADirectory matches directories in f.
func (f *Files) BeADirectory() *KindMatcher { return f.kind(Directory) }

// BeASymbolicLink matches symbolic links in f.
func (f *Files) BeASymbolicLink() *KindMatcher { return f.kind(SymbolicLink) }

// BeZeroSized matches empty regular files in f.
func (f *Files) BeZeroSized() *KindMatcher { return f.kind(ZeroSized) }

// BeReadonly matches paths with no write permission bit in f.
func (f *Files) BeReadonly() *KindMatcher { return f.kind(Readonly) }

// BeWritable matches paths with a write permission bit in f.
func (f *Files) BeWritable() *KindMatcher { return f.kind(Writable) }

// BeAFile matches regular files, following symbolic links.
func BeAFile() *KindMatcher { return osFiles.BeAFile() }

// BeADirectory matches directories on the local file system.
func BeADirectory() *KindMatcher { return osFiles.BeADirectory() }

// BeASymbolicLink matches paths that are themselves symbolic links.
func BeASymbolicLink() *KindMatcher { return osFiles.BeASymbolicLink() }

// BeZeroSized matches empty regular files on the local file system.
func BeZeroSized() *KindMatcher { return osFiles.BeZeroSized() }

// BeReadonly matches paths with no write permission bit set.
func BeReadonly() *KindMatcher { return osFiles.BeReadonly() }

// BeWritable matches paths with a write permission bit on the local file system.
func BeWritable() *KindMatcher { return osFiles.BeWritable() }

// String describes the matcher for failure messages.
func (m *KindMatcher) String() string { return "be " + m.Kind.String() }

// Test stats path and checks the configured attribute.
func (m *KindMatcher) Test(path string) matcher.Result {
	return matcher.Formatted(
		m.holds(path),
		"%q should be %s",
		"%q should not be %s",
		path, m.Kind,
	)
}

func (m *KindMatcher) holds(path string) bool {
	if m.Kind == SymbolicLink {
		info, err := m.files.lstat(path)
		return err == nil && info.Mode()&os.ModeSymlink != 0
	}

	info, err := m.files.stat(path)
	if err != nil {
		return false
	}

	switch m.Kind {
	case RegularFile:
		return info.Mode().IsRegular()
	case Directory:
		return info.IsDir()
	case ZeroSized:
		return info.Size() == 0
	case Readonly:
		return info.Mode().Perm()&0o222 == 0
	case Writable:
		return info.Mode().Perm()&0o222 != 0
	}
	return false
}
