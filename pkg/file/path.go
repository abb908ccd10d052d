package file

import (
	"path/filepath"
	"strings"

	"digital.vasic.matchers/pkg/matcher"
)

// BeAbsolute matches absolute paths. It does not touch the
// filesystem.
func BeAbsolute() matcher.Matcher[string] {
	return matcher.Func[string](func(path string) matcher.Result {
		return matcher.Formatted(
			filepath.IsAbs(path),
			"%q should be absolute",
			"%q should not be absolute",
			path,
		)
	})
}

// BeRelative matches relative paths.
func BeRelative() matcher.Matcher[string] {
	return matcher.Func[string](func(path string) matcher.Result {
		return matcher.Formatted(
			!filepath.IsAbs(path),
			"%q should be relative",
			"%q should not be relative",
			path,
		)
	})
}

// HaveExtension matches paths whose extension, without the leading
// dot, is ext. Dot files such as ".bashrc" have no extension.
func HaveExtension(ext string) matcher.Matcher[string] {
	return matcher.Func[string](func(path string) matcher.Result {
		return matcher.Formatted(
			extension(path) == ext && ext != "",
			"%q should have extension %q",
			"%q should not have extension %q",
			path, ext,
		)
	})
}

func extension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}
