package file

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"digital.vasic.matchers/pkg/matcher"
)

var errStopWalk = errors.New("stop walk")

type treeKind int

const (
	containOne treeKind = iota
	containAll
	containAny
)

// TreeMatcher walks a directory tree looking for entries by base
// name. Unreadable entries are skipped.
type TreeMatcher struct {
	files *Files
	kind  treeKind
	names []string
}

// ContainFile matches directory trees holding an entry named name.
func (f *Files) ContainFile(name string) *TreeMatcher {
	return &TreeMatcher{files: f, kind: containOne, names: []string{name}}
}

// ContainAllFiles matches trees holding an entry for every name.
func (f *Files) ContainAllFiles(names ...string) *TreeMatcher {
	return &TreeMatcher{files: f, kind: containAll, names: names}
}

// ContainAnyFile matches trees holding an entry for at least one
// name.
func (f *Files) ContainAnyFile(names ...string) *TreeMatcher {
	return &TreeMatcher{files: f, kind: containAny, names: names}
}

// ContainFile matches directories holding an entry named name on the local file system.
func ContainFile(name string) *TreeMatcher { return osFiles.ContainFile(name) }

// ContainAllFiles matches directories holding an entry for every name on the local file system.
func ContainAllFiles(names ...string) *TreeMatcher {
	return osFiles.ContainAllFiles(names...)
}

// ContainAnyFile matches directories holding an entry for at least one name on the local file system.
func ContainAnyFile(names ...string) *TreeMatcher {
	return osFiles.ContainAnyFile(names...)
}

// Test walks the tree rooted at root.
func (m *TreeMatcher) Test(root string) matcher.Result {
	missing, unique := m.walk(root)

	switch m.kind {
	case containAll:
		failure := fmt.Sprintf("%q should contain file names %q", root, m.names)
		if len(missing) > 0 {
			failure += fmt.Sprintf(" but was missing %q", missing)
		}
		return matcher.NewResult(
			len(missing) == 0,
			failure,
			fmt.Sprintf("%q should not contain file names %q", root, m.names),
		)
	case containAny:
		return matcher.Formatted(
			len(missing) < unique,
			"%q should contain any of file names %q",
			"%q should not contain any of file names %q",
			root, m.names,
		)
	default:
		return matcher.Formatted(
			len(missing) == 0,
			"%q should contain a file named %q",
			"%q should not contain a file named %q",
			root, m.names[0],
		)
	}
}

// walk returns the configured names that were not found, in their
// original order, and the number of distinct names. It stops early
// once the outcome is known.
func (m *TreeMatcher) walk(root string) ([]string, int) {
	wanted := make(map[string]bool, len(m.names))
	for _, name := range m.names {
		wanted[name] = true
	}
	remaining := len(wanted)

	_ = afero.Walk(m.files.fs, root, func(
		_ string, info os.FileInfo, err error,
	) error {
		if err != nil || info == nil {
			return nil
		}
		if wanted[info.Name()] {
			wanted[info.Name()] = false
			remaining--
			if remaining == 0 || m.kind != containAll {
				return errStopWalk
			}
		}
		return nil
	})

	unique := len(wanted)
	var missing []string
	for _, name := range m.names {
		if wanted[name] {
			missing = append(missing, name)
			wanted[name] = false
		}
	}
	return missing, unique
}
