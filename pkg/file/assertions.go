package file

import "digital.vasic.matchers/pkg/matcher"

// Assertion chains file assertions on one path.
type Assertion struct {
	t     matcher.TestingT
	files *Files
	path  string
}

// That starts a chain of assertions on a path of the operating
// system filesystem.
func That(t matcher.TestingT, path string) *Assertion {
	return osFiles.That(t, path)
}

// That starts a chain of assertions on a path of f's filesystem.
func (f *Files) That(t matcher.TestingT, path string) *Assertion {
	return &Assertion{t: t, files: f, path: path}
}

func (a *Assertion) should(m matcher.Matcher[string]) *Assertion {
	a.t.Helper()
	matcher.Should(a.t, a.path, m)
	return a
}

func (a *Assertion) shouldNot(m matcher.Matcher[string]) *Assertion {
	a.t.Helper()
	matcher.ShouldNot(a.t, a.path, m)
	return a
}

// ShouldBeAFile asserts that the path should be a file.
func (a *Assertion) ShouldBeAFile() *Assertion {
	a.t.Helper()
	return a.should(a.files.BeAFile())
}

// ShouldNotBeAFile asserts that the path should not be a file.
func (a *Assertion) ShouldNotBeAFile() *Assertion {
	a.t.Helper()
	return a.shouldNot(a.files.BeAFile())
}

// ShouldBeADirectory asserts that the path should be a directory.
func (a *Assertion) ShouldBeADirectory() *Assertion {
	a.t.Helper()
	return a.should(a.files.BeADirectory())
}

// ShouldNotBeADirectory asserts that the path should not be a directory.
func (a *Assertion) ShouldNotBeADirectory() *Assertion {
	a.t.Helper()
	return a.shouldNot(a.files.BeADirectory())
}

// ShouldBeASymbolicLink asserts that the path should be a symbolic link.
func (a *Assertion) ShouldBeASymbolicLink() *Assertion {
	a.t.Helper()
	return a.should(a.files.BeASymbolicLink())
}

// ShouldNotBeASymbolicLink asserts that the path should not be a symbolic link.
func (a *Assertion) ShouldNotBeASymbolicLink() *Assertion {
	a.t.Helper()
	return a.shouldNot(a.files.BeASymbolicLink())
}

// ShouldBeZeroSized asserts that the path should be zero sized.
func (a *Assertion) ShouldBeZeroSized() *Assertion {
	a.t.Helper()
	return a.should(a.files.BeZeroSized())
}

// ShouldNotBeZeroSized asserts that the path should not be zero sized.
func (a *Assertion) ShouldNotBeZeroSized() *Assertion {
	a.t.Helper()
	return a.shouldNot(a.files.BeZeroSized())
}

// ShouldBeReadonly asserts that the path should be readonly.
func (a *Assertion) ShouldBeReadonly() *Assertion {
	a.t.Helper()
	return a.should(a.files.BeReadonly())
}

// ShouldBeWritable asserts that the path should be writable.
func (a *Assertion) ShouldBeWritable() *Assertion {
	a.t.Helper()
	return a.should(a.files.BeWritable())
}

// ShouldBeAbsolute asserts that the path should be absolute.
func (a *Assertion) ShouldBeAbsolute() *Assertion {
	a.t.Helper()
	return a.should(BeAbsolute())
}

// ShouldBeRelative asserts that the path should be relative.
func (a *Assertion) ShouldBeRelative() *Assertion {
	a.t.Helper()
	return a.should(BeRelative())
}

// ShouldHaveExtension asserts that the path should have extension ext.
func (a *Assertion) ShouldHaveExtension(ext string) *Assertion {
	a.t.Helper()
	return a.should(HaveExtension(ext))
}

// ShouldNotHaveExtension asserts that the path should not have extension ext.
func (a *Assertion) ShouldNotHaveExtension(ext string) *Assertion {
	a.t.Helper()
	return a.shouldNot(HaveExtension(ext))
}

// ShouldContainFile asserts that the path should be a directory holding an entry named name.
func (a *Assertion) ShouldContainFile(name string) *Assertion {
	a.t.Helper()
	return a.should(a.files.ContainFile(name))
}

// ShouldNotContainFile asserts that the path should not be a directory holding an entry named name.
func (a *Assertion) ShouldNotContainFile(name string) *Assertion {
	a.t.Helper()
	return a.shouldNot(a.files.ContainFile(name))
}

// ShouldContainAllFiles asserts that the path should contain an entry for every one of names.
func (a *Assertion) ShouldContainAllFiles(names ...string) *Assertion {
	a.t.Helper()
	return a.should(a.files.ContainAllFiles(names...))
}

// ShouldNotContainAllFiles asserts that the path should not contain an entry for every one of names.
func (a *Assertion) ShouldNotContainAllFiles(names ...string) *Assertion {
	a.t.Helper()
	return a.shouldNot(a.files.ContainAllFiles(names...))
}

// ShouldContainAnyFile asserts that the path should contain an entry for at least one of names.
func (a *Assertion) ShouldContainAnyFile(names ...string) *Assertion {
	a.t.Helper()
	return a.should(a.files.ContainAnyFile(names...))
}

// ShouldNotContainAnyFile asserts that the path should not contain an entry for at least one of names.
func (a *Assertion) ShouldNotContainAnyFile(names ...string) *Assertion {
	a.t.Helper()
	return a.shouldNot(a.files.ContainAnyFile(names...))
}
