package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathMatchers(t *testing.T) {
	assert.True(t, BeAbsolute().Test("/etc/hosts").Passed())
	assert.False(t, BeAbsolute().Test("etc/hosts").Passed())
	assert.True(t, BeRelative().Test("etc/hosts").Passed())
	assert.False(t, BeRelative().Test("/etc/hosts").Passed())
}

func TestHaveExtension(t *testing.T) {
	tests := []struct {
		path   string
		ext    string
		passed bool
	}{
		{"src/main.go", "go", true},
		{"src/main.go", ".go", false},
		{"archive.tar.gz", "gz", true},
		{".bashrc", "bashrc", false},
		{"Makefile", "", false},
		{"dir.d/file", "d", false},
	}

	for _, tt := range tests {
		t.Run(tt.path+"_"+tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.passed, HaveExtension(tt.ext).Test(tt.path).Passed())
		})
	}
}
