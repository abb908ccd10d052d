package assertion

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSuiteYAML = `version: "1"
name: user api
description: shape of GET /users/{id}
assertions:
  - type: equal
    target: id
    value: 7
  - type: contains_all
    target: roles
    values: [admin, dev]
  - target: email
    all_of:
      - type: matches
        value: '^[^@]+@example\.com$'
      - type: max_count
        value: 64
  - type: in_range
    target: score
    params:
      min: 0
      max: 1
  - type: contains
    target: name
    value: test
    not: true
    message: fixtures must not leak
`

const userSuiteJSON = `{
  "version": "1",
  "name": "user json",
  "assertions": [
    {"type": "type", "target": "@this", "value": "object"}
  ]
}`

func suiteFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/suites/users.yaml", []byte(userSuiteYAML), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/suites/raw.json", []byte(userSuiteJSON), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/suites/README.md", []byte("# suites"), 0o644))
	require.NoError(t, fs.MkdirAll("/suites/nested", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/suites/nested/skip.yml", []byte("name: skip"), 0o644))
	return fs
}

func TestLoadSuiteFile_YAML(t *testing.T) {
	suite, err := LoadSuiteFile(suiteFs(t), "/suites/users.yaml")
	require.NoError(t, err)

	assert.Equal(t, "user api", suite.Name)
	assert.Equal(t, "1", suite.Version)
	assert.Equal(t, "/suites/users.yaml", suite.Source)
	require.Len(t, suite.Assertions, 5)

	assert.Equal(t, 7, suite.Assertions[0].Value)
	assert.Equal(t, []any{"admin", "dev"}, suite.Assertions[1].Values)
	assert.Equal(t, "all_of", suite.Assertions[2].Kind())
	assert.Len(t, suite.Assertions[2].AllOf, 2)
	assert.Equal(t, map[string]any{"min": 0, "max": 1}, suite.Assertions[3].Params)
	assert.True(t, suite.Assertions[4].Not)
	assert.Equal(t, "fixtures must not leak", suite.Assertions[4].Message)
}

func TestLoadSuiteFile_Errors(t *testing.T) {
	fs := suiteFs(t)

	_, err := LoadSuiteFile(fs, "/suites/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read suite file /suites/missing.yaml")

	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("assertions: {"), 0o644))
	_, err = LoadSuiteFile(fs, "/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse suite /bad.yaml")
}

func TestLoadSuiteDir(t *testing.T) {
	suites, err := LoadSuiteDir(suiteFs(t), "/suites")
	require.NoError(t, err)
	require.Len(t, suites, 2)
	assert.Equal(t, "user json", suites[0].Name)
	assert.Equal(t, "user api", suites[1].Name)

	_, err = LoadSuiteDir(afero.NewMemMapFs(), "/nowhere")
	assert.Error(t, err)
}

func TestIsSuiteFile(t *testing.T) {
	assert.True(t, IsSuiteFile("a.yaml"))
	assert.True(t, IsSuiteFile("a.YML"))
	assert.True(t, IsSuiteFile("a.json"))
	assert.False(t, IsSuiteFile("a.toml"))
	assert.False(t, IsSuiteFile("yaml"))
}

func TestValidateSuite(t *testing.T) {
	e := NewEngine()

	suite, err := LoadSuiteFile(suiteFs(t), "/suites/users.yaml")
	require.NoError(t, err)
	assert.Empty(t, ValidateSuite(e, suite))

	bad := &Suite{
		Assertions: []Definition{
			{Target: "a"},
			{Type: "frobnicate", Target: "b"},
			{Type: "not_empty"},
			{Type: "min_count", Target: "c", Value: "lots"},
		},
	}
	errs := ValidateSuite(e, bad)
	require.Len(t, errs, 5)
	assert.Equal(t, "name: suite name is required", errs[0].Error())
	assert.Equal(t, "assertions[0].type: type is required", errs[1].Error())
	assert.Equal(t, "assertions[1].type: unknown assertion type: frobnicate", errs[2].Error())
	assert.Equal(t, "assertions[2].target: target is required", errs[3].Error())
	assert.Equal(t,
		"assertions[3].value: min_count: invalid assertion: count must be a non-negative integer, got lots",
		errs[4].Error(),
	)

	errs = ValidateSuite(e, &Suite{Name: "empty"})
	require.Len(t, errs, 1)
	assert.Equal(t, "assertions: at least one assertion is required", errs[0].Error())
}
