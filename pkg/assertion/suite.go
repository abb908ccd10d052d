package assertion

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Suite is the on-disk structure for a set of assertions (YAML
// or JSON).
type Suite struct {
	Version     string       `json:"version" yaml:"version"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Assertions  []Definition `json:"assertions" yaml:"assertions"`

	// Source is the file the suite was loaded from.
	Source string `json:"-" yaml:"-"`
}

// ParseSuite decodes a suite. JSON documents are accepted since
// they are valid YAML.
func ParseSuite(data []byte, source string) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf(
			"failed to parse suite %s: %w", source, err,
		)
	}
	suite.Source = source
	return &suite, nil
}

// LoadSuiteFile reads the suite at path from fsys.
func LoadSuiteFile(fsys afero.Fs, path string) (*Suite, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read suite file %s: %w", path, err,
		)
	}
	return ParseSuite(data, path)
}

// LoadSuiteDir loads all .json and .yaml/.yml suites from a
// directory in name order. It does not recurse into
// subdirectories.
func LoadSuiteDir(fsys afero.Fs, dir string) ([]*Suite, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	var suites []*Suite
	for _, entry := range entries {
		if entry.IsDir() || !IsSuiteFile(entry.Name()) {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		suite, err := LoadSuiteFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", p, err)
		}
		suites = append(suites, suite)
	}

	return suites, nil
}

// IsSuiteFile reports whether name has a suite file extension.
func IsSuiteFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// ValidationError represents a problem found in a suite.
type ValidationError struct {
	Field   string
	Message string
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("assertions[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateSuite checks suite structure and builds every assertion
// with engine, returning all problems found.
func ValidateSuite(engine Engine, suite *Suite) []ValidationError {
	var errs []ValidationError

	if suite.Name == "" {
		errs = append(errs, ValidationError{
			Field: "name", Message: "suite name is required", Index: -1,
		})
	}
	if len(suite.Assertions) == 0 {
		errs = append(errs, ValidationError{
			Field: "assertions", Message: "at least one assertion is required", Index: -1,
		})
	}

	for i, def := range suite.Assertions {
		if def.Target == "" {
			errs = append(errs, ValidationError{
				Field: "target", Message: "target is required", Index: i,
			})
		}

		_, err := engine.Build(def)
		switch {
		case err == nil:
		case errors.Is(err, ErrMissingType):
			errs = append(errs, ValidationError{
				Field: "type", Message: "type is required", Index: i,
			})
		case errors.Is(err, ErrUnknownType):
			errs = append(errs, ValidationError{
				Field: "type", Message: err.Error(), Index: i,
			})
		default:
			errs = append(errs, ValidationError{
				Field: "value", Message: err.Error(), Index: i,
			})
		}
	}

	return errs
}
