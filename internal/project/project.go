// Package project reads the settings of an already scaffolded project from
// its bower.json and package.json.
package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	scerrors "ngscaffold/internal/errors"
	"ngscaffold/pkg/choices"
)

// Metadata is what the script generators need to know about a project.
type Metadata struct {
	// Name is the bower package name, or the directory name when absent.
	Name     string
	AppPath  string
	TestPath string

	// Language is the "yo-language" recorded in package.json, if any.
	Language string

	// TypeScriptAppName is "yo-typescript-appName" from package.json.
	TypeScriptAppName string
}

type bowerFile struct {
	Name     string `json:"name"`
	AppPath  string `json:"appPath"`
	TestPath string `json:"testPath"`
}

type packageFile struct {
	Language          string `json:"yo-language"`
	TypeScriptAppName string `json:"yo-typescript-appName"`
}

// Load reads bower.json and package.json from the root of fs. Whatever they
// leave unset is taken from defaults, and empty paths from "app" and "test".
func Load(fs billy.Filesystem, defaults Metadata) (*Metadata, error) {
	m := &defaults
	if m.AppPath == "" {
		m.AppPath = "app"
	}
	if m.TestPath == "" {
		m.TestPath = "test"
	}

	var bower bowerFile
	if err := readJSON(fs, "bower.json", &bower); err != nil {
		return nil, err
	}
	if bower.Name != "" {
		m.Name = bower.Name
	}
	if bower.AppPath != "" {
		m.AppPath = bower.AppPath
	}
	if bower.TestPath != "" {
		m.TestPath = bower.TestPath
	}

	var pkg packageFile
	if err := readJSON(fs, "package.json", &pkg); err != nil {
		return nil, err
	}
	m.Language = pkg.Language
	m.TypeScriptAppName = pkg.TypeScriptAppName

	return m, nil
}

func readJSON(fs billy.Filesystem, name string, v any) error {
	data, err := util.ReadFile(fs, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return scerrors.WrapPath(scerrors.EFileUnreadable, "reading project file", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return scerrors.WrapPath(scerrors.EInvalidConfig, "parsing project file", name, err)
	}
	return nil
}

// DetectCoffee reports whether appPath already holds CoffeeScript sources
// under scripts/.
func DetectCoffee(fs billy.Filesystem, appPath string) (bool, error) {
	matches, err := Glob(fs, filepath.ToSlash(filepath.Join(appPath, "scripts", "**", "*.coffee")))
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

// Glob returns the slash separated paths in fs matching the doublestar
// pattern.
func Glob(fs billy.Filesystem, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, scerrors.New(scerrors.EInvalidInput, "invalid glob pattern: "+pattern)
	}
	root, _ := doublestar.SplitPattern(pattern)
	if _, err := fs.Stat(root); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var matches []string
	err := util.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		p := filepath.ToSlash(path)
		if ok, _ := doublestar.Match(pattern, p); ok {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Resolve fills in the language flags of c that the user did not set from
// what the project already contains: TypeScript when package.json says so,
// CoffeeScript when .coffee sources exist.
func (m *Metadata) Resolve(fs billy.Filesystem, c *choices.Choices, coffeeSet, typeScriptSet bool) error {
	if !typeScriptSet && !c.TypeScript && m.Language == choices.LangTypeScript {
		c.TypeScript = true
	}
	if !coffeeSet && !c.Coffee {
		if m.Language == choices.LangCoffee {
			c.Coffee = true
		} else {
			found, err := DetectCoffee(fs, m.AppPath)
			if err != nil {
				return err
			}
			c.Coffee = found
		}
	}
	c.Normalize()
	return nil
}
