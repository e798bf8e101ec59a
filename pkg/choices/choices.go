package choices

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
)

// Module names offered by the modules prompt.
const (
	ModuleResource = "resource"
	ModuleCookies  = "cookies"
	ModuleSanitize = "sanitize"
	ModuleRoute    = "route"
)

// Script languages.
const (
	LangJavaScript = "javascript"
	LangCoffee     = "coffee"
	LangTypeScript = "typescript"
)

// AllModules lists the optional angular modules in prompt order.
var AllModules = []string{ModuleResource, ModuleCookies, ModuleSanitize, ModuleRoute}

// Choices holds the answers that drive template selection.
type Choices struct {
	AppName          string   `yaml:"app_name,omitempty" json:"app_name,omitempty"`
	Coffee           bool     `yaml:"coffee" json:"coffee"`
	TypeScript       bool     `yaml:"typescript" json:"typescript"`
	MinSafe          bool     `yaml:"minsafe" json:"minsafe"`
	TypeScriptConfig bool     `yaml:"typescript_config" json:"typescript_config"`
	PartialsCache    bool     `yaml:"partials_cache" json:"partials_cache"`
	Bootstrap        bool     `yaml:"bootstrap" json:"bootstrap"`
	CompassBootstrap bool     `yaml:"compass_bootstrap" json:"compass_bootstrap"`
	Modules          []string `yaml:"modules" json:"modules"`
}

// Defaults returns the answers a user gets by accepting every prompt default.
func Defaults() Choices {
	return Choices{
		TypeScriptConfig: true,
		PartialsCache:    true,
		Bootstrap:        true,
		CompassBootstrap: true,
		Modules:          slices.Clone(AllModules),
	}
}

// Normalize resolves contradictory answers: TypeScript wins over CoffeeScript,
// the TypeScript features require TypeScript, Compass requires Bootstrap, and
// modules are deduplicated into prompt order with unknown names dropped.
func (c *Choices) Normalize() {
	if c.TypeScript {
		c.Coffee = false
	} else {
		c.TypeScriptConfig = false
		c.PartialsCache = false
	}
	if !c.Bootstrap {
		c.CompassBootstrap = false
	}
	mods := make([]string, 0, len(AllModules))
	for _, m := range AllModules {
		if c.HasModule(m) {
			mods = append(mods, m)
		}
	}
	c.Modules = mods
}

// HasModule reports whether module m was selected.
func (c *Choices) HasModule(m string) bool {
	return slices.Contains(c.Modules, m)
}

// JQuery reports whether jQuery goes into bower.json. Bootstrap and
// TypeScript need it, and plain apps get it by default, so it is always on.
func (c *Choices) JQuery() bool {
	return true
}

// Language returns the script language name.
func (c *Choices) Language() string {
	switch {
	case c.TypeScript:
		return LangTypeScript
	case c.Coffee:
		return LangCoffee
	default:
		return LangJavaScript
	}
}

// ScriptSuffix returns the file extension of generated scripts.
func (c *Choices) ScriptSuffix() string {
	switch c.Language() {
	case LangTypeScript:
		return ".ts"
	case LangCoffee:
		return ".coffee"
	default:
		return ".js"
	}
}

// moduleInfo maps a module to its angular dependency and bower file.
var moduleInfo = map[string]struct{ dep, file string }{
	ModuleResource: {"ngResource", "angular-resource/angular-resource.js"},
	ModuleCookies:  {"ngCookies", "angular-cookies/angular-cookies.js"},
	ModuleSanitize: {"ngSanitize", "angular-sanitize/angular-sanitize.js"},
	ModuleRoute:    {"ngRoute", "angular-route/angular-route.js"},
}

// AngularDeps returns the quoted angular module dependencies of the app
// module, cookies first as in the generated app.js.
func (c *Choices) AngularDeps() []string {
	order := []string{ModuleCookies, ModuleResource, ModuleSanitize, ModuleRoute}
	var deps []string
	for _, m := range order {
		if c.HasModule(m) {
			deps = append(deps, "'"+moduleInfo[m].dep+"'")
		}
	}
	return deps
}

// ModuleFiles returns the bower component paths of the selected modules.
func (c *Choices) ModuleFiles() []string {
	var files []string
	for _, m := range AllModules {
		if c.HasModule(m) {
			files = append(files, moduleInfo[m].file)
		}
	}
	return files
}

// Fingerprint returns a stable hash of the normalized answers.
func (c *Choices) Fingerprint() string {
	n := *c
	n.Modules = slices.Clone(c.Modules)
	n.Normalize()
	data := fmt.Sprintf("%s|%t|%t|%t|%t|%t|%t|%t|%s",
		n.AppName, n.Coffee, n.TypeScript, n.MinSafe, n.TypeScriptConfig,
		n.PartialsCache, n.Bootstrap, n.CompassBootstrap, strings.Join(n.Modules, ","))
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// String returns a one-line summary of the answers.
func (c *Choices) String() string {
	parts := []string{c.Language()}
	if c.MinSafe {
		parts = append(parts, "minsafe")
	}
	if c.Bootstrap {
		if c.CompassBootstrap {
			parts = append(parts, "bootstrap(scss)")
		} else {
			parts = append(parts, "bootstrap")
		}
	}
	if len(c.Modules) > 0 {
		parts = append(parts, "modules="+strings.Join(c.Modules, ","))
	}
	return strings.Join(parts, " ")
}
