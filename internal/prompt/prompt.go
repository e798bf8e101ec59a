// Package prompt asks the questions that shape a new app, either
// interactively in the terminal or from canned answers.
package prompt

import (
	"ngscaffold/pkg/choices"
)

// Question is one prompt. Name identifies the answer for static prompters.
type Question struct {
	Name    string
	Message string

	// Default is used for confirms ("true"/"false") and text input.
	Default string
}

// Option is one entry of a checkbox prompt.
type Option struct {
	Value   string
	Label   string
	Checked bool
}

// Prompter asks questions and returns the answers.
type Prompter interface {
	Confirm(q Question) (bool, error)
	Checkbox(q Question, options []Option) ([]string, error)
	Input(q Question) (string, error)
}

// Question names, shared with the config file answers.
const (
	NameAppName          = "app_name"
	NameCoffee           = "coffee"
	NameTypeScript       = "typescript"
	NameTypeScriptConfig = "typescript_config"
	NamePartialsCache    = "partials_cache"
	NameBootstrap        = "bootstrap"
	NameCompassBootstrap = "compass_bootstrap"
	NameModules          = "modules"
)

var moduleLabels = map[string]string{
	choices.ModuleResource: "angular-resource.js",
	choices.ModuleCookies:  "angular-cookies.js",
	choices.ModuleSanitize: "angular-sanitize.js",
	choices.ModuleRoute:    "angular-route.js",
}

// Ask runs the app questions in order and stores the answers in c. Questions
// that depend on an earlier answer are only asked when it applies.
func Ask(p Prompter, c *choices.Choices) error {
	var err error

	if c.AppName == "" {
		if c.AppName, err = p.Input(Question{
			Name:    NameAppName,
			Message: "What would you like to name your app?",
			Default: "app",
		}); err != nil {
			return err
		}
	}

	if c.Coffee, err = p.Confirm(Question{
		Name:    NameCoffee,
		Message: "Would you like to use CoffeeScript?",
		Default: "false",
	}); err != nil {
		return err
	}
	if c.TypeScript, err = p.Confirm(Question{
		Name:    NameTypeScript,
		Message: "Would you like to use TypeScript?",
		Default: "false",
	}); err != nil {
		return err
	}

	c.TypeScriptConfig, c.PartialsCache = false, false
	if c.TypeScript {
		if c.TypeScriptConfig, err = p.Confirm(Question{
			Name:    NameTypeScriptConfig,
			Message: "Would you like app configs? (convenient way to configure backend URLs, etc)",
			Default: "true",
		}); err != nil {
			return err
		}
		if c.PartialsCache, err = p.Confirm(Question{
			Name:    NamePartialsCache,
			Message: "Would you like partials caching enabled? (bundles all .html partials in one file and seeds the ng cache)",
			Default: "true",
		}); err != nil {
			return err
		}
	}

	if c.Bootstrap, err = p.Confirm(Question{
		Name:    NameBootstrap,
		Message: "Would you like to include Twitter Bootstrap?",
		Default: "true",
	}); err != nil {
		return err
	}
	c.CompassBootstrap = false
	if c.Bootstrap {
		if c.CompassBootstrap, err = p.Confirm(Question{
			Name:    NameCompassBootstrap,
			Message: "Would you like to use the SCSS version of Twitter Bootstrap with the Compass CSS Authoring Framework?",
			Default: "true",
		}); err != nil {
			return err
		}
	}

	options := make([]Option, len(choices.AllModules))
	for i, m := range choices.AllModules {
		options[i] = Option{Value: m, Label: moduleLabels[m], Checked: true}
	}
	if c.Modules, err = p.Checkbox(Question{
		Name:    NameModules,
		Message: "Which modules would you like to include?",
	}, options); err != nil {
		return err
	}

	c.Normalize()
	return nil
}
