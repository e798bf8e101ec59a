package generator

import (
	"path"

	"ngscaffold/internal/naming"
	"ngscaffold/internal/project"
	"ngscaffold/internal/state"
	"ngscaffold/internal/templates"
	"ngscaffold/pkg/choices"
)

// ScriptKind describes one script generator.
type ScriptKind struct {
	Name string // template base name, e.g. "controller"
	Dir  string // directory below scripts/ and spec/

	// TrimSuffix is removed from the user's name, so "mainCtrl" and "main"
	// produce the same controller.
	TrimSuffix string
}

var (
	Controller = ScriptKind{Name: "controller", Dir: "controllers", TrimSuffix: "Ctrl"}
	Service    = ScriptKind{Name: "service", Dir: "services", TrimSuffix: "Service"}
	Directive  = ScriptKind{Name: "directive", Dir: "directives"}
	Filter     = ScriptKind{Name: "filter", Dir: "filters"}
)

// ScriptKinds lists the script generators in help order.
var ScriptKinds = []ScriptKind{Controller, Service, Directive, Filter}

// ScriptOptions are the inputs of a script generator.
type ScriptOptions struct {
	Name string

	// Meta describes the existing project; its paths override the config.
	Meta *project.Metadata

	// Choices carries the language and minsafe answers.
	Choices choices.Choices

	// SkipAdd leaves index.html untouched.
	SkipAdd bool
}

// Script writes the source and spec of one script and references the source
// from index.html unless SkipAdd is set.
func (g *Generator) Script(kind ScriptKind, opts ScriptOptions) (*state.Record, error) {
	meta := opts.Meta
	if meta == nil {
		meta = &project.Metadata{AppPath: g.cfg.AppPath, TestPath: g.cfg.TestPath}
	}
	c := opts.Choices
	c.Normalize()

	appName := naming.AppName(meta.Name)
	data := &templates.Data{
		AppName:       appName,
		ScriptAppName: naming.ScriptAppName(appName, g.cfg.Suffix()),
		AppPath:       meta.AppPath,
		TestPath:      meta.TestPath,
		Choices:       c,
	}
	if c.TypeScript {
		if meta.TypeScriptAppName != "" {
			data.ScriptAppName = meta.TypeScriptAppName
		}
		data.TSAppType = naming.Classify(appName) + "App"
	}

	if err := g.script(kind, opts.Name, data, c, opts.SkipAdd); err != nil {
		return nil, err
	}
	return g.record(appName, c, false)
}

// script renders the app and spec templates of kind for name.
func (g *Generator) script(kind ScriptKind, name string, base *templates.Data, c choices.Choices, skipAdd bool) error {
	if kind.TrimSuffix != "" {
		name = naming.TrimSuffixFold(name, kind.TrimSuffix)
	}

	data := *base
	data.Name = name
	data.CameledName = naming.Camelize(name)
	data.ClassedName = naming.Classify(name)
	data.DasherizedName = naming.Slugify(name)
	data.TSAngularName = data.CameledName + "Service"
	data.TSClassName = data.ClassedName + "Service"

	root := templates.Source(c.Language(), c.MinSafe)
	suffix := c.ScriptSuffix()

	targets := []struct{ template, dest string }{
		{kind.Name + suffix, path.Join(data.AppPath, "scripts", kind.Dir, name+suffix)},
		{path.Join("spec", kind.Name+suffix), path.Join(data.TestPath, "spec", kind.Dir, name+suffix)},
	}
	for _, t := range targets {
		tmpl, err := templates.Lookup(root, t.template)
		if err != nil {
			return err
		}
		out, err := templates.Render(tmpl, &data)
		if err != nil {
			return err
		}
		if err := g.write(t.dest, out); err != nil {
			return err
		}
	}

	if skipAdd {
		return nil
	}
	return g.AddScriptToIndex(data.AppPath, path.Join(kind.Dir, name))
}
