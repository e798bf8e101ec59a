package generator

import (
	"path"
	"strings"

	"ngscaffold/internal/htmlwire"
	"ngscaffold/internal/naming"
	"ngscaffold/internal/prompt"
	"ngscaffold/internal/state"
	"ngscaffold/internal/templates"
	"ngscaffold/pkg/choices"
)

// bootstrapPlugins are the Twitter Bootstrap javascript plugins wired into
// scripts/plugins.js.
var bootstrapPlugins = []string{
	"affix", "alert", "button", "carousel", "transition", "collapse",
	"dropdown", "modal", "scrollspy", "tab", "tooltip", "popover",
}

var packageFiles = []struct{ src, dest string }{
	{"common/_bower.json", "bower.json"},
	{"common/_package.json", "package.json"},
	{"common/Gruntfile.js", "Gruntfile.js"},
}

const bootstrapCSS = "bower_components/sass-bootstrap/dist/css/bootstrap.css"

// AppOptions are the inputs of the app generator.
type AppOptions struct {
	// Name is the raw app name, e.g. the directory name.
	Name string

	// Choices seeds the answers; MinSafe is taken as is since it is not asked.
	Choices choices.Choices

	Prompter prompt.Prompter
}

// App asks the app questions and writes a complete app skeleton: index.html
// with its build blocks, the package files, the main view, app script and
// main controller. The returned record lists every generated file.
func (g *Generator) App(opts AppOptions) (*state.Record, error) {
	c := opts.Choices
	c.AppName = opts.Name
	if opts.Prompter != nil {
		if err := prompt.Ask(opts.Prompter, &c); err != nil {
			return nil, err
		}
	}
	c.AppName = naming.AppName(c.AppName)
	c.Normalize()
	g.log.Debug("answers: %s", c.String())

	data := g.appData(c)
	appPath := g.cfg.AppPath

	index, err := templates.Render("common/index.html", data)
	if err != nil {
		return nil, err
	}

	if index, err = g.bootstrapFiles(index, c); err != nil {
		return nil, err
	}

	if c.Bootstrap {
		plugins := make([]string, len(bootstrapPlugins))
		for i, p := range bootstrapPlugins {
			plugins[i] = "bower_components/sass-bootstrap/js/" + p + ".js"
		}
		if index, err = htmlwire.AppendScripts(index, "scripts/plugins.js", plugins); err != nil {
			return nil, err
		}
	}

	if files := c.ModuleFiles(); len(files) > 0 {
		modules := make([]string, len(files))
		for i, f := range files {
			modules[i] = "bower_components/" + f
		}
		if index, err = htmlwire.AppendScripts(index, "scripts/modules.js", modules); err != nil {
			return nil, err
		}
	}

	// TypeScript apps carry their script block in the index template.
	if !c.TypeScript {
		if index, err = htmlwire.AppendFiles(index, htmlwire.FileSpec{
			Type:          htmlwire.TypeJS,
			OptimizedPath: g.cfg.ScriptsBlock,
			Sources:       []string{"scripts/app.js", "scripts/controllers/main.js"},
			SearchPath:    []string{".tmp", appPath},
		}); err != nil {
			return nil, err
		}
	}

	if err := g.write(path.Join(appPath, "index.html"), index); err != nil {
		return nil, err
	}

	for _, f := range packageFiles {
		out, err := templates.Render(f.src, data)
		if err != nil {
			return nil, err
		}
		if err := g.write(f.dest, out); err != nil {
			return nil, err
		}
	}

	if err := g.imageFiles(); err != nil {
		return nil, err
	}

	view, err := templates.Markdown("common/views/main.md", data)
	if err != nil {
		return nil, err
	}
	if err := g.write(path.Join(appPath, "views", "main.html"), view); err != nil {
		return nil, err
	}

	root := templates.Source(c.Language(), c.MinSafe)
	appTemplate, err := templates.Lookup(root, "app"+c.ScriptSuffix())
	if err != nil {
		return nil, err
	}
	appScript, err := templates.Render(appTemplate, data)
	if err != nil {
		return nil, err
	}
	if err := g.write(path.Join(appPath, "scripts", "app"+c.ScriptSuffix()), appScript); err != nil {
		return nil, err
	}

	if err := g.script(Controller, "main", data, c, true); err != nil {
		return nil, err
	}

	return g.record(c.AppName, c, true)
}

// bootstrapFiles copies the main stylesheet and appends the css block.
func (g *Generator) bootstrapFiles(index []byte, c choices.Choices) ([]byte, error) {
	sass := c.CompassBootstrap
	var sources []string
	if c.Bootstrap && !sass {
		sources = append(sources, bootstrapCSS)
	}

	src, file := "styles/css/main.css", "main.css"
	if sass {
		src, file = "styles/scss/main.scss", "main.scss"
	}
	raw, err := templates.Read(src)
	if err != nil {
		return nil, err
	}
	if err := g.write(path.Join(g.cfg.AppPath, "styles", file), raw); err != nil {
		return nil, err
	}
	sources = append(sources, "styles/"+strings.Replace(file, ".scss", ".css", 1))

	return htmlwire.AppendFiles(index, htmlwire.FileSpec{
		Type:          htmlwire.TypeCSS,
		OptimizedPath: "styles/main.css",
		Sources:       sources,
		SearchPath:    []string{".tmp", g.cfg.AppPath},
	})
}

// imageFiles copies the embedded images to <appPath>/images.
func (g *Generator) imageFiles() error {
	names, err := templates.List("images")
	if err != nil {
		return err
	}
	for _, name := range names {
		raw, err := templates.Read(name)
		if err != nil {
			return err
		}
		if err := g.write(path.Join(g.cfg.AppPath, name), raw); err != nil {
			return err
		}
	}
	return nil
}

// appData builds the template data shared by the app templates.
func (g *Generator) appData(c choices.Choices) *templates.Data {
	appName := c.AppName
	data := &templates.Data{
		AppName:       appName,
		ScriptAppName: naming.ScriptAppName(appName, g.cfg.Suffix()),
		AppPath:       g.cfg.AppPath,
		TestPath:      g.cfg.TestPath,
		ScriptsBlock:  g.cfg.ScriptsBlock,
		Title:         "'Allo, 'Allo!",
		Choices:       c,
		AngularDeps:   c.AngularDeps(),
	}
	for _, f := range c.ModuleFiles() {
		data.ModulePackages = append(data.ModulePackages, path.Dir(f))
	}
	if c.TypeScript {
		data.TSAppType = naming.Classify(appName) + "App"
		if c.TypeScriptConfig {
			data.TSConfigName = naming.Camelize(appName) + "Config"
			data.AngularDeps = append(data.AngularDeps, "'"+data.TSConfigName+"'")
		}
		if c.PartialsCache {
			data.TSTemplatesModuleName = naming.Camelize(appName) + "Templates"
			data.AngularDeps = append(data.AngularDeps, "'"+data.TSTemplatesModuleName+"'")
		}
	}
	return data
}
