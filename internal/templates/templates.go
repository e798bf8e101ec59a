// Package templates holds the embedded project templates and renders them
// with text/template. Actions use {% %} delimiters so that the angular
// {{ }} bindings and Grunt's <%= %> tags in the templates pass through
// untouched.
package templates

import (
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	scerrors "ngscaffold/internal/errors"
	"ngscaffold/pkg/choices"
)

//go:embed all:files
var files embed.FS

const (
	leftDelim  = "{%"
	rightDelim = "%}"
)

// Data is the value templates are executed against. App templates use the
// app fields; script templates additionally use the name fields.
type Data struct {
	AppName       string
	ScriptAppName string
	AppPath       string
	TestPath      string
	ScriptsBlock  string // output path of the build block holding app scripts
	Title         string
	Choices       choices.Choices

	// AngularDeps are the quoted module names the app module depends on.
	AngularDeps []string

	// ModulePackages are the bower package names of the selected modules.
	ModulePackages []string

	Name           string
	CameledName    string
	ClassedName    string
	DasherizedName string

	TSAppType             string
	TSConfigName          string
	TSTemplatesModuleName string
	TSAngularName         string
	TSClassName           string
}

var funcs = template.FuncMap{
	"deps": formatDeps,
}

// formatDeps lays out dependencies one per line inside the brackets.
func formatDeps(deps []string) string {
	if len(deps) == 0 {
		return ""
	}
	return "\n  " + strings.Join(deps, ",\n  ") + "\n"
}

// Source returns the template root for a script language. TypeScript has no
// separate minification safe variant.
func Source(language string, minsafe bool) string {
	root := "javascript"
	switch language {
	case choices.LangTypeScript:
		return "typescript"
	case choices.LangCoffee:
		root = "coffeescript"
	}
	if minsafe {
		root += "-min"
	}
	return root
}

// Lookup resolves name under root. A "-min" root falls back to its base root
// for templates it does not override, e.g. specs.
func Lookup(root, name string) (string, error) {
	candidates := []string{path.Join(root, name)}
	if base, ok := strings.CutSuffix(root, "-min"); ok {
		candidates = append(candidates, path.Join(base, name))
	}
	for _, c := range candidates {
		if Exists(c) {
			return c, nil
		}
	}
	return "", scerrors.NewPath(scerrors.ETemplateNotFound, "template not found", path.Join(root, name))
}

// Exists reports whether a template file named name is embedded.
func Exists(name string) bool {
	info, err := fs.Stat(files, path.Join("files", name))
	return err == nil && !info.IsDir()
}

// Read returns the raw bytes of an embedded file.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(path.Join("files", name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, scerrors.NewPath(scerrors.ETemplateNotFound, "template not found", name)
		}
		return nil, scerrors.WrapPath(scerrors.ETemplateRender, "reading template", name, err)
	}
	return data, nil
}

// Render executes the template name against data.
func Render(name string, data *Data) ([]byte, error) {
	raw, err := Read(name)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(path.Base(name)).
		Delims(leftDelim, rightDelim).
		Funcs(funcs).
		Option("missingkey=error").
		Parse(string(raw))
	if err != nil {
		return nil, scerrors.WrapPath(scerrors.ETemplateRender, "parsing template", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, scerrors.WrapPath(scerrors.ETemplateRender, "executing template", name, err)
	}
	return buf.Bytes(), nil
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Markdown renders the markdown template name and converts it to HTML. Raw
// HTML in the source is kept so views can carry angular attributes.
func Markdown(name string, data *Data) ([]byte, error) {
	src, err := Render(name, data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return nil, scerrors.WrapPath(scerrors.ETemplateRender, "converting markdown", name, err)
	}
	return buf.Bytes(), nil
}

// List returns the embedded template names below dir, sorted.
func List(dir string) ([]string, error) {
	var names []string
	err := fs.WalkDir(files, path.Join("files", dir), func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, strings.TrimPrefix(p, "files/"))
		}
		return nil
	})
	if err != nil {
		return nil, scerrors.WrapPath(scerrors.ETemplateNotFound, "listing templates", dir, err)
	}
	return names, nil
}
