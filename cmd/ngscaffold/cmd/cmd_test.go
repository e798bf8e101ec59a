package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngscaffold/internal/config"
	scerrors "ngscaffold/internal/errors"
	"ngscaffold/internal/gitutil"
)

type result struct {
	out    string
	errOut string
	err    error
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Run(append(args, "--no-color"), strings.NewReader(""), &out, &errOut)
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err, name)
	return string(data)
}

func newApp(t *testing.T, extra ...string) string {
	t.Helper()
	dir := t.TempDir()
	r := run(t, append([]string{"app", "demo", "--defaults", "--cwd", dir}, extra...)...)
	require.NoError(t, r.err, r.errOut)
	return dir
}

func TestAppDefaults(t *testing.T) {
	dir := t.TempDir()
	r := run(t, "app", "demo", "--defaults", "--cwd", dir)
	require.NoError(t, r.err, r.errOut)

	for _, f := range []string{
		"app/index.html", "bower.json", "package.json", "Gruntfile.js",
		"app/views/main.html", "app/images/yeoman.png", "app/styles/main.scss", "app/scripts/app.js",
		"app/scripts/controllers/main.js", "test/spec/controllers/main.js",
		".ngscaffold.json",
	} {
		assert.FileExists(t, filepath.Join(dir, f))
	}
	assert.Contains(t, readFile(t, dir, "app/scripts/app.js"), "angular.module('demoApp', [")
	assert.Contains(t, r.errOut, "[SUCCESS] create app/index.html")
	assert.Contains(t, r.errOut, "[SUCCESS] app demo ready")
	assert.Contains(t, r.errOut, "bower install && npm install")
}

func TestAppFlags(t *testing.T) {
	dir := newApp(t, "--coffee", "--minsafe", "--app-suffix", "")

	app := readFile(t, dir, "app/scripts/app.coffee")
	assert.Contains(t, app, "angular.module('demo', [")
	assert.Contains(t, readFile(t, dir, "app/scripts/controllers/main.coffee"), "['$scope', ($scope) ->")
}

func TestAppDryRun(t *testing.T) {
	dir := newApp(t, "--dry-run")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppRerunSkipsChangedFiles(t *testing.T) {
	dir := newApp(t)
	index := filepath.Join(dir, "app/index.html")
	require.NoError(t, os.WriteFile(index, []byte("edited\n"), 0644))

	r := run(t, "app", "demo", "--defaults", "--cwd", dir)
	require.NoError(t, r.err)
	assert.Contains(t, r.errOut, "[WARN] skip app/index.html (exists, use --force to overwrite)")
	assert.Contains(t, r.errOut, "[INFO] identical bower.json")
	assert.Equal(t, "edited\n", readFile(t, dir, "app/index.html"))

	r = run(t, "app", "demo", "--defaults", "--force", "--cwd", dir)
	require.NoError(t, r.err)
	assert.Contains(t, r.errOut, "[SUCCESS] force app/index.html")
}

type gitRecorder struct {
	calls []string
}

func (g *gitRecorder) CombinedOutput(_ context.Context, _ string, name string, arg ...string) ([]byte, error) {
	g.calls = append(g.calls, name+" "+strings.Join(arg, " "))
	if arg[0] == "rev-parse" {
		return []byte("fatal: not a git repository (or any of the parent directories): .git"), errors.New("exit status 128")
	}
	return nil, nil
}

func TestAppGit(t *testing.T) {
	rec := &gitRecorder{}
	gitutil.SetRunner(rec)
	t.Cleanup(func() { gitutil.SetRunner(gitutil.DefaultRunner{}) })

	dir := t.TempDir()
	r := run(t, "app", "demo", "--defaults", "--git", "--cwd", dir)
	require.NoError(t, r.err)
	assert.Equal(t, []string{"git rev-parse --is-inside-work-tree", "git init --quiet"}, rec.calls)
	assert.Contains(t, r.errOut, "[SUCCESS] initialized git repository")
}

func TestScriptCommands(t *testing.T) {
	dir := newApp(t)

	tests := []struct {
		args []string
		file string
	}{
		{[]string{"controller", "aboutCtrl"}, "app/scripts/controllers/about.js"},
		{[]string{"service", "user"}, "app/scripts/services/user.js"},
		{[]string{"directive", "myWidget"}, "app/scripts/directives/myWidget.js"},
		{[]string{"filter", "titleCase"}, "app/scripts/filters/titleCase.js"},
	}
	for _, tt := range tests {
		r := run(t, append(tt.args, "--cwd", dir)...)
		require.NoError(t, r.err, r.errOut)
		assert.FileExists(t, filepath.Join(dir, tt.file))
		assert.Contains(t, readFile(t, dir, "app/index.html"),
			`<script src="`+strings.TrimPrefix(tt.file, "app/")+`"></script>`)
	}

	r := run(t, "controller", "about", "--cwd", dir)
	require.NoError(t, r.err)
	assert.Contains(t, r.errOut, "[INFO] identical app/index.html")
}

func TestScriptFollowsProjectLanguage(t *testing.T) {
	dir := newApp(t, "--coffee")

	r := run(t, "service", "user", "--cwd", dir)
	require.NoError(t, r.err, r.errOut)
	assert.FileExists(t, filepath.Join(dir, "app/scripts/services/user.coffee"))

	r = run(t, "filter", "plain", "--coffee=false", "--cwd", dir)
	require.NoError(t, r.err, r.errOut)
	assert.FileExists(t, filepath.Join(dir, "app/scripts/filters/plain.js"))
}

func TestScriptSkipAddAndMissingIndex(t *testing.T) {
	dir := t.TempDir()

	r := run(t, "controller", "about", "--cwd", dir)
	require.NoError(t, r.err)
	assert.Contains(t, r.errOut, "[WARN] Unable to find app/index.html. Reference to controllers/about.js not added.")

	r = run(t, "controller", "other", "--skip-add", "--cwd", dir)
	require.NoError(t, r.err)
	assert.NotContains(t, r.errOut, "Unable to find")
	assert.FileExists(t, filepath.Join(dir, "app/scripts/controllers/other.js"))
}

func TestBlocks(t *testing.T) {
	dir := newApp(t)
	require.NoError(t, run(t, "controller", "about", "--cwd", dir).err)

	r := run(t, "blocks", "--cwd", dir)
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "js scripts/scripts.js (.tmp,app) lines ")
	assert.Contains(t, r.out, "\n  scripts/controllers/about.js\n")
	assert.Contains(t, r.out, "css styles/main.css (.tmp,app) lines ")

	r = run(t, "blocks", "app/index.html", "--yaml", "--cwd", dir)
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "path: scripts/scripts.js")
	assert.Contains(t, r.out, "- scripts/controllers/about.js")
}

func TestSplice(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(file, []byte("a\n  b\n  END\n"), 0644))

	args := []string{"splice", "list.txt", "--cwd", dir, "--marker", "END", "--indent", "--line", "b", "--line", "c, d"}

	r := run(t, append(args, "--dry-run")...)
	require.NoError(t, r.err)
	assert.Equal(t, "+ c, d\n", r.out)
	assert.Equal(t, "a\n  b\n  END\n", readFile(t, dir, "list.txt"))

	r = run(t, args...)
	require.NoError(t, r.err)
	assert.Equal(t, "+ c, d\n", r.out)
	assert.Equal(t, "a\n  b\n  c, d\n  END\n", readFile(t, dir, "list.txt"))

	r = run(t, args...)
	require.NoError(t, r.err)
	assert.Empty(t, r.out)
	assert.Contains(t, r.errOut, "[INFO] identical list.txt")
}

func TestSpliceErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x\n"), 0644))

	tests := []struct {
		name string
		args []string
		code scerrors.Code
	}{
		{"missing file", []string{"splice", "nope.txt", "--marker", "x"}, scerrors.EFileNotFound},
		{"missing marker", []string{"splice", "f.txt", "--marker", "y", "--line", "z"}, scerrors.EMarkerNotFound},
		{"multiline line", []string{"splice", "f.txt", "--marker", "x", "--line", "a\nb"}, scerrors.EInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, append(tt.args, "--cwd", dir)...)
			require.Error(t, r.err)
			assert.Equal(t, tt.code, scerrors.GetCode(r.err))
			assert.Equal(t, 1, scerrors.ExitCode(r.err))
		})
	}
	assert.Equal(t, "x\n", readFile(t, dir, "f.txt"))
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"bogus"}},
		{"unknown flag", []string{"app", "--bogus"}},
		{"missing name", []string{"controller"}},
		{"too many names", []string{"service", "a", "b"}},
		{"missing marker flag", []string{"splice", "index.html"}},
		{"empty name", []string{"filter", " "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, tt.args...)
			require.Error(t, r.err)
			assert.Equal(t, scerrors.EUsage, scerrors.GetCode(r.err))
			assert.Equal(t, 2, scerrors.ExitCode(r.err))
		})
	}
}

func TestInvalidRoot(t *testing.T) {
	r := run(t, "blocks", "--cwd", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, r.err)
	assert.Equal(t, scerrors.EInvalidInput, scerrors.GetCode(r.err))
}

func TestInitAndConfigAnswers(t *testing.T) {
	dir := t.TempDir()

	r := run(t, "init", "--answers", "--cwd", dir)
	require.NoError(t, r.err)
	cfg, err := config.Load(filepath.Join(dir, config.DefaultFile))
	require.NoError(t, err)
	require.NotNil(t, cfg.Answers)
	assert.True(t, cfg.Answers.Bootstrap)
	assert.Equal(t, "App", cfg.Suffix())

	r = run(t, "init", "--cwd", dir)
	require.Error(t, r.err)
	assert.Equal(t, scerrors.EInvalidInput, scerrors.GetCode(r.err))
	require.NoError(t, run(t, "init", "--force", "--answers", "--cwd", dir).err)

	// The answers block replaces the prompts.
	r = run(t, "app", "demo", "--typescript", "--cwd", dir)
	require.NoError(t, r.err, r.errOut)
	assert.FileExists(t, filepath.Join(dir, "app/scripts/app.ts"))
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte("app_path: /abs\n"), 0644))

	r := run(t, "app", "demo", "--defaults", "--cwd", dir)
	require.Error(t, r.err)
	assert.Equal(t, scerrors.EInvalidConfig, scerrors.GetCode(r.err))
}

func TestHistory(t *testing.T) {
	dir := newApp(t)
	require.NoError(t, run(t, "service", "user", "--cwd", dir).err)

	r := run(t, "history", "--files", "--cwd", dir)
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.out, "demo "), r.out)
	assert.Contains(t, r.out, "javascript bootstrap(scss) modules=")
	assert.Contains(t, r.out, "\n  app/scripts/services/user.js\n")

	r = run(t, "history", "--file", "app/nope.js", "--cwd", dir)
	require.NoError(t, r.err)
	assert.Empty(t, r.out)

	r = run(t, "history", "--forget", "demo", "--cwd", dir)
	require.NoError(t, r.err)
	assert.Contains(t, r.errOut, "[SUCCESS] forgot demo")
	assert.Empty(t, run(t, "history", "--cwd", dir).out)

	r = run(t, "history", "--forget", "demo", "--cwd", dir)
	assert.Equal(t, scerrors.EInvalidInput, scerrors.GetCode(r.err))
}

func TestVersion(t *testing.T) {
	r := run(t, "--version")
	require.NoError(t, r.err)
	assert.Equal(t, "ngscaffold version dev\n", r.out)
}

func TestTemplates(t *testing.T) {
	r := run(t, "templates", "coffeescript-min")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "coffeescript-min/controller.coffee\n")
	assert.NotContains(t, r.out, "javascript/")

	r = run(t, "templates", "--show", "coffeescript-min/controller.coffee")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "['$scope', ($scope) ->")

	r = run(t, "templates", "--show", "nope.js")
	assert.Equal(t, scerrors.ETemplateNotFound, scerrors.GetCode(r.err))
}
