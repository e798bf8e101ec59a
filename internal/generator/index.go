package generator

import (
	"path"

	scerrors "ngscaffold/internal/errors"
	"ngscaffold/internal/htmlwire"
	"ngscaffold/internal/splice"
)

// AddScriptToIndex references scripts/<script>.js from the scripts build
// block of <appPath>/index.html. A missing index.html or block is reported as a
// warning; generation continues without the reference.
func (g *Generator) AddScriptToIndex(appPath, script string) error {
	index := path.Join(appPath, "index.html")
	line := htmlwire.Tag(htmlwire.TypeJS, "scripts/"+script+".js")

	if g.dryRun {
		g.log.Info("update %s", index)
		return nil
	}

	res, err := splice.File(g.fs, index, g.cfg.Marker, []string{line}, splice.Options{
		Within: g.cfg.ScriptsBlock + " -->",
		Indent: true,
	})
	if err != nil {
		if scerrors.IsMissingReference(err) {
			g.log.Warn("Unable to find %s. Reference to %s.js not added.", index, script)
			return nil
		}
		return err
	}

	if res.Changed() {
		g.log.Success("update %s", index)
	} else {
		g.log.Info("identical %s", index)
	}
	return nil
}
