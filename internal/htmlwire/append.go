package htmlwire

import (
	"fmt"
	"slices"
	"strings"

	scerrors "ngscaffold/internal/errors"
	"ngscaffold/internal/splice"
)

// Block types.
const (
	TypeJS  = "js"
	TypeCSS = "css"
)

const indent = "    "

// FileSpec describes a build block to add.
type FileSpec struct {
	Type          string
	OptimizedPath string
	Sources       []string
	SearchPath    []string
}

// AppendScripts adds a js block for sources before </body>.
func AppendScripts(html []byte, optimizedPath string, sources []string) ([]byte, error) {
	return AppendFiles(html, FileSpec{Type: TypeJS, OptimizedPath: optimizedPath, Sources: sources})
}

// AppendFiles adds the block described by spec. When a block with the same
// output path exists, only its missing sources are added to it, so appending
// the same spec twice leaves html unchanged.
func AppendFiles(html []byte, spec FileSpec) ([]byte, error) {
	anchor, err := anchorFor(spec.Type)
	if err != nil {
		return nil, err
	}
	if spec.OptimizedPath == "" {
		return nil, scerrors.New(scerrors.EInvalidInput, "optimized path must not be empty")
	}

	blocks, err := ParseBlocks(html)
	if err != nil {
		return nil, err
	}

	tags := make([]string, len(spec.Sources))
	for i, src := range spec.Sources {
		tags[i] = indent + Tag(spec.Type, src)
	}

	if _, ok := Find(blocks, spec.OptimizedPath); ok {
		out, _, err := splice.InsertBefore(html, EndBuild, tags, splice.Options{Within: buildLine(spec)})
		if err != nil && scerrors.GetCode(err) == scerrors.EMarkerNotFound {
			// The block exists with a different search path; fall back to
			// matching on the output path alone.
			out, _, err = splice.InsertBefore(html, EndBuild, tags, splice.Options{Within: " " + spec.OptimizedPath})
		}
		return out, err
	}

	lines := make([]string, 0, len(tags)+2)
	lines = append(lines, indent+buildLine(spec))
	lines = append(lines, tags...)
	lines = append(lines, indent+EndBuild)

	out, _, err := splice.InsertBefore(separate(html, anchor), anchor, lines, splice.Options{})
	return out, err
}

// Tag returns the html tag that loads src.
func Tag(blockType, src string) string {
	if blockType == TypeCSS {
		return fmt.Sprintf(`<link rel="stylesheet" href="%s">`, src)
	}
	return fmt.Sprintf(`<script src="%s"></script>`, src)
}

func buildLine(spec FileSpec) string {
	return fmt.Sprintf("<!-- build:%s%s %s -->", spec.Type, formatSearchPath(spec.SearchPath), spec.OptimizedPath)
}

func anchorFor(blockType string) (string, error) {
	switch blockType {
	case TypeJS:
		return "</body>", nil
	case TypeCSS:
		return "</head>", nil
	default:
		return "", scerrors.New(scerrors.EInvalidInput, fmt.Sprintf("unknown block type %q", blockType))
	}
}

// separate puts a blank line above the anchor so that a new block is not
// read as a continuation of the block before it.
func separate(html []byte, anchor string) []byte {
	doc := splice.Parse(html)
	i := doc.Index(anchor, 0)
	if i <= 0 || strings.TrimSpace(doc.Lines[i-1].Text) == "" {
		return html
	}
	blank := splice.Line{EOL: doc.EOL()}
	doc.Lines = slices.Insert(doc.Lines, i, blank)
	return doc.Bytes()
}
