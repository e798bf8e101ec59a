// Package htmlwire edits the usemin build blocks of an index.html:
//
//	<!-- build:js({.tmp,app}) scripts/scripts.js -->
//	<script src="scripts/app.js"></script>
//	<!-- endbuild -->
//
// Blocks are appended before </body> (scripts) or </head> (styles) and
// extended in place when they already exist.
package htmlwire

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	scerrors "ngscaffold/internal/errors"
)

// EndBuild closes every build block.
const EndBuild = "<!-- endbuild -->"

// Block is one build block found in a document.
type Block struct {
	Type       string   `yaml:"type"`                  // "js" or "css"
	Path       string   `yaml:"path"`                  // optimized output path
	SearchPath []string `yaml:"search_path,omitempty"` // alternate search paths, e.g. [.tmp app]
	Sources    []string `yaml:"sources"`               // src/href of the tags inside the block
	StartLine  int      `yaml:"start_line"`            // 1-based line of the build comment
	EndLine    int      `yaml:"end_line"`              // 1-based line of the endbuild comment
}

var (
	// Group 1: block type, group 2: optional search path, group 3: output path.
	buildRe = regexp.MustCompile(`<!--\s*build:(\w+)(?:\(([^)]*)\))?\s+(\S+)\s*-->`)
	endRe   = regexp.MustCompile(`<!--\s*endbuild\s*-->`)
	srcRe   = regexp.MustCompile(`(?:src|href)="([^"]+)"`)
)

// ParseBlocks scans content line by line and returns its build blocks in
// document order.
func ParseBlocks(content []byte) ([]Block, error) {
	var blocks []Block
	var cur *Block

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), len(content)+1)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if m := buildRe.FindStringSubmatch(line); m != nil {
			if cur != nil {
				return nil, scerrors.New(scerrors.EInvalidInput,
					fmt.Sprintf("line %d: build block opened inside block started at line %d", lineNumber, cur.StartLine))
			}
			cur = &Block{
				Type:       m[1],
				SearchPath: parseSearchPath(m[2]),
				Path:       m[3],
				StartLine:  lineNumber,
			}
			continue
		}

		if endRe.MatchString(line) {
			// A stray endbuild outside a block is ignored.
			if cur != nil {
				cur.EndLine = lineNumber
				blocks = append(blocks, *cur)
				cur = nil
			}
			continue
		}

		if cur != nil {
			for _, m := range srcRe.FindAllStringSubmatch(line, -1) {
				cur.Sources = append(cur.Sources, m[1])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, scerrors.Wrap(scerrors.EFileUnreadable, "scanning build blocks", err)
	}
	if cur != nil {
		return nil, scerrors.New(scerrors.EInvalidInput,
			fmt.Sprintf("build block %s started at line %d is not closed", cur.Path, cur.StartLine))
	}
	return blocks, nil
}

// parseSearchPath accepts "app", "{.tmp,app}" or "".
func parseSearchPath(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// formatSearchPath is the inverse of parseSearchPath.
func formatSearchPath(paths []string) string {
	switch len(paths) {
	case 0:
		return ""
	case 1:
		return "(" + paths[0] + ")"
	default:
		return "({" + strings.Join(paths, ",") + "})"
	}
}

// Find returns the first block with the given output path.
func Find(blocks []Block, path string) (Block, bool) {
	for _, b := range blocks {
		if b.Path == path {
			return b, true
		}
	}
	return Block{}, false
}
