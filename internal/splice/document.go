package splice

import (
	"bytes"
	"strings"
)

const (
	lf   = "\n"
	crlf = "\r\n"
)

// Line is one line of a document together with the terminator it had on disk.
type Line struct {
	Text string
	EOL  string // "\n", "\r\n", or "" for an unterminated last line
}

// Document is file content as an ordered sequence of lines.
type Document struct {
	Lines []Line
}

// Parse splits content into lines, keeping each line's own terminator so
// that untouched lines round-trip byte for byte.
func Parse(content []byte) *Document {
	doc := &Document{}
	s := string(content)
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			doc.Lines = append(doc.Lines, Line{Text: s})
			break
		}
		text, eol := s[:i], lf
		if strings.HasSuffix(text, "\r") {
			text, eol = text[:len(text)-1], crlf
		}
		doc.Lines = append(doc.Lines, Line{Text: text, EOL: eol})
		s = s[i+1:]
	}
	return doc
}

// EOL returns the dominant line terminator: CRLF when CRLF lines outnumber
// LF-only lines, LF otherwise.
func (d *Document) EOL() string {
	var nLF, nCRLF int
	for _, l := range d.Lines {
		switch l.EOL {
		case lf:
			nLF++
		case crlf:
			nCRLF++
		}
	}
	if nCRLF > nLF {
		return crlf
	}
	return lf
}

// Index returns the index of the first line at or after from whose text
// contains substr, or -1.
func (d *Document) Index(substr string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(d.Lines); i++ {
		if strings.Contains(d.Lines[i].Text, substr) {
			return i
		}
	}
	return -1
}

// PrecedingBlock returns the texts of the run of non-blank lines that ends
// immediately before line index, in document order.
func (d *Document) PrecedingBlock(index int) []string {
	start := index
	for start > 0 && strings.TrimSpace(d.Lines[start-1].Text) != "" {
		start--
	}
	block := make([]string, 0, index-start)
	for i := start; i < index; i++ {
		block = append(block, d.Lines[i].Text)
	}
	return block
}

// Bytes joins the document back together using each line's terminator.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	for _, l := range d.Lines {
		buf.WriteString(l.Text)
		buf.WriteString(l.EOL)
	}
	return buf.Bytes()
}

// leadingWhitespace returns the run of spaces and tabs that starts s.
func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
