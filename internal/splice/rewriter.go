package splice

import "bytes"

// LineRewriter copies a document into a new buffer at the granularity of
// whole lines, letting new lines be inserted between copied ones.
type LineRewriter interface {
	// CopyLinesUntil writes original lines [pos..lineIndex-1] and positions
	// the rewriter at lineIndex.
	CopyLinesUntil(lineIndex int)

	// InsertLines writes each text as a new line terminated with the
	// document's dominant line ending. The original position is unchanged.
	InsertLines(texts []string)

	// CopyRemainingLines writes every original line from the current position to EOF.
	CopyRemainingLines()

	// Bytes returns the rewritten buffer.
	Bytes() []byte
}

// documentRewriter implements LineRewriter over a parsed Document.
type documentRewriter struct {
	doc    *Document
	eol    string
	output bytes.Buffer
	lineNo int // how many original lines have been copied so far
}

func newDocumentRewriter(doc *Document) *documentRewriter {
	return &documentRewriter{doc: doc, eol: doc.EOL()}
}

func (rw *documentRewriter) CopyLinesUntil(lineIndex int) {
	if lineIndex > len(rw.doc.Lines) {
		lineIndex = len(rw.doc.Lines)
	}
	for rw.lineNo < lineIndex {
		l := rw.doc.Lines[rw.lineNo]
		rw.output.WriteString(l.Text)
		rw.output.WriteString(l.EOL)
		rw.lineNo++
	}
}

func (rw *documentRewriter) InsertLines(texts []string) {
	for _, t := range texts {
		rw.output.WriteString(t)
		rw.output.WriteString(rw.eol)
	}
}

func (rw *documentRewriter) CopyRemainingLines() {
	rw.CopyLinesUntil(len(rw.doc.Lines))
}

func (rw *documentRewriter) Bytes() []byte {
	return rw.output.Bytes()
}
