package output

import (
	"fmt"
	"io"
	"strings"
)

// indentWidth is the number of spaces per nesting level, matching the
// plain two-space indentation the legacy tool's text dumps use.
const indentWidth = 2

// TextSink renders indented "key: value" lines with a leading header per
// entity. It writes directly to w as each call arrives, so a long-running
// monitor loop produces output as events happen rather than buffering.
type TextSink struct {
	w      io.Writer
	indent int
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) pad() string {
	return strings.Repeat(" ", s.indent*indentWidth)
}

// OpenObject prints header as a leading line when non-empty, then
// indents everything nested under it. An empty header (an anonymous
// array element) indents without printing a line of its own.
func (s *TextSink) OpenObject(header string) {
	if header != "" {
		fmt.Fprintf(s.w, "%s%s:\n", s.pad(), header)
	}
	s.indent++
}

func (s *TextSink) CloseObject() {
	s.indent--
}

func (s *TextSink) OpenArray(name string) {
	if name != "" {
		fmt.Fprintf(s.w, "%s%s:\n", s.pad(), name)
	}
	s.indent++
}

func (s *TextSink) CloseArray() {
	s.indent--
}

func (s *TextSink) FieldStr(name, value string) {
	fmt.Fprintf(s.w, "%s%s: %s\n", s.pad(), name, value)
}

func (s *TextSink) FieldU(name string, value uint64) {
	fmt.Fprintf(s.w, "%s%s: %d\n", s.pad(), name, value)
}

func (s *TextSink) FieldS(name string, value int64) {
	fmt.Fprintf(s.w, "%s%s: %d\n", s.pad(), name, value)
}

// FieldHex renders value hex-prefixed, the form clock ids use in text
// output.
func (s *TextSink) FieldHex(name string, value uint64) {
	fmt.Fprintf(s.w, "%s%s: 0x%x\n", s.pad(), name, value)
}
