// Package renderer builds markdown documents from report objects. It owns no
// wire format: the markdown is for human consumption, on a terminal or in a
// shared document.
package renderer

import (
	"bytes"
	"io"
	"strings"
)

// ConditionalBlock lets you fully write a block and decide at the end to
// print it or not. If the block function returns true, the content is printed
// to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// indent marks tree depth inside a table cell, where leading spaces would be
// collapsed by markdown.
func indent(depth int) string {
	return strings.Repeat("· ", depth)
}
