/*
Package html collects the text of HTML documents into sequences.

Every text node of an HTML element (or fragment) becomes one item of a
sequence of strings, in document order. The resulting sequence may then be
edited by position, e.g. to insert or drop paragraphs, without re-parsing the
document.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/avlseq"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'avlseq'
func tracer() tracing.Trace {
	return tracing.Select("avlseq")
}

// InnerText creates a sequence for the textual content of an HTML element and
// all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
//
// Every non-blank text node becomes one item, in document order. Text within
// <script> and <style> elements is skipped.
func InnerText(n *html.Node) (*avlseq.Sequence[string], error) {
	if n == nil {
		return nil, avlseq.ErrIllegalArguments
	}
	b := avlseq.NewBuilder[string]()
	collectText(n, b)
	return b.Sequence(), nil
}

func collectText(n *html.Node, b *avlseq.Builder[string]) {
	switch n.Type {
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	case html.TextNode:
		if strings.TrimSpace(n.Data) != "" {
			b.Append(n.Data)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML creates a sequence from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*avlseq.Sequence[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		tracer().Errorf("html: %v", err)
		return nil, fmt.Errorf("parsing HTML fragment: %w", err)
	}
	b := avlseq.NewBuilder[string]()
	for _, n := range nodes {
		collectText(n, b)
	}
	tracer().Debugf("html: collected %d text nodes", b.Sequence().Len())
	return b.Sequence(), nil
}
