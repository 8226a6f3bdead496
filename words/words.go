/*
Package words splits text into a sequence of line-break segments.

Segmentation follows the Unicode line breaking algorithm (UAX#14): every item
of the resulting sequence is a piece of text between two break opportunities,
including trailing whitespace. Editing text at the word level then becomes a
positional edit of the sequence.

From Wikipedia (first-fit line wrapping, as implemented by Wrap):

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package words

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/avlseq"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// tracer writes to trace with key 'avlseq'
func tracer() tracing.Trace {
	return tracing.Select("avlseq")
}

var setupClasses sync.Once

// FromString splits text at line break opportunities and returns the
// segments as a sequence. Concatenating all items yields text again.
func FromString(text string) *avlseq.Sequence[string] {
	b := avlseq.NewBuilder[string]()
	if text == "" {
		return b.Sequence()
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		if frag != "" {
			b.Append(frag)
		}
	}
	seq := b.Sequence()
	tracer().Debugf("words: %d segments", seq.Len())
	return seq
}

// SegmentWidth returns the display width of a single segment, measured in
// ‘en’s. If context is nil, uax11.LatinContext is used.
func SegmentWidth(segment string, context *uax11.Context) int {
	if segment == "" {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(segment), context)
}

// Width returns the total display width of all segments of seq.
func Width(seq *avlseq.Sequence[string], context *uax11.Context) int {
	w := 0
	for frag := range seq.Values() {
		w += SegmentWidth(frag, context)
	}
	return w
}

// Wrap breaks the segments of seq into lines of at most linewidth display
// positions, using the first-fit strategy. It returns the index of the first
// segment of every line. A segment wider than linewidth gets a line of its
// own.
//
// Trailing whitespace of a segment counts towards its width.
func Wrap(seq *avlseq.Sequence[string], linewidth int, context *uax11.Context) []int {
	if seq.IsEmpty() {
		return nil
	}
	starts := []int{0}
	spaceleft := linewidth
	for i, frag := range seq.All() {
		fraglen := SegmentWidth(frag, context)
		trailing := len(frag) - len(strings.TrimRight(frag, " "))
		if fraglen-trailing > spaceleft && spaceleft < linewidth {
			starts = append(starts, i)
			tracer().Debugf("words: break before segment %d", i)
			spaceleft = linewidth - fraglen
		} else {
			spaceleft -= fraglen
		}
	}
	return starts
}

// Lines joins the segments of seq into lines, as determined by Wrap.
// Trailing whitespace is removed from every line.
func Lines(seq *avlseq.Sequence[string], linewidth int, context *uax11.Context) []string {
	starts := Wrap(seq, linewidth, context)
	lines := make([]string, 0, len(starts))
	var line strings.Builder
	next := 1
	for i, frag := range seq.All() {
		if next < len(starts) && i == starts[next] {
			lines = append(lines, strings.TrimRight(line.String(), " "))
			line.Reset()
			next++
		}
		line.WriteString(frag)
	}
	return append(lines, strings.TrimRight(line.String(), " "))
}
