package display

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/avlseq"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls console output of trees.
type Config struct {
	LabelWidth int            // display width of item labels, in ‘en’s
	Indent     int            // indentation per tree level
	Colors     bool           // color nodes by balance factor
	Context    *uax11.Context // context for measuring label widths
}

// DefaultLabelWidth is used for configurations without a label width.
const DefaultLabelWidth = 16

var setupClasses sync.Once

// Print outputs the tree of s to w, one node per line.
//
// If parameter config is nil, a configuration is created from the current
// terminal's properties (see ConfigFromTerminal).
func Print[T any](s *avlseq.Sequence[T], w io.Writer, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	if s.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	nodes := make([]avlseq.NodeInfo[T], 0, s.Len())
	s.Walk(func(info avlseq.NodeInfo[T]) error {
		nodes = append(nodes, info)
		return nil
	})
	// right subtrees go above their parents
	slices.SortFunc(nodes, func(a, b avlseq.NodeInfo[T]) int {
		return b.Index - a.Index
	})
	palette := makePalette(config.Colors)
	indent := config.Indent
	if indent <= 0 {
		indent = 4
	}
	for _, info := range nodes {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", info.Depth*indent))
		switch {
		case info.Parent < 0:
			line.WriteString("── ")
		case info.Parent < info.Index:
			line.WriteString("┌─ ")
		default:
			line.WriteString("└─ ")
		}
		line.WriteString(Label(fmt.Sprint(info.Value), config.LabelWidth, config.Context))
		if _, err := io.WriteString(w, line.String()); err != nil {
			tracer().Errorf("display: %v", err)
			return err
		}
		annotation := fmt.Sprintf(" [h=%d bf=%+d]", info.Height, info.Balance)
		if _, err := paletteColor(palette, info.Balance).Fprintln(w, annotation); err != nil {
			tracer().Errorf("display: %v", err)
			return err
		}
	}
	return nil
}

func makePalette(enable bool) map[int]*color.Color {
	palette := map[int]*color.Color{
		0:  color.New(color.FgGreen),
		1:  color.New(color.FgYellow),
		-1: color.New(color.FgCyan),
	}
	violation := color.New(color.FgRed, color.Bold)
	palette[2], palette[-2] = violation, violation
	for _, c := range palette {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return palette
}

func paletteColor(palette map[int]*color.Color, balance int) *color.Color {
	if balance > 2 {
		balance = 2
	} else if balance < -2 {
		balance = -2
	}
	return palette[balance]
}

// Label fits text into a field of exactly width display positions. Line
// breaks are replaced by spaces, text which is too wide is truncated and
// marked with an ellipsis, and narrower text is padded with spaces.
//
// If context is nil, uax11.LatinContext is used. A width ≤ 0 selects
// DefaultLabelWidth.
func Label(text string, width int, context *uax11.Context) string {
	if width <= 0 {
		width = DefaultLabelWidth
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	text = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, text)
	w := displayWidth(text, context)
	if w > width {
		runes := []rune(text)
		for len(runes) > 0 && w+1 > width {
			runes = runes[:len(runes)-1]
			w = displayWidth(string(runes), context)
		}
		text = string(runes) + "…"
		w++
	}
	if w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}

func displayWidth(text string, context *uax11.Context) int {
	if text == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(text), context)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a display Config.
// It checks wether stdout is a terminal, and if so it enables colors and
// derives the label width from the terminal's width.
func ConfigFromTerminal() *Config {
	config := &Config{
		LabelWidth: DefaultLabelWidth,
		Indent:     4,
		Context:    uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		if w, _, err := term.GetSize(fd); err == nil {
			config.LabelWidth = min(max(w/4, 8), 32)
		}
	}
	tracer().P("display", "console").Infof("setting label width to %d en", config.LabelWidth)
	return config
}
