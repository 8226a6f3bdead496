package avlseq

import (
	"fmt"
	"io"
	"strings"
)

// Seq2Dot outputs the internal structure of a sequence in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with their item, height and
// subtree size; virtual children are drawn as small empty circles.
func Seq2Dot[T any](s *Sequence[T], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	virtual := 0
	err := s.Walk(func(info NodeInfo[T]) error {
		ID := info.Index + 1
		label := fmt.Sprintf("%v\\nh=%d s=%d", info.Value, info.Height, info.Size)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, escape(label), nodeDotStyles(info.Balance))
		if info.Parent >= 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", info.Parent+1, ID)
		}
		for _, present := range []bool{info.Left, info.Right} {
			if present {
				continue
			}
			virtual++
			nilid := fmt.Sprintf("v%d", virtual)
			fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", ID, nilid)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("sequence DOT: %s", err.Error())
		return err
	}
	_, err = io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(balance int) string {
	s := ",style=filled,shape=box"
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[balance+1])
	return s
}

// fill colors by balance factor -1, 0, +1
var hexcolors = [...]string{"#CCDDFF", "white", "#FFDDCC"}

func escape(label string) string {
	return strings.ReplaceAll(label, "\"", "\\\"")
}
