package ebml

import (
	"fmt"
	"strconv"
	"strings"
)

// hexDumpLimit bounds the number of payload bytes shown when rendering a
// binary element.
const hexDumpLimit = 16

// Element is a single Matroska/WebM/EBML element: its identifier, declared
// size and payload. Master elements carry no payload; their data lives in
// child elements.
type Element struct {
	ElementRegister

	Size   uint64
	Offset int64
	Data   ElementData
}

// Node couples an element with its children. Children are only present for
// master elements, and their fully encoded lengths always add up to the
// parent's declared size.
type Node struct {
	Element

	Children []*Node
}

// FindID returns the first direct child with the given identifier, or nil.
func (n *Node) FindID(id uint64) *Node {
	for _, c := range n.Children {
		if c.ID == id {
			return c
		}
	}

	return nil
}

// FilterID returns all direct children with the given identifier, in
// document order.
func (n *Node) FilterID(id uint64) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.ID == id {
			out = append(out, c)
		}
	}

	return out
}

// String renders the node and its subtree for diagnostics: identifier,
// registry name, declared size and, for scalar kinds, the decoded value.
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb, 0)

	return strings.TrimSuffix(sb.String(), "\n")
}

func (n *Node) render(sb *strings.Builder, depth int) {
	name := n.Name
	if name == "" {
		name = "Unknown"
	}

	fmt.Fprintf(sb, "%s0x%x %s (size %d)", strings.Repeat("  ", depth), n.ID, name, n.Size)
	if n.Type != ElementTypeMaster {
		sb.WriteString(": ")
		sb.WriteString(n.Data.describe(n.Type))
	}
	sb.WriteByte('\n')

	for _, c := range n.Children {
		c.render(sb, depth+1)
	}
}

func (d ElementData) describe(kind uint8) string {
	switch kind {
	case ElementTypeUint:
		return strconv.FormatUint(d.Uint(), 10)
	case ElementTypeInt, ElementTypeDate:
		return strconv.FormatInt(d.Int(), 10)
	case ElementTypeFloat:
		return strconv.FormatFloat(d.Float(), 'g', -1, 64)
	case ElementTypeString, ElementTypeUnicode:
		s, err := d.Text()
		if err != nil {
			break
		}
		return s
	}

	if len(d) > hexDumpLimit {
		return fmt.Sprintf("%x... (%d bytes)", []byte(d[:hexDumpLimit]), len(d))
	}

	return fmt.Sprintf("%x", []byte(d))
}
