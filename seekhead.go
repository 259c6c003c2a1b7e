package webm

import "github.com/deepch/webm/ebml"

// SeekHead indexes the positions of the segment's other top-level elements.
type SeekHead struct {
	node *ebml.Node
}

func newSeekHead(n *ebml.Node) SeekHead { return SeekHead{node: n} }

// Node returns the underlying element tree.
func (s SeekHead) Node() *ebml.Node { return s.node }

func (s SeekHead) Seeks() []Seek {
	return subViews(s.node, ebml.ElementSeek, newSeek)
}

// Seek maps one element identifier to its byte position inside the segment.
type Seek struct {
	node *ebml.Node
}

func newSeek(n *ebml.Node) Seek { return Seek{node: n} }

// Node returns the underlying element tree.
func (s Seek) Node() *ebml.Node { return s.node }

// SeekID is the raw encoded identifier of the element being pointed at.
func (s Seek) SeekID() ([]byte, error) {
	return binField(s.node, ebml.ElementSeekID)
}

func (s Seek) SeekPosition() (uint64, error) {
	return uintField(s.node, ebml.ElementSeekPosition)
}
