package webm

import "github.com/deepch/webm/ebml"

// EBMLHeader is the document's first top-level element. All seven of its
// schema fields are mandatory.
type EBMLHeader struct {
	node *ebml.Node
}

// Node returns the underlying element tree.
func (h EBMLHeader) Node() *ebml.Node { return h.node }

func (h EBMLHeader) Version() (uint64, error) {
	return uintField(h.node, ebml.ElementEBMLVersion)
}

func (h EBMLHeader) ReadVersion() (uint64, error) {
	return uintField(h.node, ebml.ElementEBMLReadVersion)
}

func (h EBMLHeader) MaxIDLength() (uint64, error) {
	return uintField(h.node, ebml.ElementEBMLMaxIDLength)
}

func (h EBMLHeader) MaxSizeLength() (uint64, error) {
	return uintField(h.node, ebml.ElementEBMLMaxSizeLength)
}

func (h EBMLHeader) DocType() (string, error) {
	return textField(h.node, ebml.ElementDocType)
}

func (h EBMLHeader) DocTypeVersion() (uint64, error) {
	return uintField(h.node, ebml.ElementDocTypeVersion)
}

func (h EBMLHeader) DocTypeReadVersion() (uint64, error) {
	return uintField(h.node, ebml.ElementDocTypeReadVersion)
}
