package webm

import "github.com/deepch/webm/ebml"

// Tags holds descriptive metadata about the segment's content.
type Tags struct {
	node *ebml.Node
}

func newTags(n *ebml.Node) Tags { return Tags{node: n} }

// Node returns the underlying element tree.
func (t Tags) Node() *ebml.Node { return t.node }

func (t Tags) Tags() []Tag {
	return subViews(t.node, ebml.ElementTag, newTag)
}

// Tag binds a set of simple tags to a target.
type Tag struct {
	node *ebml.Node
}

func newTag(n *ebml.Node) Tag { return Tag{node: n} }

// Node returns the underlying element tree.
func (t Tag) Node() *ebml.Node { return t.node }

func (t Tag) Targets() (Targets, error) {
	return mustSubView(t.node, ebml.ElementTargets, newTargets)
}

func (t Tag) SimpleTags() []SimpleTag {
	return subViews(t.node, ebml.ElementSimpleTag, newSimpleTag)
}

// Targets says what a tag applies to.
type Targets struct {
	node *ebml.Node
}

func newTargets(n *ebml.Node) Targets { return Targets{node: n} }

// Node returns the underlying element tree.
func (t Targets) Node() *ebml.Node { return t.node }

func (t Targets) TypeValue() (uint64, bool) {
	return optUintField(t.node, ebml.ElementTargetTypeValue)
}

func (t Targets) Type() (string, bool, error) {
	return optTextField(t.node, ebml.ElementTargetType)
}

func (t Targets) TrackUIDs() []uint64 {
	return uintValues(t.node, ebml.ElementTagTrackUID)
}

// SimpleTag is one name/value metadata pair.
type SimpleTag struct {
	node *ebml.Node
}

func newSimpleTag(n *ebml.Node) SimpleTag { return SimpleTag{node: n} }

// Node returns the underlying element tree.
func (t SimpleTag) Node() *ebml.Node { return t.node }

func (t SimpleTag) Name() (string, error) {
	return textField(t.node, ebml.ElementTagName)
}

func (t SimpleTag) Language() (string, error) {
	return textField(t.node, ebml.ElementTagLanguage)
}

func (t SimpleTag) Default() (uint64, error) {
	return uintField(t.node, ebml.ElementTagDefault)
}

// Text is the tag's string value, when it has one.
func (t SimpleTag) Text() (string, bool, error) {
	return optTextField(t.node, ebml.ElementTagString)
}

// Binary is the tag's binary value, when it has one.
func (t SimpleTag) Binary() ([]byte, bool) {
	return optBinField(t.node, ebml.ElementTagBinary)
}
