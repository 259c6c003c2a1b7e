package webm

import "github.com/deepch/webm/ebml"

// Cluster groups a short time range of interleaved encoded frames.
type Cluster struct {
	node *ebml.Node
}

func newCluster(n *ebml.Node) Cluster { return Cluster{node: n} }

// Node returns the underlying element tree.
func (c Cluster) Node() *ebml.Node { return c.node }

// Timestamp is the cluster's base timestamp in timestamp ticks.
func (c Cluster) Timestamp() (uint64, error) {
	return uintField(c.node, ebml.ElementTimestamp)
}

func (c Cluster) PrevSize() (uint64, bool) {
	return optUintField(c.node, ebml.ElementPrevSize)
}

// Position is the cluster's own byte position inside the segment.
func (c Cluster) Position() (uint64, bool) {
	return optUintField(c.node, ebml.ElementPosition)
}

// SimpleBlocks returns the cluster's simple block elements. Their payloads
// stay opaque here; see ParseBlock for the framing layer.
func (c Cluster) SimpleBlocks() []*ebml.Node {
	return c.node.FilterID(ebml.ElementSimpleBlock.ID)
}

func (c Cluster) BlockGroups() []BlockGroup {
	return subViews(c.node, ebml.ElementBlockGroup, newBlockGroup)
}

// BlockGroup wraps one block together with its timing and reference
// information.
type BlockGroup struct {
	node *ebml.Node
}

func newBlockGroup(n *ebml.Node) BlockGroup { return BlockGroup{node: n} }

// Node returns the underlying element tree.
func (b BlockGroup) Node() *ebml.Node { return b.node }

// Block is the group's raw block payload.
func (b BlockGroup) Block() ([]byte, bool) {
	return optBinField(b.node, ebml.ElementBlock)
}

func (b BlockGroup) BlockDuration() (uint64, bool) {
	return optUintField(b.node, ebml.ElementBlockDuration)
}

// ReferenceBlocks lists the signed timestamp offsets of the frames this
// block depends on.
func (b BlockGroup) ReferenceBlocks() []int64 {
	return intValues(b.node, ebml.ElementReferenceBlock)
}

func (b BlockGroup) DiscardPadding() (int64, bool) {
	return optIntField(b.node, ebml.ElementDiscardPadding)
}

func (b BlockGroup) Slices() (Slices, bool) {
	return subView(b.node, ebml.ElementSlices, newSlices)
}

// Slices subdivides a laced block for legacy players.
type Slices struct {
	node *ebml.Node
}

func newSlices(n *ebml.Node) Slices { return Slices{node: n} }

// Node returns the underlying element tree.
func (s Slices) Node() *ebml.Node { return s.node }

func (s Slices) TimeSlices() []TimeSlice {
	return subViews(s.node, ebml.ElementTimeSlice, newTimeSlice)
}

// TimeSlice describes one laced frame within a block.
type TimeSlice struct {
	node *ebml.Node
}

func newTimeSlice(n *ebml.Node) TimeSlice { return TimeSlice{node: n} }

// Node returns the underlying element tree.
func (t TimeSlice) Node() *ebml.Node { return t.node }

func (t TimeSlice) LaceNumber() (uint64, bool) {
	return optUintField(t.node, ebml.ElementLaceNumber)
}
