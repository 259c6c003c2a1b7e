package webm

import "github.com/deepch/webm/ebml"

// Cues is the segment's seeking index.
type Cues struct {
	node *ebml.Node
}

func newCues(n *ebml.Node) Cues { return Cues{node: n} }

// Node returns the underlying element tree.
func (c Cues) Node() *ebml.Node { return c.node }

func (c Cues) CuePoints() []CuePoint {
	return subViews(c.node, ebml.ElementCuePoint, newCuePoint)
}

// CuePoint maps a timestamp to byte positions for seeking.
type CuePoint struct {
	node *ebml.Node
}

func newCuePoint(n *ebml.Node) CuePoint { return CuePoint{node: n} }

// Node returns the underlying element tree.
func (c CuePoint) Node() *ebml.Node { return c.node }

func (c CuePoint) Time() (uint64, error) {
	return uintField(c.node, ebml.ElementCueTime)
}

func (c CuePoint) Positions() []CueTrackPositions {
	return subViews(c.node, ebml.ElementCueTrackPositions, newCueTrackPositions)
}

// CueTrackPositions locates one track's data for a cue point.
type CueTrackPositions struct {
	node *ebml.Node
}

func newCueTrackPositions(n *ebml.Node) CueTrackPositions { return CueTrackPositions{node: n} }

// Node returns the underlying element tree.
func (c CueTrackPositions) Node() *ebml.Node { return c.node }

func (c CueTrackPositions) Track() (uint64, error) {
	return uintField(c.node, ebml.ElementCueTrack)
}

func (c CueTrackPositions) ClusterPosition() (uint64, error) {
	return uintField(c.node, ebml.ElementCueClusterPosition)
}

func (c CueTrackPositions) BlockNumber() (uint64, bool) {
	return optUintField(c.node, ebml.ElementCueBlockNumber)
}
