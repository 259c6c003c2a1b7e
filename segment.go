package webm

import "github.com/deepch/webm/ebml"

// Segment is the single top-level container holding all media data and
// metadata. Every child it exposes is repeated: a segment may carry any
// number of each, including none.
type Segment struct {
	node *ebml.Node
}

// Node returns the underlying element tree.
func (s Segment) Node() *ebml.Node { return s.node }

func (s Segment) SeekHeads() []SeekHead {
	return subViews(s.node, ebml.ElementSeekHead, newSeekHead)
}

func (s Segment) Infos() []Info {
	return subViews(s.node, ebml.ElementInfo, newInfo)
}

func (s Segment) Clusters() []Cluster {
	return subViews(s.node, ebml.ElementCluster, newCluster)
}

func (s Segment) Tracks() []Tracks {
	return subViews(s.node, ebml.ElementTracks, newTracks)
}

func (s Segment) Cues() []Cues {
	return subViews(s.node, ebml.ElementCues, newCues)
}

func (s Segment) Chapters() []Chapters {
	return subViews(s.node, ebml.ElementChapters, newChapters)
}

func (s Segment) Tags() []Tags {
	return subViews(s.node, ebml.ElementTags, newTags)
}
