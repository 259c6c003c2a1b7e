package webm

import (
	"time"

	"github.com/google/uuid"

	"github.com/deepch/webm/ebml"
)

// Info carries the segment's global metadata.
type Info struct {
	node *ebml.Node
}

func newInfo(n *ebml.Node) Info { return Info{node: n} }

// Node returns the underlying element tree.
func (i Info) Node() *ebml.Node { return i.node }

// TimestampScale is the duration of one timestamp tick in nanoseconds.
func (i Info) TimestampScale() (uint64, error) {
	return uintField(i.node, ebml.ElementTimestampScale)
}

// Duration is the segment length in timestamp ticks.
func (i Info) Duration() (float64, bool) {
	return optFloatField(i.node, ebml.ElementDuration)
}

// DateCreated is the production date as signed nanoseconds relative to
// 2001-01-01T00:00:00 UTC.
func (i Info) DateCreated() (int64, bool) {
	return optIntField(i.node, ebml.ElementDateUTC)
}

// DateCreatedTime is DateCreated converted to a time.Time.
func (i Info) DateCreatedTime() (time.Time, bool) {
	c := i.node.FindID(ebml.ElementDateUTC.ID)
	if c == nil {
		return time.Time{}, false
	}

	return c.Data.Time(), true
}

func (i Info) MuxingApp() (string, error) {
	return textField(i.node, ebml.ElementMuxingApp)
}

func (i Info) WritingApp() (string, error) {
	return textField(i.node, ebml.ElementWritingApp)
}

// SegmentUID is the segment's 128-bit unique identifier, when present.
func (i Info) SegmentUID() ([]byte, bool) {
	return optBinField(i.node, ebml.ElementSegmentUID)
}

// SegmentUUID renders the 16-byte segment UID in canonical UUID form.
func (i Info) SegmentUUID() (uuid.UUID, bool, error) {
	raw, ok := i.SegmentUID()
	if !ok {
		return uuid.UUID{}, false, nil
	}
	id, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.UUID{}, true, err
	}

	return id, true, nil
}
