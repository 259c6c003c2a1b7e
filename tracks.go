package webm

import "github.com/deepch/webm/ebml"

// Tracks lists the logical streams stored in the segment.
type Tracks struct {
	node *ebml.Node
}

func newTracks(n *ebml.Node) Tracks { return Tracks{node: n} }

// Node returns the underlying element tree.
func (t Tracks) Node() *ebml.Node { return t.node }

func (t Tracks) TrackEntries() []TrackEntry {
	return subViews(t.node, ebml.ElementTrackEntry, newTrackEntry)
}

// TrackEntry describes one audio, video or subtitle stream.
type TrackEntry struct {
	node *ebml.Node
}

func newTrackEntry(n *ebml.Node) TrackEntry { return TrackEntry{node: n} }

// Node returns the underlying element tree.
func (t TrackEntry) Node() *ebml.Node { return t.node }

func (t TrackEntry) TrackNumber() (uint64, error) {
	return uintField(t.node, ebml.ElementTrackNumber)
}

func (t TrackEntry) TrackUID() (uint64, error) {
	return uintField(t.node, ebml.ElementTrackUID)
}

func (t TrackEntry) TrackType() (uint64, error) {
	return uintField(t.node, ebml.ElementTrackType)
}

// The four flag getters are true only when the stored integer is exactly 1.

func (t TrackEntry) Enabled() (bool, error) {
	return boolField(t.node, ebml.ElementFlagEnabled)
}

func (t TrackEntry) Default() (bool, error) {
	return boolField(t.node, ebml.ElementFlagDefault)
}

func (t TrackEntry) Forced() (bool, error) {
	return boolField(t.node, ebml.ElementFlagForced)
}

func (t TrackEntry) Laced() (bool, error) {
	return boolField(t.node, ebml.ElementFlagLacing)
}

// DefaultDuration is the nominal frame duration in nanoseconds.
func (t TrackEntry) DefaultDuration() (uint64, bool) {
	return optUintField(t.node, ebml.ElementDefaultDuration)
}

func (t TrackEntry) TrackTimestampScale() (float64, bool) {
	return optFloatField(t.node, ebml.ElementTrackTimestampScale)
}

func (t TrackEntry) Name() (string, bool, error) {
	return optTextField(t.node, ebml.ElementName)
}

func (t TrackEntry) Language() (string, bool, error) {
	return optTextField(t.node, ebml.ElementLanguage)
}

func (t TrackEntry) CodecID() (string, error) {
	return textField(t.node, ebml.ElementCodecID)
}

func (t TrackEntry) CodecPrivate() ([]byte, bool) {
	return optBinField(t.node, ebml.ElementCodecPrivate)
}

func (t TrackEntry) CodecName() (string, bool, error) {
	return optTextField(t.node, ebml.ElementCodecName)
}

// CodecDelay is the codec's built-in delay in nanoseconds.
func (t TrackEntry) CodecDelay() (uint64, bool) {
	return optUintField(t.node, ebml.ElementCodecDelay)
}

// SeekPreRoll is how far before a seek target playback must start, in
// nanoseconds.
func (t TrackEntry) SeekPreRoll() (uint64, error) {
	return uintField(t.node, ebml.ElementSeekPreRoll)
}

func (t TrackEntry) Video() (Video, bool) {
	return subView(t.node, ebml.ElementVideo, newVideo)
}

func (t TrackEntry) Audio() (Audio, bool) {
	return subView(t.node, ebml.ElementAudio, newAudio)
}

func (t TrackEntry) ContentEncodings() (ContentEncodings, bool) {
	return subView(t.node, ebml.ElementContentEncodings, newContentEncodings)
}
