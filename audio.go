package webm

import "github.com/deepch/webm/ebml"

// Audio holds an audio track's sampling parameters.
type Audio struct {
	node *ebml.Node
}

func newAudio(n *ebml.Node) Audio { return Audio{node: n} }

// Node returns the underlying element tree.
func (a Audio) Node() *ebml.Node { return a.node }

func (a Audio) SamplingFrequency() (float64, error) {
	return floatField(a.node, ebml.ElementSamplingFrequency)
}

func (a Audio) OutputSamplingFrequency() (float64, bool) {
	return optFloatField(a.node, ebml.ElementOutputSamplingFrequency)
}

func (a Audio) NumChannels() (uint64, error) {
	return uintField(a.node, ebml.ElementChannels)
}

func (a Audio) BitDepth() (uint64, bool) {
	return optUintField(a.node, ebml.ElementBitDepth)
}
