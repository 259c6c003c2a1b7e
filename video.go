package webm

import "github.com/deepch/webm/ebml"

// Video holds a video track's display and storage geometry.
type Video struct {
	node *ebml.Node
}

func newVideo(n *ebml.Node) Video { return Video{node: n} }

// Node returns the underlying element tree.
func (v Video) Node() *ebml.Node { return v.node }

func (v Video) InterlacingFlag() (uint64, error) {
	return uintField(v.node, ebml.ElementFlagInterlaced)
}

func (v Video) StereoMode() (uint64, bool) {
	return optUintField(v.node, ebml.ElementStereoMode)
}

func (v Video) AlphaMode() (uint64, bool) {
	return optUintField(v.node, ebml.ElementAlphaMode)
}

func (v Video) PixelWidth() (uint64, error) {
	return uintField(v.node, ebml.ElementPixelWidth)
}

func (v Video) PixelHeight() (uint64, error) {
	return uintField(v.node, ebml.ElementPixelHeight)
}

func (v Video) PixelCropBottom() (uint64, bool) {
	return optUintField(v.node, ebml.ElementPixelCropBottom)
}

func (v Video) PixelCropTop() (uint64, bool) {
	return optUintField(v.node, ebml.ElementPixelCropTop)
}

func (v Video) PixelCropLeft() (uint64, bool) {
	return optUintField(v.node, ebml.ElementPixelCropLeft)
}

func (v Video) PixelCropRight() (uint64, bool) {
	return optUintField(v.node, ebml.ElementPixelCropRight)
}

func (v Video) DisplayWidth() (uint64, bool) {
	return optUintField(v.node, ebml.ElementDisplayWidth)
}

func (v Video) DisplayHeight() (uint64, bool) {
	return optUintField(v.node, ebml.ElementDisplayHeight)
}

func (v Video) DisplayUnit() (uint64, bool) {
	return optUintField(v.node, ebml.ElementDisplayUnit)
}

func (v Video) AspectRatioType() (uint64, bool) {
	return optUintField(v.node, ebml.ElementAspectRatioType)
}

func (v Video) Projection() (Projection, bool) {
	return subView(v.node, ebml.ElementProjection, newProjection)
}

// Projection describes how a spherical video is mapped onto the frame.
type Projection struct {
	node *ebml.Node
}

func newProjection(n *ebml.Node) Projection { return Projection{node: n} }

// Node returns the underlying element tree.
func (p Projection) Node() *ebml.Node { return p.node }

func (p Projection) Type() (uint64, error) {
	return uintField(p.node, ebml.ElementProjectionType)
}

func (p Projection) Private() ([]byte, bool) {
	return optBinField(p.node, ebml.ElementProjectionPrivate)
}

func (p Projection) PoseYaw() (float64, error) {
	return floatField(p.node, ebml.ElementProjectionYaw)
}

func (p Projection) PosePitch() (float64, error) {
	return floatField(p.node, ebml.ElementProjectionPitch)
}

func (p Projection) PoseRoll() (float64, error) {
	return floatField(p.node, ebml.ElementProjectionRoll)
}
