package webm

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/deepch/webm/ebml"
)

// Content compression algorithms from the Matroska schema.
const (
	CompAlgoZlib            = 0
	CompAlgoBzlib           = 1
	CompAlgoLzo1x           = 2
	CompAlgoHeaderStripping = 3
)

// ContentEncodings lists the transformations applied to a track's data.
type ContentEncodings struct {
	node *ebml.Node
}

func newContentEncodings(n *ebml.Node) ContentEncodings { return ContentEncodings{node: n} }

// Node returns the underlying element tree.
func (c ContentEncodings) Node() *ebml.Node { return c.node }

func (c ContentEncodings) Encodings() []ContentEncoding {
	return subViews(c.node, ebml.ElementContentEncoding, newContentEncoding)
}

// ContentEncoding is one compression or encryption step.
type ContentEncoding struct {
	node *ebml.Node
}

func newContentEncoding(n *ebml.Node) ContentEncoding { return ContentEncoding{node: n} }

// Node returns the underlying element tree.
func (c ContentEncoding) Node() *ebml.Node { return c.node }

func (c ContentEncoding) Order() (uint64, error) {
	return uintField(c.node, ebml.ElementContentEncodingOrder)
}

func (c ContentEncoding) Scope() (uint64, error) {
	return uintField(c.node, ebml.ElementContentEncodingScope)
}

func (c ContentEncoding) Type() (uint64, error) {
	return uintField(c.node, ebml.ElementContentEncodingType)
}

func (c ContentEncoding) Encryption() (ContentEncryption, error) {
	return mustSubView(c.node, ebml.ElementContentEncryption, newContentEncryption)
}

func (c ContentEncoding) Compression() (ContentCompression, bool) {
	return subView(c.node, ebml.ElementContentCompression, newContentCompression)
}

// Decompress reverses this encoding's compression step on data. Data passes
// through unchanged when the encoding declares no compression. Only zlib
// and header stripping are supported; Matroska's bzlib and lzo1x algorithms
// are long deprecated and fail with an explicit error.
func (c ContentEncoding) Decompress(data []byte) ([]byte, error) {
	comp, ok := c.Compression()
	if !ok {
		return append([]byte(nil), data...), nil
	}

	algo, err := comp.Algo()
	if err != nil {
		return nil, err
	}

	switch algo {
	case CompAlgoZlib:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("webm: zlib content: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("webm: zlib content: %w", err)
		}
		return out, nil
	case CompAlgoHeaderStripping:
		head, _ := comp.Settings()
		out := make([]byte, 0, len(head)+len(data))
		out = append(out, head...)
		return append(out, data...), nil
	default:
		return nil, fmt.Errorf("webm: unsupported content compression algorithm %d", algo)
	}
}

// ContentCompression declares how a track's data was compressed.
type ContentCompression struct {
	node *ebml.Node
}

func newContentCompression(n *ebml.Node) ContentCompression { return ContentCompression{node: n} }

// Node returns the underlying element tree.
func (c ContentCompression) Node() *ebml.Node { return c.node }

func (c ContentCompression) Algo() (uint64, error) {
	return uintField(c.node, ebml.ElementContentCompAlgo)
}

// Settings holds algorithm-specific data; for header stripping it is the
// byte prefix removed from every frame.
func (c ContentCompression) Settings() ([]byte, bool) {
	return optBinField(c.node, ebml.ElementContentCompSettings)
}

// ContentEncryption declares how a track's data was encrypted.
type ContentEncryption struct {
	node *ebml.Node
}

func newContentEncryption(n *ebml.Node) ContentEncryption { return ContentEncryption{node: n} }

// Node returns the underlying element tree.
func (c ContentEncryption) Node() *ebml.Node { return c.node }

func (c ContentEncryption) AlgorithmType() (uint64, error) {
	return uintField(c.node, ebml.ElementContentEncAlgo)
}

func (c ContentEncryption) KeyID() ([]byte, bool) {
	return optBinField(c.node, ebml.ElementContentEncKeyID)
}

func (c ContentEncryption) AESSettings() (ContentAESSettings, bool) {
	return subView(c.node, ebml.ElementContentEncAESSettings, newContentAESSettings)
}

// ContentAESSettings carries the AES cipher parameters.
type ContentAESSettings struct {
	node *ebml.Node
}

func newContentAESSettings(n *ebml.Node) ContentAESSettings { return ContentAESSettings{node: n} }

// Node returns the underlying element tree.
func (c ContentAESSettings) Node() *ebml.Node { return c.node }

func (c ContentAESSettings) CipherMode() (uint64, error) {
	return uintField(c.node, ebml.ElementAESSettingsCipherMode)
}
