// Package webm exposes the structure and metadata of Matroska/WebM files:
// it parses a seekable byte stream into an element tree and wraps the tree
// in typed views matching the container schema (tracks, clusters, cues,
// chapters, tags). Audio and video payloads are never decoded.
package webm

import (
	"bytes"
	"io"

	"github.com/deepch/webm/ebml"
)

// signature is the EBML magic number every WebM/Matroska file starts with;
// it is the encoded identifier of the EBML header element.
var signature = []byte{0x1a, 0x45, 0xdf, 0xa3}

// File is a fully parsed document: the EBML header and the single segment
// holding all media metadata. Files are immutable once parsed and safe for
// concurrent readers.
type File struct {
	Header  EBMLHeader
	Segment Segment
}

type config struct {
	maxDepth int
}

// Option configures parsing.
type Option func(*config)

// WithMaxDepth caps element nesting; parsing deeper input fails with
// ebml.ErrMaxDepth instead of recursing without bound.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// ParseFile reads one EBML header and one segment from r, which must be
// positioned at the start of the stream. The stream's first four bytes are
// checked against the EBML magic number before any tree construction; a
// second top-level segment, if present, is ignored.
func ParseFile(r io.ReadSeeker, opts ...Option) (*File, error) {
	cfg := config{maxDepth: ebml.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, &ebml.ParseError{Stage: "signature", Err: ebml.ErrBadSignature}
	}
	if !bytes.Equal(magic[:], signature) {
		return nil, &ebml.ParseError{Stage: "signature", Err: ebml.ErrBadSignature}
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	p := ebml.NewParser(r)
	p.SetMaxDepth(cfg.maxDepth)

	header, err := p.BuildTree()
	if err != nil {
		return nil, err
	}
	segment, err := p.BuildTree()
	if err != nil {
		return nil, err
	}

	return &File{
		Header:  EBMLHeader{node: header},
		Segment: Segment{node: segment},
	}, nil
}
