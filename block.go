package webm

import (
	"encoding/binary"
	"fmt"

	"github.com/deepch/webm/ebml"
)

// Block lacing modes.
const (
	LacingNone  = 0
	LacingXiph  = 1
	LacingFixed = 2
	LacingEBML  = 3
)

// Block is the framing layer of a SimpleBlock or Block payload: which track
// the data belongs to, its timestamp relative to the enclosing cluster, and
// the individual frames split out of the lacing. Frame contents are opaque
// encoded media and stay undecoded.
type Block struct {
	TrackNumber uint64
	Timestamp   int16
	Keyframe    bool
	Invisible   bool
	Discardable bool
	Lacing      uint8
	Frames      [][]byte
}

// ParseBlock splits a SimpleBlock or Block payload into its frames. The
// Keyframe and Discardable flags are only meaningful for SimpleBlock
// payloads.
func ParseBlock(data []byte) (*Block, error) {
	track, n, err := ebml.DecodeVint(data)
	if err != nil {
		return nil, fmt.Errorf("webm: block track number: %w", err)
	}
	if len(data) < n+3 {
		return nil, fmt.Errorf("webm: block header: %w", ebml.ErrUnexpectedEOF)
	}

	flags := data[n+2]
	b := &Block{
		TrackNumber: track,
		Timestamp:   int16(binary.BigEndian.Uint16(data[n : n+2])),
		Keyframe:    flags&0x80 != 0,
		Invisible:   flags&0x08 != 0,
		Discardable: flags&0x01 != 0,
		Lacing:      (flags & 0x06) >> 1,
	}

	body := data[n+3:]
	if b.Lacing == LacingNone {
		b.Frames = [][]byte{append([]byte(nil), body...)}
		return b, nil
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("webm: block lacing header: %w", ebml.ErrUnexpectedEOF)
	}
	count := int(body[0]) + 1
	body = body[1:]

	var sizes []int
	switch b.Lacing {
	case LacingXiph:
		sizes, body, err = xiphLaceSizes(body, count)
	case LacingFixed:
		sizes, err = fixedLaceSizes(len(body), count)
	case LacingEBML:
		sizes, body, err = ebmlLaceSizes(body, count)
	}
	if err != nil {
		return nil, err
	}

	b.Frames = make([][]byte, 0, count)
	for _, size := range sizes {
		if size > len(body) {
			return nil, fmt.Errorf("webm: laced frame: %w", ebml.ErrUnexpectedEOF)
		}
		b.Frames = append(b.Frames, append([]byte(nil), body[:size]...))
		body = body[size:]
	}
	// the last frame is whatever remains after the sized ones
	b.Frames = append(b.Frames, append([]byte(nil), body...))

	return b, nil
}

// xiphLaceSizes reads count-1 frame sizes, each the sum of bytes up to and
// including the first byte below 255.
func xiphLaceSizes(body []byte, count int) ([]int, []byte, error) {
	sizes := make([]int, 0, count-1)
	for i := 0; i < count-1; i++ {
		size := 0
		for {
			if len(body) == 0 {
				return nil, nil, fmt.Errorf("webm: xiph lacing: %w", ebml.ErrUnexpectedEOF)
			}
			size += int(body[0])
			stop := body[0] < 0xff
			body = body[1:]
			if stop {
				break
			}
		}
		sizes = append(sizes, size)
	}

	return sizes, body, nil
}

// fixedLaceSizes divides the remaining bytes evenly; a remainder means the
// lacing header lied about the frame count.
func fixedLaceSizes(total, count int) ([]int, error) {
	if total%count != 0 {
		return nil, fmt.Errorf("webm: fixed lacing: %d bytes not divisible into %d frames", total, count)
	}

	sizes := make([]int, count-1)
	for i := range sizes {
		sizes[i] = total / count
	}

	return sizes, nil
}

// ebmlLaceSizes reads the first frame size as a vint and each following
// size as a signed vint delta against the previous one.
func ebmlLaceSizes(body []byte, count int) ([]int, []byte, error) {
	if count < 2 {
		return nil, body, nil
	}

	first, n, err := ebml.DecodeVint(body)
	if err != nil {
		return nil, nil, fmt.Errorf("webm: ebml lacing: %w", err)
	}
	body = body[n:]

	sizes := make([]int, 0, count-1)
	sizes = append(sizes, int(first))
	size := int64(first)
	for i := 1; i < count-1; i++ {
		raw, n, err := ebml.DecodeVint(body)
		if err != nil {
			return nil, nil, fmt.Errorf("webm: ebml lacing: %w", err)
		}
		body = body[n:]

		// signed vint: shift the unsigned range to centre on zero
		size += int64(raw) - (1<<(7*n-1) - 1)
		if size < 0 {
			return nil, nil, fmt.Errorf("webm: ebml lacing: negative frame size")
		}
		sizes = append(sizes, int(size))
	}

	return sizes, body, nil
}
