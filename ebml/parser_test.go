package ebml

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeVint encodes v in the fewest octets whose all-ones value it does
// not collide with.
func encodeVint(v uint64) []byte {
	n := 1
	for n < 8 && v > vintMax(n) {
		n++
	}
	b := unpack(n, v)
	b[0] |= byte(0x80 >> (n - 1))

	return b
}

// encodeID emits the raw big-endian octets of an identifier, marker bits
// included.
func encodeID(id uint64) []byte {
	n := 1
	for n < 8 && id >= 1<<(8*n) {
		n++
	}

	return unpack(n, id)
}

func element(id uint64, payload []byte) []byte {
	out := encodeID(id)
	out = append(out, encodeVint(uint64(len(payload)))...)

	return append(out, payload...)
}

func master(id uint64, children ...[]byte) []byte {
	var payload []byte
	for _, c := range children {
		payload = append(payload, c...)
	}

	return element(id, payload)
}

func newTestParser(b []byte) *Parser {
	return NewParser(bytes.NewReader(b))
}

func TestVintLength(t *testing.T) {
	values := []struct {
		b byte
		n int
	}{
		{0x81, 1},
		{0x80, 1},
		{0xff, 1},
		{0x40, 2},
		{0x0e, 5},
		{0x02, 7},
		{0x01, 8},
		{0x00, 8}, // no marker bit in the first byte, still an 8-octet value
	}
	for _, ex := range values {
		require.Equal(t, ex.n, vintLength(ex.b), "first byte 0x%02x", ex.b)
	}
}

func TestVintBoundaryClasses(t *testing.T) {
	values := []struct {
		v      uint64
		octets int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
	}
	for _, ex := range values {
		enc := encodeVint(ex.v)
		require.Len(t, enc, ex.octets, "value %d", ex.v)

		got, n, err := newTestParser(enc).readVint(0)
		require.NoError(t, err)
		require.Equal(t, ex.octets, n)
		require.Equal(t, ex.v, got, "value %d", ex.v)
	}
}

func TestVintRoundTrip(t *testing.T) {
	var values []uint64
	for n := 1; n <= 8; n++ {
		max := vintMax(n)
		values = append(values, max-1, max/2, max/3)
	}
	for _, v := range values {
		got, _, err := newTestParser(encodeVint(v)).readVint(0)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestDecodeVint(t *testing.T) {
	v, n, err := DecodeVint([]byte{0x85, 0xaa})
	require.NoError(t, err)
	require.Equal(t, uint64(5), v)
	require.Equal(t, 1, n)

	v, n, err = DecodeVint([]byte{0x41, 0x23})
	require.NoError(t, err)
	require.Equal(t, uint64(0x123), v)
	require.Equal(t, 2, n)

	_, _, err = DecodeVint(nil)
	require.ErrorIs(t, err, ErrUnexpectedEOF)

	_, _, err = DecodeVint([]byte{0x41})
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestReadElementIDUnmasked(t *testing.T) {
	// identifiers keep their marker bits
	p := newTestParser([]byte{0x1a, 0x45, 0xdf, 0xa3})
	id, err := p.readElementID()
	require.NoError(t, err)
	require.Equal(t, uint64(0x1a45dfa3), id)

	p = newTestParser([]byte{0xe7})
	id, err = p.readElementID()
	require.NoError(t, err)
	require.Equal(t, uint64(0xe7), id)
}

func TestParseElementScalar(t *testing.T) {
	p := newTestParser(element(ElementTimestamp.ID, []byte{0x03, 0xe8}))
	el, err := p.ParseElement()
	require.NoError(t, err)
	require.Equal(t, ElementTimestamp.ID, el.ID)
	require.Equal(t, ElementTypeUint, el.Type)
	require.Equal(t, "Timestamp", el.Name)
	require.Equal(t, uint64(2), el.Size)
	require.Equal(t, uint64(1000), el.Data.Uint())
}

func TestParseElementUnknownID(t *testing.T) {
	// unregistered identifiers parse as opaque binary, never fail
	p := newTestParser(element(0x4dee, []byte{0x01, 0x02, 0x03}))
	el, err := p.ParseElement()
	require.NoError(t, err)
	require.Equal(t, uint64(0x4dee), el.ID)
	require.Equal(t, ElementTypeUnknown, el.Type)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, el.Data.Bytes())
}

func TestParseElementUnknownSize(t *testing.T) {
	stream := append(encodeID(ElementSegment.ID), 0xff)
	_, err := newTestParser(stream).ParseElement()
	require.ErrorIs(t, err, ErrUnknownSize)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, ElementSegment.ID, perr.ID)
}

func TestParseElementTruncated(t *testing.T) {
	full := element(ElementMuxingApp.ID, []byte("truncate me"))
	_, err := newTestParser(full[:len(full)-4]).ParseElement()
	require.ErrorIs(t, err, ErrUnexpectedEOF)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "content", perr.Stage)
	require.Equal(t, ElementMuxingApp.ID, perr.ID)
}

func TestBuildTree(t *testing.T) {
	stream := master(ElementInfo.ID,
		element(ElementTimestampScale.ID, []byte{0x0f, 0x42, 0x40}),
		element(ElementMuxingApp.ID, []byte("test")),
	)

	node, err := newTestParser(stream).BuildTree()
	require.NoError(t, err)
	require.Equal(t, ElementInfo.ID, node.ID)
	require.Len(t, node.Children, 2)
	require.Empty(t, node.Data)

	scale := node.FindID(ElementTimestampScale.ID)
	require.NotNil(t, scale)
	require.Equal(t, uint64(1000000), scale.Data.Uint())

	require.Nil(t, node.FindID(ElementWritingApp.ID))
	require.Len(t, node.FilterID(ElementMuxingApp.ID), 1)
}

func TestBuildTreeSpanMismatch(t *testing.T) {
	// Info declares 3 payload bytes but its child occupies 4
	child := element(ElementTimestamp.ID, []byte{0x03, 0xe8})
	stream := append(encodeID(ElementInfo.ID), encodeVint(3)...)
	stream = append(stream, child...)

	_, err := newTestParser(stream).BuildTree()
	require.ErrorIs(t, err, ErrSpanMismatch)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, ElementInfo.ID, perr.ID)
}

func TestBuildTreeMaxDepth(t *testing.T) {
	stream := master(ElementSegment.ID,
		master(ElementTracks.ID,
			master(ElementTrackEntry.ID,
				master(ElementVideo.ID))))

	p := newTestParser(stream)
	p.SetMaxDepth(3)
	_, err := p.BuildTree()
	require.ErrorIs(t, err, ErrMaxDepth)

	p = newTestParser(stream)
	node, err := p.BuildTree()
	require.NoError(t, err)
	require.Len(t, node.Children, 1)
}

func TestParserPos(t *testing.T) {
	stream := element(ElementTimestamp.ID, []byte{0x01})
	p := newTestParser(stream)
	_, err := p.ParseElement()
	require.NoError(t, err)
	require.Equal(t, int64(len(stream)), p.Pos())
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Stage: "content", Offset: 12, ID: 0x4d80, Err: ErrUnexpectedEOF}
	require.Equal(t, "ebml: content at offset 12, element 0x4d80: unexpected EOF", err.Error())
	require.True(t, errors.Is(err, ErrUnexpectedEOF))
}

func TestNodeString(t *testing.T) {
	stream := master(ElementInfo.ID,
		element(ElementTimestampScale.ID, []byte{0x0f, 0x42, 0x40}),
		element(ElementMuxingApp.ID, []byte("test")),
		element(0x4dee, []byte{0xde, 0xad}),
	)

	node, err := newTestParser(stream).BuildTree()
	require.NoError(t, err)

	out := node.String()
	require.Contains(t, out, "0x1549a966 Info")
	require.Contains(t, out, "TimestampScale (size 3): 1000000")
	require.Contains(t, out, "MuxingApp (size 4): test")
	require.Contains(t, out, "0x4dee Unknown (size 2): dead")
}
