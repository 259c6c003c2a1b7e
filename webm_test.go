package webm

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepch/webm/ebml"
)

// Helpers building synthetic EBML streams for tests.

func vint(v uint64) []byte {
	n := 1
	for n < 8 && v > 1<<(7*n)-2 {
		n++
	}
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	b[0] |= byte(0x80 >> (n - 1))

	return b
}

func elID(id uint64) []byte {
	n := 1
	for n < 8 && id >= 1<<(8*n) {
		n++
	}
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(id)
		id >>= 8
	}

	return b
}

func el(id uint64, payload []byte) []byte {
	out := elID(id)
	out = append(out, vint(uint64(len(payload)))...)

	return append(out, payload...)
}

func master(id uint64, children ...[]byte) []byte {
	var payload []byte
	for _, c := range children {
		payload = append(payload, c...)
	}

	return el(id, payload)
}

func uintEl(id uint64, v uint64) []byte {
	n := 1
	for n < 8 && v >= 1<<(8*n) {
		n++
	}
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}

	return el(id, b)
}

func intEl(id uint64, v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))

	return el(id, b)
}

func strEl(id uint64, s string) []byte {
	return el(id, []byte(s))
}

func floatEl(id uint64, f float64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(f))

	return el(id, b)
}

func minimalHeader() []byte {
	return master(ebml.ElementEBML.ID,
		uintEl(ebml.ElementEBMLVersion.ID, 1),
		uintEl(ebml.ElementEBMLReadVersion.ID, 1),
		uintEl(ebml.ElementEBMLMaxIDLength.ID, 4),
		uintEl(ebml.ElementEBMLMaxSizeLength.ID, 8),
		strEl(ebml.ElementDocType.ID, "webm"),
		uintEl(ebml.ElementDocTypeVersion.ID, 2),
		uintEl(ebml.ElementDocTypeReadVersion.ID, 2),
	)
}

func minimalFile() []byte {
	stream := minimalHeader()

	return append(stream, master(ebml.ElementSegment.ID,
		master(ebml.ElementInfo.ID,
			uintEl(ebml.ElementTimestampScale.ID, 1000000),
			strEl(ebml.ElementMuxingApp.ID, "test"),
			strEl(ebml.ElementWritingApp.ID, "test"),
		),
		master(ebml.ElementTracks.ID),
	)...)
}

func parse(t *testing.T, stream []byte, opts ...Option) *File {
	t.Helper()
	f, err := ParseFile(bytes.NewReader(stream), opts...)
	require.NoError(t, err)

	return f
}

func TestParseFileMinimal(t *testing.T) {
	f := parse(t, minimalFile())

	version, err := f.Header.Version()
	require.NoError(t, err)
	require.Equal(t, uint64(1), version)

	readVersion, err := f.Header.ReadVersion()
	require.NoError(t, err)
	require.Equal(t, uint64(1), readVersion)

	maxID, err := f.Header.MaxIDLength()
	require.NoError(t, err)
	require.Equal(t, uint64(4), maxID)

	maxSize, err := f.Header.MaxSizeLength()
	require.NoError(t, err)
	require.Equal(t, uint64(8), maxSize)

	docType, err := f.Header.DocType()
	require.NoError(t, err)
	require.Equal(t, "webm", docType)

	docVersion, err := f.Header.DocTypeVersion()
	require.NoError(t, err)
	require.Equal(t, uint64(2), docVersion)

	docReadVersion, err := f.Header.DocTypeReadVersion()
	require.NoError(t, err)
	require.Equal(t, uint64(2), docReadVersion)

	infos := f.Segment.Infos()
	require.Len(t, infos, 1)

	scale, err := infos[0].TimestampScale()
	require.NoError(t, err)
	require.Equal(t, uint64(1000000), scale)

	muxer, err := infos[0].MuxingApp()
	require.NoError(t, err)
	require.Equal(t, "test", muxer)

	writer, err := infos[0].WritingApp()
	require.NoError(t, err)
	require.Equal(t, "test", writer)

	tracks := f.Segment.Tracks()
	require.Len(t, tracks, 1)
	require.Empty(t, tracks[0].TrackEntries())

	require.Empty(t, f.Segment.Clusters())
	require.Empty(t, f.Segment.Cues())
	require.Empty(t, f.Segment.Chapters())
	require.Empty(t, f.Segment.Tags())
	require.Empty(t, f.Segment.SeekHeads())
}

func TestParseFileBadSignature(t *testing.T) {
	stream := minimalFile()
	stream[0] = 0x42

	_, err := ParseFile(bytes.NewReader(stream))
	require.ErrorIs(t, err, ebml.ErrBadSignature)

	// fewer than four bytes available
	_, err = ParseFile(bytes.NewReader([]byte{0x1a, 0x45}))
	require.ErrorIs(t, err, ebml.ErrBadSignature)
}

func TestParseFileTruncated(t *testing.T) {
	stream := minimalFile()

	// mid-payload: the trailing empty Tracks element is 5 bytes, one more
	// byte cuts into the WritingApp payload
	_, err := ParseFile(bytes.NewReader(stream[:len(stream)-6]))
	require.ErrorIs(t, err, ebml.ErrUnexpectedEOF)

	// mid-header: inside the Tracks identifier
	_, err = ParseFile(bytes.NewReader(stream[:len(stream)-3]))
	require.ErrorIs(t, err, ebml.ErrUnexpectedEOF)
}

func TestParseFileUnknownElementPreserved(t *testing.T) {
	stream := minimalHeader()
	stream = append(stream, master(ebml.ElementSegment.ID,
		master(ebml.ElementInfo.ID,
			uintEl(ebml.ElementTimestampScale.ID, 1000000),
			el(0x4dee, []byte{0xca, 0xfe}), // not in the registry
			strEl(ebml.ElementMuxingApp.ID, "test"),
			strEl(ebml.ElementWritingApp.ID, "test"),
		),
	)...)

	f := parse(t, stream)
	info := f.Segment.Infos()[0]

	scale, err := info.TimestampScale()
	require.NoError(t, err)
	require.Equal(t, uint64(1000000), scale)

	unknown := info.Node().FindID(0x4dee)
	require.NotNil(t, unknown)
	require.Equal(t, ebml.ElementTypeUnknown, unknown.Type)
	require.Equal(t, []byte{0xca, 0xfe}, unknown.Data.Bytes())
}

func TestParseFileMaxDepth(t *testing.T) {
	_, err := ParseFile(bytes.NewReader(minimalFile()), WithMaxDepth(1))
	require.ErrorIs(t, err, ebml.ErrMaxDepth)

	f, err := ParseFile(bytes.NewReader(minimalFile()), WithMaxDepth(3))
	require.NoError(t, err)
	require.Len(t, f.Segment.Infos(), 1)
}

func TestParseFileDump(t *testing.T) {
	f := parse(t, minimalFile())

	require.Contains(t, f.Header.Node().String(), "0x1a45dfa3 EBML")
	out := f.Segment.Node().String()
	require.Contains(t, out, "0x18538067 Segment")
	require.Contains(t, out, "TimestampScale (size 3): 1000000")
}
