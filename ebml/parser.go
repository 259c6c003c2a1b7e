// Package ebml decodes the EBML tagged-tree container encoding used by
// Matroska and WebM files into an immutable in-memory node tree. It reads
// element structure and metadata payloads only; it does not decode
// audio/video frame contents.
package ebml

import (
	"io"
)

// DefaultMaxDepth is the default limit on element nesting. Realistic
// documents stay below a dozen levels; the cap keeps crafted input from
// exhausting the stack.
const DefaultMaxDepth = 64

// Parser reads EBML elements sequentially from a byte stream, tracking the
// absolute offset of every read. A Parser owns its reader for the duration
// of a parse; the trees it produces are immutable and safe for concurrent
// readers.
type Parser struct {
	r        io.ReadSeeker
	pos      int64
	maxDepth int
}

// NewParser returns a parser positioned at the reader's current offset.
func NewParser(r io.ReadSeeker) *Parser {
	return &Parser{r: r, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth replaces the nesting limit. Values below one are ignored.
func (p *Parser) SetMaxDepth(n int) {
	if n > 0 {
		p.maxDepth = n
	}
}

// Pos returns the number of bytes consumed so far.
func (p *Parser) Pos() int64 {
	return p.pos
}

func (p *Parser) readBytes(n uint64, stage string, id uint64) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(p.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrUnexpectedEOF
		}
		return nil, &ParseError{Stage: stage, Offset: p.pos, ID: id, Err: err}
	}
	p.pos += int64(n)

	return buf, nil
}

// readElementID reads a length-prefixed element identifier. Unlike a size
// vint, the marker bits stay in place: the identifier is the raw big-endian
// concatenation of all its octets.
func (p *Parser) readElementID() (uint64, error) {
	b, err := p.readBytes(1, "element id", 0)
	if err != nil {
		return 0, err
	}

	length := vintLength(b[0])
	buf := make([]byte, length)
	buf[0] = b[0]
	if length > 1 {
		rest, err := p.readBytes(uint64(length-1), "element id", 0)
		if err != nil {
			return 0, err
		}
		copy(buf[1:], rest)
	}

	return pack(length, buf), nil
}

// readVint reads a size vint: the octet count comes from the leading zero
// run of the first byte, whose marker bits are then masked off before the
// big-endian accumulation. It also reports the octet count so callers can
// recognise the reserved all-ones encoding.
func (p *Parser) readVint(id uint64) (uint64, int, error) {
	b, err := p.readBytes(1, "size vint", id)
	if err != nil {
		return 0, 0, err
	}

	length := vintLength(b[0])
	buf := make([]byte, length)
	buf[0] = b[0] & byte(1<<(8-length)-1)
	if length > 1 {
		rest, err := p.readBytes(uint64(length-1), "size vint", id)
		if err != nil {
			return 0, 0, err
		}
		copy(buf[1:], rest)
	}

	return pack(length, buf), length, nil
}

// ParseElement reads one element header at the current position and, for
// non-master kinds, its payload. Master payloads are left to BuildTree.
func (p *Parser) ParseElement() (Element, error) {
	var el Element
	el.Offset = p.pos

	id, err := p.readElementID()
	if err != nil {
		return el, err
	}

	size, n, err := p.readVint(id)
	if err != nil {
		return el, err
	}
	if size == vintMax(n) {
		return el, &ParseError{Stage: "size vint", Offset: el.Offset, ID: id, Err: ErrUnknownSize}
	}

	el.ElementRegister = GetElementRegister(id)
	el.Size = size

	if el.Type != ElementTypeMaster {
		data, err := p.readBytes(size, "content", id)
		if err != nil {
			return el, err
		}
		el.Data = ElementData(data)
	}

	return el, nil
}

// BuildTree parses one element and, for master elements, recursively
// parses children until the declared byte span is consumed. A child that
// crosses the parent's boundary is a span mismatch, never a truncated
// success.
func (p *Parser) BuildTree() (*Node, error) {
	return p.buildTree(0)
}

func (p *Parser) buildTree(depth int) (*Node, error) {
	if depth >= p.maxDepth {
		return nil, &ParseError{Stage: "children", Offset: p.pos, Err: ErrMaxDepth}
	}

	el, err := p.ParseElement()
	if err != nil {
		return nil, err
	}

	node := &Node{Element: el}
	if el.Type != ElementTypeMaster {
		return node, nil
	}

	end := p.pos + int64(el.Size)
	for p.pos < end {
		child, err := p.buildTree(depth + 1)
		if err != nil {
			return nil, err
		}
		if p.pos > end {
			return nil, &ParseError{Stage: "children", Offset: p.pos, ID: el.ID, Err: ErrSpanMismatch}
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// DecodeVint decodes one masked vint from the start of b, returning the
// value and the number of bytes consumed. It is the in-memory counterpart
// of the parser's size reader, used for vints embedded inside binary
// payloads such as block lacing headers.
func DecodeVint(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrUnexpectedEOF
	}

	length := vintLength(b[0])
	if len(b) < length {
		return 0, 0, ErrUnexpectedEOF
	}

	buf := make([]byte, length)
	copy(buf, b[:length])
	buf[0] &= byte(1<<(8-length) - 1)

	return pack(length, buf), length, nil
}
