package ebml

import (
	"math"
	"time"
	"unicode/utf8"
)

// matroskaEpoch is the zero point of the Date element kind:
// 2001-01-01T00:00:00 UTC, with values counted in nanoseconds.
var matroskaEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// ElementData is the raw payload of a non-master element. Conversions are
// repeatable and never modify the underlying bytes; an empty payload
// decodes to the zero value of every numeric kind.
type ElementData []byte

// Uint accumulates the payload big-endian into an unsigned integer.
func (d ElementData) Uint() uint64 {
	return pack(len(d), d)
}

// Int decodes the payload as a two's-complement signed integer,
// sign-extended from the payload's declared width.
func (d ElementData) Int() int64 {
	if len(d) == 0 {
		return 0
	}

	var v int64
	if d[0]&0x80 != 0 {
		v = -1
	}
	for _, b := range d {
		v = v<<8 | int64(b)
	}

	return v
}

// Float decodes the payload as big-endian IEEE 754: 64-bit when the payload
// is longer than four bytes, otherwise 32-bit widened to float64.
func (d ElementData) Float() float64 {
	v := d.Uint()
	if len(d) > 4 {
		return math.Float64frombits(v)
	}

	return float64(math.Float32frombits(uint32(v)))
}

// Text decodes the payload as UTF-8. Invalid byte sequences are an error,
// never replaced.
func (d ElementData) Text() (string, error) {
	if !utf8.Valid(d) {
		return "", ErrInvalidString
	}

	return string(d), nil
}

// Bytes returns a copy of the payload.
func (d ElementData) Bytes() []byte {
	return append([]byte(nil), d...)
}

// Bool reports whether the payload decodes to the integer 1. Any other
// value, including other nonzero values, is false.
func (d ElementData) Bool() bool {
	return d.Int() == 1
}

// Time decodes a Date payload: signed nanoseconds relative to
// 2001-01-01T00:00:00 UTC.
func (d ElementData) Time() time.Time {
	return matroskaEpoch.Add(time.Duration(d.Int()))
}
