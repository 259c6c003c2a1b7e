package ebml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDataUint(t *testing.T) {
	require.Equal(t, uint64(255), ElementData{0xff}.Uint())
	require.Equal(t, uint64(0x0105), ElementData{0x01, 0x05}.Uint())
	require.Equal(t, uint64(0), ElementData{}.Uint())
}

func TestDataInt(t *testing.T) {
	values := []struct {
		in  ElementData
		out int64
	}{
		{ElementData{0x7f}, 127},
		{ElementData{0xfe}, -2},
		{ElementData{0x00, 0x05}, 5},
		{ElementData{0xff, 0xfe}, -2},
		{ElementData{}, 0},
	}
	for _, ex := range values {
		require.Equal(t, ex.out, ex.in.Int(), "payload %x", []byte(ex.in))
	}
}

func TestDataFloat(t *testing.T) {
	require.Equal(t, 12.5, ElementData{0x40, 0x29, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}.Float())
	require.Equal(t, 89361.0, ElementData{0x47, 0xae, 0x88, 0x80}.Float())
}

func TestDataText(t *testing.T) {
	s, err := ElementData{0x41, 0x42, 0x43}.Text()
	require.NoError(t, err)
	require.Equal(t, "ABC", s)

	s, err = ElementData{0xe4, 0xbd, 0x95}.Text()
	require.NoError(t, err)
	require.Equal(t, "何", s)

	_, err = ElementData{0xff, 0xfe, 0xfd}.Text()
	require.ErrorIs(t, err, ErrInvalidString)
}

func TestDataBool(t *testing.T) {
	require.True(t, ElementData{0x01}.Bool())
	require.False(t, ElementData{0x00}.Bool())
	// only the exact integer 1 is true
	require.False(t, ElementData{0x02}.Bool())
	require.False(t, ElementData{0xff}.Bool())
}

func TestDataTime(t *testing.T) {
	require.Equal(t, time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC), ElementData{}.Time())

	day := ElementData(unpack(8, uint64(24*time.Hour)))
	require.Equal(t, time.Date(2001, time.January, 2, 0, 0, 0, 0, time.UTC), day.Time())
}

func TestDataBytesCopies(t *testing.T) {
	d := ElementData{0x01, 0x02}
	b := d.Bytes()
	b[0] = 0xff
	require.Equal(t, byte(0x01), d[0])
}
