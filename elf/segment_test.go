package elf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentFields(t *testing.T) {
	m := newImage(56, binary.LittleEndian)
	m.segment(0, 0, 1, 5, 0x1000, 0x400000, 0x400000, 0x2000, 0x3000, 0x1000)
	seg, err := decodeSegment(m.reader(), 0, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), seg.Flags)
	assert.Equal(t, uint64(0x1000), seg.Offset)
	assert.Equal(t, uint64(0x400000), seg.Vaddr)
	assert.Equal(t, uint64(0x400000), seg.Paddr)
	assert.Equal(t, uint64(0x2000), seg.Filesz)
	assert.Equal(t, uint64(0x3000), seg.Memsz)
	assert.Equal(t, uint64(0x1000), seg.Align)
}

func TestSegmentTypeStub(t *testing.T) {
	// nonzero type codes are not classified yet
	for _, typ := range []uint32{1, 2, 3, 6, 7, 0x6474e550} {
		m := newImage(56, binary.LittleEndian)
		m.segment(0, 0, typ, 0, 0, 0, 0, 0, 0, 0)
		seg, err := decodeSegment(m.reader(), 0, binary.LittleEndian)
		require.NoError(t, err)
		assert.Equal(t, SegUnhandled, seg.Type, "type %#x", typ)
	}
	m := newImage(56, binary.LittleEndian)
	seg, err := decodeSegment(m.reader(), 0, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, SegNull, seg.Type)
}

func TestSegmentTypeLabels(t *testing.T) {
	labels := map[SegmentType]string{
		SegNull:      "null",
		SegLoad:      "loadable segment",
		SegDynamic:   "dynamic linking info",
		SegInterp:    "interpreter",
		SegNote:      "aux info",
		SegShlib:     "reserved",
		SegPhdr:      "header entry",
		SegTls:       "tls",
		SegUnhandled: "unhandled",
	}
	for typ, want := range labels {
		assert.Equal(t, want, typ.String())
	}
}
