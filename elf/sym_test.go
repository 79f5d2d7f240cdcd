package elf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymInfoNibbles(t *testing.T) {
	cases := []struct {
		info uint8
		typ  SymType
		bind SymBind
	}{
		{0x00, SymNoType, BindLocal},
		{0x12, SymFunc, BindGlobal},
		{0x21, SymObject, BindWeak},
		{0x03, SymSection, BindLocal},
		{0x14, SymFile, BindGlobal},
		{0x06, SymTls, BindLocal},
		{0xff, SymUnhandled, BindUnhandled},
	}
	for _, c := range cases {
		m := newImage(24, binary.LittleEndian)
		m.sym(0, 0, 0, c.info, 0, 0, 0, 0)
		sym, err := decodeSym(m.reader(), 0, binary.LittleEndian)
		require.NoError(t, err)
		assert.Equal(t, c.typ, sym.Type, "info 0x%02x", c.info)
		assert.Equal(t, c.bind, sym.Bind, "info 0x%02x", c.info)
	}
}

func TestSymFields(t *testing.T) {
	m := newImage(24, binary.LittleEndian)
	m.sym(0, 0, 42, 0x12, 7, 3, 0x401000, 128)
	sym, err := decodeSym(m.reader(), 0, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), sym.NameOff)
	assert.Equal(t, uint8(7), sym.Other)
	assert.Equal(t, uint16(3), sym.Shndx)
	assert.Equal(t, uint64(0x401000), sym.Value)
	assert.Equal(t, uint64(128), sym.Size)
	assert.Equal(t, "", sym.Name)
}

func TestSymLabels(t *testing.T) {
	assert.Equal(t, "function", SymFunc.String())
	assert.Equal(t, "no type", SymNoType.String())
	assert.Equal(t, "unhandled", SymUnhandled.String())
	assert.Equal(t, "global", BindGlobal.String())
	assert.Equal(t, "unhandled", BindUnhandled.String())
}

func TestSymTruncated(t *testing.T) {
	m := newImage(10, binary.LittleEndian)
	_, err := decodeSym(m.reader(), 0, binary.LittleEndian)
	assert.Error(t, err)
}
