package elf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStringAt(t *testing.T) {
	r := bytes.NewReader([]byte("\x00.text\x00main\x00"))
	s, err := readStringAt(r, 1)
	require.NoError(t, err)
	assert.Equal(t, ".text", s)
	s, err = readStringAt(r, 7)
	require.NoError(t, err)
	assert.Equal(t, "main", s)
	s, err = readStringAt(r, 0)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestReadStringAtLong(t *testing.T) {
	// longer than one read chunk
	name := bytes.Repeat([]byte("x"), 200)
	r := bytes.NewReader(append(name, 0))
	s, err := readStringAt(r, 0)
	require.NoError(t, err)
	assert.Equal(t, string(name), s)
}

func TestReadStringAtUnterminated(t *testing.T) {
	r := bytes.NewReader([]byte("main"))
	_, err := readStringAt(r, 0)
	assert.Equal(t, BadString, errors.Cause(err))

	// starting past the end of the input
	_, err = readStringAt(r, 100)
	assert.Equal(t, BadString, errors.Cause(err))
}

func TestReadStringAtNotText(t *testing.T) {
	r := bytes.NewReader([]byte{'a', 0xff, 0xfe, 'b', 0})
	_, err := readStringAt(r, 0)
	assert.Equal(t, BadString, errors.Cause(err))
}

func TestUnpackAtShortInput(t *testing.T) {
	var raw rawSym
	r := bytes.NewReader(make([]byte, 10))
	_, err := unpackAt(r, &raw, 0, binary.LittleEndian)
	assert.Error(t, err)
}

func TestMatchElf(t *testing.T) {
	assert.True(t, MatchElf(bytes.NewReader([]byte{0x7f, 'E', 'L', 'F', 0, 0})))
	assert.False(t, MatchElf(bytes.NewReader([]byte{'M', 'Z', 0, 0})))
	assert.False(t, MatchElf(bytes.NewReader(nil)))
}
