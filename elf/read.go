package elf

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

var elfMagic = []byte{0x7f, 0x45, 0x4c, 0x46}

func getMagic(r io.ReaderAt) []byte {
	ret := make([]byte, 4)
	r.ReadAt(ret, 0)
	return ret
}

// MatchElf reports whether r begins with the ELF magic bytes.
func MatchElf(r io.ReaderAt) bool {
	return bytes.Equal(getMagic(r), elfMagic)
}

// unpackAt decodes one fixed-layout record at the given file offset.
// Short reads propagate as errors and never decode as zeros.
func unpackAt(r io.ReaderAt, i interface{}, off uint64, order binary.ByteOrder) (int, error) {
	size, err := struc.Sizeof(i)
	if err != nil {
		return 0, err
	}
	err = struc.UnpackWithOrder(io.NewSectionReader(r, int64(off), int64(size)), i, order)
	if err != nil {
		return 0, errors.Wrapf(err, "unpack of %d bytes at 0x%x failed", size, off)
	}
	return size, nil
}

// readStringAt reads a null-terminated string starting at off, excluding
// the terminator. Running off the end of the input or hitting bytes that
// are not valid text is an error, not a truncated result.
func readStringAt(r io.ReaderAt, off uint64) (string, error) {
	var s []byte
	var buf [64]byte
	pos := int64(off)
	for {
		n, err := r.ReadAt(buf[:], pos)
		if i := bytes.IndexByte(buf[:n], 0); i >= 0 {
			s = append(s, buf[:i]...)
			if !utf8.Valid(s) {
				return "", errors.Wrapf(BadString, "at 0x%x", off)
			}
			return string(s), nil
		}
		s = append(s, buf[:n]...)
		if err != nil {
			if err == io.EOF {
				return "", errors.Wrapf(BadString, "unterminated string at 0x%x", off)
			}
			return "", errors.Wrapf(err, "reading string at 0x%x", off)
		}
		pos += int64(n)
	}
}
