package elf

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// FileType classifies the object file as a whole.
type FileType int

const (
	TypeNone FileType = iota
	TypeRel
	TypeExec
	TypeDyn
	TypeCore
	TypeUnknown
)

func fileTypeOf(v uint16) FileType {
	switch v {
	case 0:
		return TypeNone
	case 1:
		return TypeRel
	case 2:
		return TypeExec
	case 3:
		return TypeDyn
	case 4:
		return TypeCore
	default:
		return TypeUnknown
	}
}

func (t FileType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeRel:
		return "relocatable"
	case TypeExec:
		return "executable"
	case TypeDyn:
		return "shared object"
	case TypeCore:
		return "core"
	default:
		return "unknown"
	}
}

// layout of the ELF64 header after the 16 ident bytes
type rawHeader struct {
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint64
	Phoff     uint64
	Shoff     uint64
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// Header is the fixed leading record of an ELF file. Machine, Version and
// Flags are carried raw and otherwise unmodeled.
type Header struct {
	Valid     bool
	Type      FileType
	Machine   uint16
	Version   uint32
	Entry     uint64
	Phoff     uint64
	Shoff     uint64
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16

	order binary.ByteOrder
}

// ByteOrder is the byte order declared in ident byte 5. Unknown markers
// fall back to little-endian.
func (h *Header) ByteOrder() binary.ByteOrder {
	if h.order == nil {
		return binary.LittleEndian
	}
	return h.order
}

func decodeHeader(r io.ReaderAt) (*Header, error) {
	var ident [16]byte
	if _, err := r.ReadAt(ident[:], 0); err != nil {
		return nil, errors.Wrap(err, "reading ELF ident")
	}
	h := &Header{Valid: ident[0] == 0x7f && ident[1] == 'E' && ident[2] == 'L' && ident[3] == 'F'}
	if ident[5] == 2 {
		h.order = binary.BigEndian
	} else {
		h.order = binary.LittleEndian
	}
	var raw rawHeader
	if _, err := unpackAt(r, &raw, 16, h.order); err != nil {
		return nil, errors.Wrap(err, "reading ELF header")
	}
	h.Type = fileTypeOf(raw.Type)
	h.Machine = raw.Machine
	h.Version = raw.Version
	h.Entry = raw.Entry
	h.Phoff = raw.Phoff
	h.Shoff = raw.Shoff
	h.Flags = raw.Flags
	h.Ehsize = raw.Ehsize
	h.Phentsize = raw.Phentsize
	h.Phnum = raw.Phnum
	h.Shentsize = raw.Shentsize
	h.Shnum = raw.Shnum
	h.Shstrndx = raw.Shstrndx
	return h, nil
}
