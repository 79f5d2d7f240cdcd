package elf

import (
	"encoding/binary"
	"io"
)

// SegmentType classifies one program-header entry.
type SegmentType int

const (
	SegNull SegmentType = iota
	SegLoad
	SegDynamic
	SegInterp
	SegNote
	SegShlib
	SegPhdr
	SegTls
	SegUnhandled
)

// TODO: classify the remaining program-header types; nonzero codes all
// land on SegUnhandled for now.
func segmentTypeOf(v uint32) SegmentType {
	if v == 0 {
		return SegNull
	}
	return SegUnhandled
}

func (t SegmentType) String() string {
	switch t {
	case SegNull:
		return "null"
	case SegLoad:
		return "loadable segment"
	case SegDynamic:
		return "dynamic linking info"
	case SegInterp:
		return "interpreter"
	case SegNote:
		return "aux info"
	case SegShlib:
		return "reserved"
	case SegPhdr:
		return "header entry"
	case SegTls:
		return "tls"
	default:
		return "unhandled"
	}
}

type rawSegment struct {
	Type   uint32
	Flags  uint32
	Offset uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

// Segment is one entry of the program-header table. Flags are carried raw
// and unmodeled.
type Segment struct {
	Type   SegmentType
	Flags  uint32
	Offset uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

func decodeSegment(r io.ReaderAt, off uint64, order binary.ByteOrder) (*Segment, error) {
	var raw rawSegment
	if _, err := unpackAt(r, &raw, off, order); err != nil {
		return nil, err
	}
	return &Segment{
		Type:   segmentTypeOf(raw.Type),
		Flags:  raw.Flags,
		Offset: raw.Offset,
		Vaddr:  raw.Vaddr,
		Paddr:  raw.Paddr,
		Filesz: raw.Filesz,
		Memsz:  raw.Memsz,
		Align:  raw.Align,
	}, nil
}
