package elf

import (
	"encoding/binary"
	"io"
)

// SectionType classifies one section-header entry.
type SectionType int

const (
	SecNull SectionType = iota
	SecProgbits
	SecSymtab
	SecStrtab
	SecRela
	SecHash
	SecDynamic
	SecNote
	SecNobits
	SecRel
	SecShlib
	SecDynsym
	SecUnhandled
)

func sectionTypeOf(v uint32) SectionType {
	if v <= 11 {
		return SectionType(v)
	}
	return SecUnhandled
}

func (t SectionType) String() string {
	switch t {
	case SecNull:
		return "null"
	case SecProgbits:
		return "progbits"
	case SecSymtab:
		return "symtab"
	case SecStrtab:
		return "strtab"
	case SecRela:
		return "rela"
	case SecHash:
		return "hash"
	case SecDynamic:
		return "dynamic"
	case SecNote:
		return "note"
	case SecNobits:
		return "nobits"
	case SecRel:
		return "rel"
	case SecShlib:
		return "shlib"
	case SecDynsym:
		return "dynsym"
	default:
		return "unhandled"
	}
}

type rawSection struct {
	NameOff   uint32
	Type      uint32
	Flags     uint64
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

// Section is one entry of the section-header table. Name stays empty until
// the assembler's name-resolution pass fills it in.
type Section struct {
	NameOff   uint32
	Type      SectionType
	Flags     uint64
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64

	Name string
}

func (s *Section) IsSymtab() bool {
	return s.Type == SecSymtab
}

func (s *Section) IsStrtab() bool {
	return s.Type == SecStrtab
}

func decodeSection(r io.ReaderAt, off uint64, order binary.ByteOrder) (*Section, error) {
	var raw rawSection
	if _, err := unpackAt(r, &raw, off, order); err != nil {
		return nil, err
	}
	return &Section{
		NameOff:   raw.NameOff,
		Type:      sectionTypeOf(raw.Type),
		Flags:     raw.Flags,
		Addr:      raw.Addr,
		Offset:    raw.Offset,
		Size:      raw.Size,
		Link:      raw.Link,
		Info:      raw.Info,
		Addralign: raw.Addralign,
		Entsize:   raw.Entsize,
	}, nil
}
