package elf

import (
	"encoding/binary"
	"io"
)

// SymType is the low nibble of a symbol's info byte.
type SymType int

const (
	SymNoType SymType = iota
	SymObject
	SymFunc
	SymSection
	SymFile
	SymCommon
	SymTls
	SymNum
	SymUnhandled
)

func symTypeOf(info uint8) SymType {
	if v := info & 0xf; v <= 7 {
		return SymType(v)
	}
	return SymUnhandled
}

func (t SymType) String() string {
	switch t {
	case SymNoType:
		return "no type"
	case SymObject:
		return "object"
	case SymFunc:
		return "function"
	case SymSection:
		return "section"
	case SymFile:
		return "file"
	case SymCommon:
		return "common"
	case SymTls:
		return "tls"
	case SymNum:
		return "num"
	default:
		return "unhandled"
	}
}

// SymBind is the high nibble of a symbol's info byte.
type SymBind int

const (
	BindLocal SymBind = iota
	BindGlobal
	BindWeak
	BindUnhandled
)

func symBindOf(info uint8) SymBind {
	if v := info >> 4; v <= 2 {
		return SymBind(v)
	}
	return BindUnhandled
}

func (b SymBind) String() string {
	switch b {
	case BindLocal:
		return "local"
	case BindGlobal:
		return "global"
	case BindWeak:
		return "weak"
	default:
		return "unhandled"
	}
}

type rawSym struct {
	NameOff uint32
	Info    uint8
	Other   uint8
	Shndx   uint16
	Value   uint64
	Size    uint64
}

// Sym is one entry of a symbol table. Name stays empty until the
// assembler's name-resolution pass fills it in.
type Sym struct {
	NameOff uint32
	Type    SymType
	Bind    SymBind
	Other   uint8
	Shndx   uint16
	Value   uint64
	Size    uint64

	Name string
}

// IsSection reports whether the symbol refers to a section. Such symbols
// carry no name string of their own.
func (s *Sym) IsSection() bool {
	return s.Type == SymSection
}

func decodeSym(r io.ReaderAt, off uint64, order binary.ByteOrder) (*Sym, error) {
	var raw rawSym
	if _, err := unpackAt(r, &raw, off, order); err != nil {
		return nil, err
	}
	// type and bind both come out of the one info byte
	return &Sym{
		NameOff: raw.NameOff,
		Type:    symTypeOf(raw.Info),
		Bind:    symBindOf(raw.Info),
		Other:   raw.Other,
		Shndx:   raw.Shndx,
		Value:   raw.Value,
		Size:    raw.Size,
	}, nil
}
