// Package elf extracts the structure of an ELF64 object or executable:
// header, sections, program segments and symbols, with display names
// resolved through the file's string tables.
package elf

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

var (
	BadMagic    = errors.New("not a valid ELF file")
	NoSymtab    = errors.New("symbol table not found")
	NoStrtab    = errors.New("string table not found")
	ZeroEntsize = errors.New("symbol table entry size is zero")
	IndexRange  = errors.New("index out of range")
	BadString   = errors.New("malformed name string")
)

// Object is the fully extracted model of one ELF file. It is populated in
// a single pass by Extract and read-only afterwards.
type Object struct {
	Path     string
	Header   *Header
	Sections []*Section
	Segments []*Segment
	Symbols  []*Sym
}

// ExtractFile opens path, extracts the whole object through one file
// handle, and closes it before returning.
func ExtractFile(path string) (*Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	o, err := Extract(f)
	if err != nil {
		return nil, err
	}
	o.Path = path
	return o, nil
}

// Extract parses the full object from r. Extraction is fail-fast: any
// error aborts the whole operation and no partial Object is returned.
func Extract(r io.ReaderAt) (*Object, error) {
	hdr, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	if !hdr.Valid {
		return nil, errors.WithStack(BadMagic)
	}
	o := &Object{Header: hdr}
	if err := o.extractSections(r); err != nil {
		return nil, err
	}
	if err := o.extractSegments(r); err != nil {
		return nil, err
	}
	if err := o.extractSymbols(r); err != nil {
		return nil, err
	}
	// section names must be in place before symbol names: section-typed
	// symbols alias them
	if err := o.resolveSectionNames(r); err != nil {
		return nil, err
	}
	if err := o.resolveSymbolNames(r); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Object) extractSections(r io.ReaderAt) error {
	hdr := o.Header
	for i := uint64(0); i < uint64(hdr.Shnum); i++ {
		sec, err := decodeSection(r, hdr.Shoff+i*uint64(hdr.Shentsize), hdr.ByteOrder())
		if err != nil {
			return errors.Wrapf(err, "section %d", i)
		}
		o.Sections = append(o.Sections, sec)
	}
	return nil
}

func (o *Object) extractSegments(r io.ReaderAt) error {
	hdr := o.Header
	for i := uint64(0); i < uint64(hdr.Phnum); i++ {
		seg, err := decodeSegment(r, hdr.Phoff+i*uint64(hdr.Phentsize), hdr.ByteOrder())
		if err != nil {
			return errors.Wrapf(err, "segment %d", i)
		}
		o.Segments = append(o.Segments, seg)
	}
	return nil
}

func (o *Object) extractSymbols(r io.ReaderAt) error {
	symtab := o.findSymtab()
	if symtab == nil {
		return errors.WithStack(NoSymtab)
	}
	if symtab.Entsize == 0 {
		return errors.WithStack(ZeroEntsize)
	}
	num := symtab.Size / symtab.Entsize
	for i := uint64(0); i < num; i++ {
		sym, err := decodeSym(r, symtab.Offset+i*symtab.Entsize, o.Header.ByteOrder())
		if err != nil {
			return errors.Wrapf(err, "symbol %d", i)
		}
		o.Symbols = append(o.Symbols, sym)
	}
	return nil
}

func (o *Object) resolveSectionNames(r io.ReaderAt) error {
	ndx := int(o.Header.Shstrndx)
	if ndx >= len(o.Sections) {
		return errors.Wrapf(IndexRange, "shstrndx %d with %d sections", ndx, len(o.Sections))
	}
	shstrtab := o.Sections[ndx]
	for i, sec := range o.Sections {
		name, err := readStringAt(r, shstrtab.Offset+uint64(sec.NameOff))
		if err != nil {
			return errors.Wrapf(err, "name of section %d", i)
		}
		sec.Name = name
	}
	return nil
}

func (o *Object) resolveSymbolNames(r io.ReaderAt) error {
	strtab, err := o.symbolStrtab()
	if err != nil {
		return err
	}
	for i, sym := range o.Symbols {
		if sym.IsSection() {
			// section symbols have no string of their own; copy the
			// already-resolved section name
			if int(sym.Shndx) >= len(o.Sections) {
				return errors.Wrapf(IndexRange, "symbol %d shndx %d with %d sections", i, sym.Shndx, len(o.Sections))
			}
			sym.Name = o.Sections[sym.Shndx].Name
			continue
		}
		name, err := readStringAt(r, strtab.Offset+uint64(sym.NameOff))
		if err != nil {
			return errors.Wrapf(err, "name of symbol %d", i)
		}
		sym.Name = name
	}
	return nil
}

// findSymtab returns the lowest-indexed symtab section, or nil.
func (o *Object) findSymtab() *Section {
	for _, sec := range o.Sections {
		if sec.IsSymtab() {
			return sec
		}
	}
	return nil
}

// symbolStrtab locates the string table holding symbol names. The symtab's
// link field is authoritative when it names a valid strtab section; a file
// that leaves it unset falls back to the lowest-indexed strtab.
func (o *Object) symbolStrtab() (*Section, error) {
	symtab := o.findSymtab()
	if symtab == nil {
		return nil, errors.WithStack(NoSymtab)
	}
	if link := int(symtab.Link); link > 0 && link < len(o.Sections) && o.Sections[link].IsStrtab() {
		return o.Sections[link], nil
	}
	for _, sec := range o.Sections {
		if sec.IsStrtab() {
			return sec, nil
		}
	}
	return nil, errors.WithStack(NoStrtab)
}
