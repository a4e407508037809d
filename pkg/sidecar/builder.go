package sidecar

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/beevik/etree"
)

// Document is a built sidecar tree. It is a value: Build returns a fresh one
// on every call and nothing mutates it afterwards, so callers can hold and
// serialize it as often as they like.
type Document struct {
	doc *etree.Document
}

// Validate checks md structurally without touching any document state: every
// top-level key must belong to the fixed category set, and every field name
// must be usable as an XML element name. Build runs this as a pre-pass, so a
// failed build never leaves a partially constructed tree behind.
func Validate(md Metadata) error {
	for cat, fields := range md {
		if !cat.known() {
			return &MetadataError{Category: cat, Err: ErrUnknownCategory}
		}
		for name := range fields {
			if !validElementName(name) {
				return &MetadataError{Category: cat, Field: name, Err: ErrMalformedMetadata}
			}
		}
	}
	return nil
}

// Build validates md and materializes it into a sidecar document: an
// mhs:Sidecar root carrying the model version and both namespace
// declarations, one mhs child per category, and one field element per
// category entry. Technical fields are qualified under mh; Dynamic fields
// keep a bare local name.
//
// Categories are emitted in canonical order (Dynamic, Technical) and fields
// sorted by name, so identical input always serializes identically.
func Build(md Metadata) (*Document, error) {
	if err := Validate(md); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="`+xmlEncoding+`"`)

	root := doc.CreateElement(prefixMHS + ":Sidecar")
	root.CreateAttr("xmlns:"+prefixMHS, NamespaceMHS)
	root.CreateAttr("xmlns:"+prefixMH, NamespaceMH)
	root.CreateAttr("version", Version)

	for _, cat := range categoryOrder {
		fields, ok := md[cat]
		if !ok {
			continue
		}
		node := root.CreateElement(prefixMHS + ":" + string(cat))

		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			tag := name
			if prefix := cat.fieldPrefix(); prefix != "" {
				tag = prefix + ":" + name
			}
			node.CreateElement(tag).SetText(fields[name])
		}
	}

	return &Document{doc: doc}, nil
}

// Bytes renders the document as UTF-8 bytes, XML declaration included.
// pretty toggles indentation only; element and attribute content never
// changes with it.
func (d *Document) Bytes(pretty bool) ([]byte, error) {
	if d == nil || d.doc == nil {
		return nil, ErrNoDocument
	}
	out := d.doc
	if pretty {
		// Indent mutates, so pretty rendering works on a copy.
		out = d.doc.Copy()
		out.Indent(2)
	}
	b, err := out.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize sidecar: %w", err)
	}
	return b, nil
}

// String renders the document as a string. The bytes are UTF-8 and Go
// strings are UTF-8, so this is exactly Bytes decoded with the encoding the
// XML declaration names.
func (d *Document) String(pretty bool) (string, error) {
	b, err := d.Bytes(pretty)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// validElementName reports whether name can serve as an unprefixed XML
// element name: a letter or underscore first, then letters, digits, hyphens,
// underscores or dots. Colons are rejected so field names cannot smuggle in
// a namespace prefix.
func validElementName(name string) bool {
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return name != ""
}
