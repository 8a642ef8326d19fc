// Package parser builds node trees out of XML documents, such as the
// bodies of PROPFIND and PROPPATCH requests.
package parser

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/lestrrat-go/davprop/encoding"
	"github.com/lestrrat-go/davprop/internal/nsstack"
	"github.com/lestrrat-go/davprop/node"
	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
)

// Parse parses the given []byte buffer and creates a Document object.
// Namespace prefixes are resolved while parsing, so every element in
// the resulting tree knows the namespace URI it belongs to.
func Parse(ctx context.Context, data []byte, options ...ParseOption) (*node.Document, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	var noBlanks bool
	var charset string
	for _, option := range options {
		switch option.Ident() {
		case identNoBlanks{}:
			noBlanks = option.Value().(bool)
		case identCharset{}:
			charset = option.Value().(string)
		}
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.CharsetReader = encoding.CharsetReader
	if charset != "" && !encoding.IsUTF8(charset) {
		e := encoding.Load(charset)
		if e == nil {
			return nil, errors.Errorf(`unsupported charset '%s'`, charset)
		}
		converted, err := e.NewDecoder().Bytes(data)
		if err != nil {
			return nil, errors.Wrapf(err, `failed to decode input as '%s'`, charset)
		}
		dec = xml.NewDecoder(bytes.NewReader(converted))
		dec.Strict = true
		// the input has already been converted, so whatever the XML
		// declaration claims must not trigger a second conversion
		dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
			return input, nil
		}
	}

	b := &builder{
		doc:      node.NewDocumentWithOptions("1.0", "", node.StandaloneNoXMLDecl),
		dec:      dec,
		ns:       nsstack.New(),
		noBlanks: noBlanks,
	}
	if err := b.run(ctx); err != nil {
		return nil, errors.Wrap(err, `failed to parse document`)
	}
	if charset != "" {
		b.doc.SetEncoding(charset)
	}
	return b.doc, nil
}

type builder struct {
	doc      *node.Document
	dec      *xml.Decoder
	ns       *nsstack.Stack
	open     []*node.Element
	pending  []byte
	noBlanks bool
}

func (b *builder) errorf(f string, args ...interface{}) error {
	line, col := b.dec.InputPos()
	return ParseError{
		Err:        errors.Errorf(f, args...),
		LineNumber: line,
		Column:     col,
	}
}

func (b *builder) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tok, err := b.dec.RawToken()
		if err != nil {
			if err == io.EOF {
				return b.finish()
			}
			return err
		}

		if _, ok := tok.(xml.CharData); !ok {
			if err := b.flushText(); err != nil {
				return err
			}
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			if err := b.startElement(tok); err != nil {
				return err
			}
		case xml.EndElement:
			if err := b.endElement(tok); err != nil {
				return err
			}
		case xml.CharData:
			if err := b.charData(tok); err != nil {
				return err
			}
		case xml.Comment:
			if err := b.appendChild(b.doc.CreateComment(tok)); err != nil {
				return err
			}
		case xml.ProcInst:
			if tok.Target == "xml" {
				b.xmlDecl(string(tok.Inst))
				continue
			}
			if pdebug.Enabled {
				pdebug.Printf("skipping processing instruction '%s'", tok.Target)
			}
		case xml.Directive:
			if pdebug.Enabled {
				pdebug.Printf("skipping directive '%s'", tok)
			}
		}
	}
}

func (b *builder) finish() error {
	if l := len(b.open); l > 0 {
		return b.errorf(`premature end of data in tag '%s'`, b.open[l-1].Name())
	}
	if b.doc.DocumentElement() == nil {
		return b.errorf(`document is empty`)
	}
	return nil
}

func (b *builder) current() node.Node {
	if l := len(b.open); l > 0 {
		return b.open[l-1]
	}
	return b.doc
}

func (b *builder) appendChild(n node.Node) error {
	return b.current().AddChild(n)
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

func (b *builder) startElement(tok xml.StartElement) error {
	if len(b.open) == 0 && b.doc.DocumentElement() != nil {
		return b.errorf(`extra content at the end of the document`)
	}

	b.ns.PushScope()

	type decl struct{ prefix, uri string }
	var decls []decl
	for _, attr := range tok.Attr {
		switch {
		case attr.Name.Space == "xmlns":
			if attr.Value == "" {
				return b.errorf(`empty namespace uri for prefix '%s'`, attr.Name.Local)
			}
			decls = append(decls, decl{prefix: attr.Name.Local, uri: attr.Value})
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			decls = append(decls, decl{uri: attr.Value})
		default:
			continue
		}
		last := decls[len(decls)-1]
		b.ns.Push(last.prefix, last.uri)
	}

	elem := b.doc.CreateElement(tok.Name.Local)
	uri, ok := b.ns.Lookup(tok.Name.Space)
	switch {
	case ok:
		if err := elem.SetNamespace(tok.Name.Space, uri, false); err != nil {
			return err
		}
	case tok.Name.Space != "":
		return b.errorf(`namespace prefix '%s' for '%s' is not defined`, tok.Name.Space, tok.Name.Local)
	}

	for _, d := range decls {
		if err := elem.DeclareNamespace(d.prefix, d.uri); err != nil {
			return b.errorf(`%s`, err)
		}
	}

	for _, attr := range tok.Attr {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		if p := attr.Name.Space; p != "" {
			if _, ok := b.ns.Lookup(p); !ok {
				return b.errorf(`namespace prefix '%s' for attribute '%s' is not defined`, p, attr.Name.Local)
			}
		}
		if err := elem.SetAttribute(qualifiedName(attr.Name), attr.Value); err != nil {
			return b.errorf(`attribute '%s' redefined`, qualifiedName(attr.Name))
		}
	}

	if err := b.appendChild(elem); err != nil {
		return err
	}
	b.open = append(b.open, elem)

	if pdebug.Enabled {
		pdebug.Printf("start element '%s'", node.ClarkName(elem))
	}
	return nil
}

func (b *builder) endElement(tok xml.EndElement) error {
	l := len(b.open)
	if l == 0 {
		return b.errorf(`unexpected end tag '%s'`, qualifiedName(tok.Name))
	}

	elem := b.open[l-1]
	if name := qualifiedName(tok.Name); name != elem.Name() {
		return b.errorf(`opening and ending tag mismatch: '%s' and '%s'`, elem.Name(), name)
	}
	b.open = b.open[:l-1]
	b.ns.PopScope()
	return nil
}

func (b *builder) charData(tok xml.CharData) error {
	if len(b.open) == 0 {
		if len(bytes.TrimSpace(tok)) > 0 {
			return b.errorf(`content is not allowed outside of the document element`)
		}
		return nil
	}
	b.pending = append(b.pending, tok...)
	return nil
}

func (b *builder) flushText() error {
	if len(b.pending) == 0 {
		return nil
	}

	txt := b.doc.CreateText(b.pending)
	b.pending = b.pending[:0]
	if b.noBlanks && txt.IsBlank() {
		return nil
	}
	return b.appendChild(txt)
}

func (b *builder) xmlDecl(content string) {
	if v := procInstParam("version", content); v != "" {
		b.doc.SetVersion(v)
	}
	if v := procInstParam("encoding", content); v != "" {
		b.doc.SetEncoding(v)
	}
	switch procInstParam("standalone", content) {
	case "yes":
		b.doc.SetStandalone(node.StandaloneExplicitYes)
	case "no":
		b.doc.SetStandalone(node.StandaloneExplicitNo)
	default:
		b.doc.SetStandalone(node.StandaloneImplicitNo)
	}
}

// procInstParam extracts the value of param from the content of an
// XML declaration, e.g. version="1.0"
func procInstParam(param, s string) string {
	idx := strings.Index(s, param+"=")
	if idx < 0 {
		return ""
	}
	v := s[idx+len(param)+1:]
	if v == "" {
		return ""
	}
	q := v[0]
	if q != '\'' && q != '"' {
		return ""
	}
	end := strings.IndexByte(v[1:], q)
	if end < 0 {
		return ""
	}
	return v[1 : end+1]
}
