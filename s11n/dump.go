// Package s11n writes node trees out as XML text.
package s11n

import (
	"io"

	"github.com/lestrrat-go/davprop/encoding"
	"github.com/lestrrat-go/davprop/node"
	"github.com/pkg/errors"
)

type Dumper struct{}

// DumpDoc writes the XML declaration followed by every top level
// node of doc. Output is converted to the document's encoding.
func (d *Dumper) DumpDoc(out io.Writer, doc *node.Document) error {
	w, err := encoding.CharsetWriter(doc.Encoding(), out)
	if err != nil {
		return errors.Wrap(err, `failed to prepare output`)
	}

	if err := d.DumpNode(w, doc); err != nil {
		return err
	}

	for e := doc.FirstChild(); e != nil; e = e.NextSibling() {
		if err := d.DumpNode(w, e); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	// flush whatever the charset converter is still holding on to
	if c, ok := w.(io.Closer); ok && !encoding.IsUTF8(doc.Encoding()) {
		return c.Close()
	}
	return nil
}

func (d *Dumper) dumpDocContent(out io.Writer, doc *node.Document) error {
	_, _ = io.WriteString(out, `<?xml version="`)
	version := doc.Version()
	if version == "" {
		version = "1.0"
	}
	_, _ = io.WriteString(out, version+`"`)

	if enc := doc.Encoding(); !encoding.IsUTF8(enc) {
		_, _ = io.WriteString(out, ` encoding="`+enc+`"`)
	}

	switch doc.Standalone() {
	case node.StandaloneExplicitNo:
		_, _ = io.WriteString(out, ` standalone="no"`)
	case node.StandaloneExplicitYes:
		_, _ = io.WriteString(out, ` standalone="yes"`)
	}
	_, err := io.WriteString(out, "?>\n")
	return err
}

func (d *Dumper) dumpNs(out io.Writer, ns *node.Namespace) error {
	_, _ = io.WriteString(out, " "+ns.DeclarationName()+`="`)
	if err := EscapeAttrValue(out, []byte(ns.URI())); err != nil {
		return err
	}
	_, err := io.WriteString(out, `"`)
	return err
}

func (d *Dumper) dumpAttribute(out io.Writer, attr *node.Attribute) error {
	_, _ = io.WriteString(out, " "+attr.Name()+`="`)
	if err := EscapeAttrValue(out, []byte(attr.Value())); err != nil {
		return err
	}
	_, err := io.WriteString(out, `"`)
	return err
}

// DumpNode writes n and its descendants to out
func (d *Dumper) DumpNode(out io.Writer, n node.Node) error {
	switch n := n.(type) {
	case *node.Document:
		return d.dumpDocContent(out, n)
	case *node.Comment:
		_, _ = io.WriteString(out, "<!--")
		content, err := n.Content(nil)
		if err != nil {
			return err
		}
		_, _ = out.Write(content)
		_, err = io.WriteString(out, "-->")
		return err
	case *node.Text:
		c, err := n.Content(nil)
		if err != nil {
			return err
		}
		return EscapeText(out, c, false)
	case *node.Element:
		return d.dumpElement(out, n)
	}
	return errors.Errorf(`cannot dump node of type %s`, n.Type())
}

func (d *Dumper) dumpElement(out io.Writer, e *node.Element) error {
	name := e.Name()

	_, _ = io.WriteString(out, "<")
	_, _ = io.WriteString(out, name)

	for ns := range e.Namespaces() {
		if err := d.dumpNs(out, ns); err != nil {
			return err
		}
	}

	for _, attr := range e.Attributes(nil) {
		if err := d.dumpAttribute(out, attr); err != nil {
			return err
		}
	}

	if e.FirstChild() == nil {
		_, err := io.WriteString(out, "/>")
		return err
	}

	_, _ = io.WriteString(out, ">")

	for child := e.FirstChild(); child != nil; child = child.NextSibling() {
		if err := d.DumpNode(out, child); err != nil {
			return err
		}
	}

	_, _ = io.WriteString(out, "</")
	_, _ = io.WriteString(out, name)
	_, err := io.WriteString(out, ">")
	return err
}
