package davprop

import (
	"github.com/lestrrat-go/davprop/node"
	"github.com/lestrrat-go/davprop/urlutil"
	"github.com/lestrrat-go/pdebug/v3"
)

// ClarkHref is the name of the element wrapping an href value
const ClarkHref = "{" + NamespaceDAV + "}href"

// Href is a property whose value is a URI reference, represented as
// a {DAV:}href element. The reference may be a path relative to the
// server's base URI, or a complete URL.
type Href struct {
	reference  string
	autoPrefix bool
}

var _ Encodable = (*Href)(nil)
var _ Referrer = (*Href)(nil)

// HrefDecoder is DecodeHref as a Decodable
var HrefDecoder Decodable = DecodableFunc(func(elem *node.Element, pm PropertyMap) (Encodable, bool) {
	h, ok := DecodeHref(elem, pm)
	if !ok {
		return nil, false
	}
	return h, true
})

// NewHref creates a new Href. The reference is not validated: empty
// strings and absolute URLs are accepted as-is.
func NewHref(reference string, options ...HrefOption) *Href {
	autoPrefix := true
	for _, option := range options {
		switch option.Ident() {
		case identAutoPrefix{}:
			autoPrefix = option.Value().(bool)
		}
	}

	return &Href{
		reference:  reference,
		autoPrefix: autoPrefix,
	}
}

// Reference returns the reference exactly as it was given
func (h *Href) Reference() string {
	return h.reference
}

// AutoPrefix reports whether Encode prepends the base URI and path
// encodes the reference
func (h *Href) AutoPrefix() bool {
	return h.autoPrefix
}

// String returns the reference, so that an Href prints as its target
func (h *Href) String() string {
	return h.reference
}

// Encode appends a {DAV:}href element to parent. When auto-prefixing
// is enabled the text is the context's base URI followed by the path
// encoded reference; otherwise it is the reference verbatim.
//
// If the context has no prefix for the DAV: namespace a
// *ConfigurationError is returned, and parent is left untouched.
func (h *Href) Encode(ctx Context, parent node.Node) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if parent == nil {
		return ErrNilNode
	}

	prefix, ok := ctx.NamespacePrefix(NamespaceDAV)
	if !ok {
		return &ConfigurationError{Namespace: NamespaceDAV}
	}

	var elem *node.Element
	if doc := parent.OwnerDocument(); doc != nil {
		elem = doc.CreateElementNS(NamespaceDAV, prefix, "href")
	} else {
		elem = node.NewElement("href")
		if err := elem.SetNamespace(prefix, NamespaceDAV, false); err != nil {
			return err
		}
	}

	value := h.reference
	if h.autoPrefix {
		value = ctx.BaseURI() + urlutil.EncodePath(h.reference)
	}
	if pdebug.Enabled {
		pdebug.Printf("href value '%s' (autoPrefix=%t)", value, h.autoPrefix)
	}

	if err := elem.AddContent([]byte(value)); err != nil {
		return err
	}
	return parent.AddChild(elem)
}

// DecodeHref reads an Href out of elem, whose first child must be a
// {DAV:}href element. The text of that element is used verbatim, and
// the returned Href never auto-prefixes, since a reference read from
// the wire is already resolved.
//
// If elem does not have that shape, false is returned. pm is unused.
func DecodeHref(elem *node.Element, _ PropertyMap) (*Href, bool) {
	if elem == nil {
		return nil, false
	}

	first := elem.FirstChild()
	if first == nil || node.ClarkName(first) != ClarkHref {
		return nil, false
	}

	return NewHref(node.TextContent(first), WithAutoPrefix(false)), true
}
