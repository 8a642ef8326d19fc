// Package davprop implements WebDAV property values and their mapping
// to and from namespace qualified XML elements.
//
// A property value is written into a document with Encode, and read
// back out of an element by a Decodable. Decodables signal "this
// element is not mine" by returning false rather than an error, so that
// a caller can try several of them in turn (see Decoders).
package davprop

import (
	"errors"

	"github.com/lestrrat-go/davprop/node"
)

const Version = "v0.1.0"

// NamespaceDAV is the namespace of the core WebDAV vocabulary
const NamespaceDAV = "DAV:"

// NamespaceSabre is the namespace the server uses for its own extensions
const NamespaceSabre = "http://sabredav.org/ns"

var ErrNilNode = errors.New("nil node")

// Context is what a property value needs to know about the server
// while it is being serialized.
type Context interface {
	// NamespacePrefix returns the short prefix registered for uri.
	// The second return value is false when uri has no prefix.
	NamespacePrefix(uri string) (string, bool)
	// BaseURI returns the URI the server is mounted at
	BaseURI() string
}

// Encodable is implemented by property values that can write
// themselves into a document.
type Encodable interface {
	// Encode appends the XML representation of the value to parent
	Encode(ctx Context, parent node.Node) error
}

// Decodable builds a property value out of an element. If the element
// does not have the shape the decoder expects, it returns false.
type Decodable interface {
	Decode(elem *node.Element, pm PropertyMap) (Encodable, bool)
}

type DecodableFunc func(*node.Element, PropertyMap) (Encodable, bool)

func (f DecodableFunc) Decode(elem *node.Element, pm PropertyMap) (Encodable, bool) {
	return f(elem, pm)
}

// PropertyMap maps property names in clark notation to the decoders
// responsible for them.
type PropertyMap map[string]Decodable

// Referrer is implemented by property values that point at a resource
type Referrer interface {
	Reference() string
}

// ConfigurationError is returned when the serialization context is
// missing something a property value cannot do without. It indicates
// a setup problem on the caller's side.
type ConfigurationError struct {
	Namespace string
}

func (e *ConfigurationError) Error() string {
	return `no prefix registered for namespace '` + e.Namespace + `'`
}
