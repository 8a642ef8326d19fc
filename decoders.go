package davprop

import (
	"github.com/lestrrat-go/davprop/node"
	"github.com/lestrrat-go/pdebug/v3"
)

// Decoders is a list of candidate decoders, tried in order
type Decoders []Decodable

// Decode returns the value produced by the first decoder that
// accepts elem. If none does, false is returned.
func (l Decoders) Decode(elem *node.Element, pm PropertyMap) (Encodable, bool) {
	for i, d := range l {
		if d == nil {
			continue
		}
		if v, ok := d.Decode(elem, pm); ok {
			if pdebug.Enabled {
				pdebug.Printf("decoder #%d accepted '%s'", i, node.ClarkName(elem))
			}
			return v, true
		}
	}
	return nil, false
}
