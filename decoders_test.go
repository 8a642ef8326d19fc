package davprop_test

import (
	"context"
	"testing"

	"github.com/lestrrat-go/davprop"
	"github.com/lestrrat-go/davprop/node"
	"github.com/lestrrat-go/davprop/parser"
	"github.com/stretchr/testify/require"
)

type status string

func (s status) Encode(_ davprop.Context, parent node.Node) error {
	return parent.AddContent([]byte(s))
}

var statusDecoder = davprop.DecodableFunc(func(elem *node.Element, _ davprop.PropertyMap) (davprop.Encodable, bool) {
	first := elem.FirstChild()
	if node.ClarkName(first) != "{DAV:}status" {
		return nil, false
	}
	return status(node.TextContent(first)), true
})

func TestDecoders(t *testing.T) {
	decoders := davprop.Decoders{nil, davprop.HrefDecoder, statusDecoder}

	t.Run("First match wins", func(t *testing.T) {
		doc, err := parser.Parse(context.Background(), []byte(`<p xmlns:D="DAV:"><D:href>/x</D:href></p>`))
		require.NoError(t, err)

		v, ok := decoders.Decode(doc.DocumentElement(), nil)
		require.True(t, ok)
		ref, ok := v.(davprop.Referrer)
		require.True(t, ok, "decoded value is an href")
		require.Equal(t, "/x", ref.Reference())
	})

	t.Run("Falls through to the next decoder", func(t *testing.T) {
		doc, err := parser.Parse(context.Background(), []byte(`<p xmlns:D="DAV:"><D:status>HTTP/1.1 200 OK</D:status></p>`))
		require.NoError(t, err)

		v, ok := decoders.Decode(doc.DocumentElement(), nil)
		require.True(t, ok)
		require.Equal(t, status("HTTP/1.1 200 OK"), v)
	})

	t.Run("No decoder matches", func(t *testing.T) {
		doc, err := parser.Parse(context.Background(), []byte(`<p xmlns:D="DAV:"><D:response/></p>`))
		require.NoError(t, err)

		v, ok := decoders.Decode(doc.DocumentElement(), nil)
		require.False(t, ok)
		require.Nil(t, v)
	})

	t.Run("HrefDecoder does not return a typed nil", func(t *testing.T) {
		doc := node.NewDocument()
		v, ok := davprop.HrefDecoder.Decode(doc.CreateElement("empty"), nil)
		require.False(t, ok)
		require.True(t, v == nil)
	})
}
