package davprop_test

import (
	"bytes"
	"testing"

	"github.com/lestrrat-go/davprop"
	"github.com/lestrrat-go/davprop/node"
	"github.com/lestrrat-go/davprop/s11n"
	"github.com/stretchr/testify/require"
)

func TestServerContext(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		ctx := davprop.NewServerContext()
		require.Equal(t, "/", ctx.BaseURI())

		p, ok := ctx.NamespacePrefix(davprop.NamespaceDAV)
		require.True(t, ok)
		require.Equal(t, "d", p)

		p, ok = ctx.NamespacePrefix(davprop.NamespaceSabre)
		require.True(t, ok)
		require.Equal(t, "s", p)

		_, ok = ctx.NamespacePrefix("urn:unknown")
		require.False(t, ok)
	})

	t.Run("Base URI gets a trailing slash", func(t *testing.T) {
		require.Equal(t, "/dav/", davprop.NewServerContext(davprop.WithBaseURI("/dav")).BaseURI())
		require.Equal(t, "/dav/", davprop.NewServerContext(davprop.WithBaseURI("/dav/")).BaseURI())
		require.Equal(t, "/", davprop.NewServerContext(davprop.WithBaseURI("")).BaseURI())
	})

	t.Run("Namespace registration", func(t *testing.T) {
		ctx := davprop.NewServerContext(
			davprop.WithNamespace("urn:ietf:params:xml:ns:caldav", "cal"),
			davprop.WithNamespace(davprop.NamespaceDAV, "D"),
		)

		var got []string
		for uri, prefix := range ctx.Namespaces() {
			got = append(got, prefix+"="+uri)
		}
		require.Equal(t, []string{
			"D=DAV:",
			"s=http://sabredav.org/ns",
			"cal=urn:ietf:params:xml:ns:caldav",
		}, got, "re-registering keeps the original position")
	})

	t.Run("WithoutDefaultNamespaces", func(t *testing.T) {
		ctx := davprop.NewServerContext(davprop.WithoutDefaultNamespaces())
		_, ok := ctx.NamespacePrefix(davprop.NamespaceDAV)
		require.False(t, ok)

		n := 0
		for range ctx.Namespaces() {
			n++
		}
		require.Equal(t, 0, n)
	})
}

func TestServerContextNewDocument(t *testing.T) {
	t.Run("Envelope declares every namespace", func(t *testing.T) {
		ctx := davprop.NewServerContext(davprop.WithBaseURI("/dav/"))
		doc, root, err := ctx.NewDocument("multistatus")
		require.NoError(t, err)
		require.Equal(t, root, doc.DocumentElement())
		require.Equal(t, "{DAV:}multistatus", node.ClarkName(root))

		require.NoError(t, davprop.NewHref("a b").Encode(ctx, root))

		var buf bytes.Buffer
		d := s11n.Dumper{}
		require.NoError(t, d.DumpDoc(&buf, doc))
		require.Equal(t,
			"<?xml version=\"1.0\"?>\n"+
				`<d:multistatus xmlns:d="DAV:" xmlns:s="http://sabredav.org/ns"><d:href>/dav/a%20b</d:href></d:multistatus>`+"\n",
			buf.String(),
		)
	})

	t.Run("Missing DAV: prefix", func(t *testing.T) {
		ctx := davprop.NewServerContext(davprop.WithoutDefaultNamespaces())
		_, _, err := ctx.NewDocument("prop")

		var cerr *davprop.ConfigurationError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("Conflicting prefixes", func(t *testing.T) {
		ctx := davprop.NewServerContext(davprop.WithNamespace("urn:other", "d"))
		_, _, err := ctx.NewDocument("prop")
		require.Error(t, err)
	})
}
