package nsstack_test

import (
	"testing"

	"github.com/lestrrat-go/davprop/internal/nsstack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNsStack(t *testing.T) {
	s := nsstack.New()
	s.Push("D", "DAV:")
	s.Push("ds", "http://www.w3.org/2000/09/xmldsig#")

	if !assert.Equal(t, 2, s.Len(), "Len == 2") {
		return
	}

	uri, ok := s.Lookup("ds")
	if !assert.True(t, ok, `Lookup("ds") succeeds`) {
		return
	}
	if !assert.Equal(t, "http://www.w3.org/2000/09/xmldsig#", uri, `Lookup("ds") returns the uri`) {
		return
	}

	s.Pop()
	if !assert.Equal(t, 1, s.Len(), "Len == 1") {
		return
	}

	_, ok = s.Lookup("ds")
	if !assert.False(t, ok, `Lookup("ds") fails`) {
		return
	}

	s.Pop(2)
	require.Equal(t, 0, s.Len(), "Pop past the bottom empties the stack")
}

func TestNsStackScopes(t *testing.T) {
	s := nsstack.New()

	s.PushScope()
	s.Push("D", "DAV:")
	s.Push("", "urn:outer")

	s.PushScope()
	s.Push("D", "urn:shadow")
	s.Push("", "")

	uri, ok := s.Lookup("D")
	require.True(t, ok)
	require.Equal(t, "urn:shadow", uri, "inner binding shadows the outer one")

	_, ok = s.Lookup("")
	require.False(t, ok, "empty default namespace undeclares it")

	s.PopScope()
	uri, ok = s.Lookup("D")
	require.True(t, ok)
	require.Equal(t, "DAV:", uri, "outer binding is restored")

	uri, ok = s.Lookup("")
	require.True(t, ok)
	require.Equal(t, "urn:outer", uri)

	s.PopScope()
	require.Equal(t, 0, s.Len())

	s.PopScope() // no-op on an empty stack
}

func TestNsStackXMLPrefix(t *testing.T) {
	s := nsstack.New()
	uri, ok := s.Lookup("xml")
	require.True(t, ok)
	require.Equal(t, nsstack.XMLNamespace, uri)
}
