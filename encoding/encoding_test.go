package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/lestrrat-go/davprop/encoding"
	"github.com/stretchr/testify/require"
)

func TestISO88591(t *testing.T) {
	e := encoding.Load("iso-8859-1")
	require.NotNil(t, e, `Load("iso-8859-1") should succeed`)

	dec := e.NewDecoder()
	enc := e.NewEncoder()
	for i := 0; i <= 255; i++ {
		if i >= 0x80 && i <= 0x9f {
			continue
		}
		v := string([]byte{byte(i)})
		s, err := dec.String(v)
		require.NoError(t, err, "decoding %#x should succeed", v)

		v1, err := enc.String(s)
		require.NoError(t, err, "encoding '%s' should succeed", s)
		require.Equal(t, v, v1, "round trip of %#x", v)
	}
}

func TestLoadUnknown(t *testing.T) {
	require.Nil(t, encoding.Load("x-no-such-charset"))
}

func TestCharsetReader(t *testing.T) {
	t.Run("UTF8 passthrough", func(t *testing.T) {
		in := strings.NewReader("/dav/café")
		r, err := encoding.CharsetReader("UTF-8", in)
		require.NoError(t, err)
		require.Equal(t, in, r, "UTF-8 input is returned as-is")
	})
	t.Run("Latin1", func(t *testing.T) {
		r, err := encoding.CharsetReader("ISO-8859-1", bytes.NewReader([]byte{'c', 'a', 'f', 0xE9}))
		require.NoError(t, err)
		buf, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, "café", string(buf))
	})
	t.Run("Unsupported", func(t *testing.T) {
		_, err := encoding.CharsetReader("x-no-such-charset", strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestCharsetWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := encoding.CharsetWriter("iso-8859-1", &buf)
	require.NoError(t, err)
	_, err = io.WriteString(w, "café")
	require.NoError(t, err)
	require.Equal(t, []byte{'c', 'a', 'f', 0xE9}, buf.Bytes())
}
