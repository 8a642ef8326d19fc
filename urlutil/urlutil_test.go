package urlutil_test

import (
	"testing"

	"github.com/lestrrat-go/davprop/urlutil"
	"github.com/stretchr/testify/require"
)

func TestEncodePath(t *testing.T) {
	t.Run("Unreserved characters are kept", func(t *testing.T) {
		const path = "foo/bar_baz-1.0~(x):user@host"
		require.Equal(t, path, urlutil.EncodePath(path))
	})
	t.Run("Spaces and reserved characters", func(t *testing.T) {
		require.Equal(t, "/my%20file%23%3f.txt", urlutil.EncodePath("/my file#?.txt"))
	})
	t.Run("Percent is escaped", func(t *testing.T) {
		require.Equal(t, "100%25", urlutil.EncodePath("100%"))
	})
	t.Run("Multibyte characters are escaped per byte", func(t *testing.T) {
		require.Equal(t, "caf%c3%a9", urlutil.EncodePath("café"))
	})
	t.Run("Hex digits are lowercase", func(t *testing.T) {
		require.Equal(t, "%5b%5d%7b%7d", urlutil.EncodePath("[]{}"))
	})
	t.Run("Empty", func(t *testing.T) {
		require.Equal(t, "", urlutil.EncodePath(""))
	})
}

func TestDecodePath(t *testing.T) {
	t.Run("Reverses EncodePath", func(t *testing.T) {
		for _, path := range []string{"/my file#?.txt", "café/ü", "100%", "plain/path"} {
			require.Equal(t, path, urlutil.DecodePath(urlutil.EncodePath(path)), "round trip of %q", path)
		}
	})
	t.Run("Either hex case", func(t *testing.T) {
		require.Equal(t, "a b", urlutil.DecodePath("a%20b"))
		require.Equal(t, "é", urlutil.DecodePath("%c3%a9"))
		require.Equal(t, "é", urlutil.DecodePath("%C3%A9"))
	})
	t.Run("Malformed escapes are kept", func(t *testing.T) {
		require.Equal(t, "%zz/%4", urlutil.DecodePath("%zz/%4"))
	})
}
