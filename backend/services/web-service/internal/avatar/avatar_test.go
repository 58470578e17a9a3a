package avatar

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	got := URL("Ayesha Khan")
	require.Equal(t, "https://ui-avatars.com/api/?name=Ayesha+Khan&background=random&size=128", got)
	require.Equal(t, got, URL("Ayesha Khan"))

	u, err := url.Parse(URL("Zoë & Co/Partners"))
	require.NoError(t, err)
	require.Equal(t, "Zoë & Co/Partners", u.Query().Get("name"))
	require.Equal(t, "random", u.Query().Get("background"))
}

func TestURL_BlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		u, err := url.Parse(URL(name))
		require.NoError(t, err)
		require.Equal(t, FallbackName, u.Query().Get("name"))
	}
}
