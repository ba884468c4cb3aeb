package bank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Van Buren v. United States - Case Brief</title></head>
<body>
<article>
<h1>Van Buren v. United States</h1>
<p>The Supreme Court held that an individual exceeds authorized access when he
accesses a computer with authorization but then obtains information located in
particular areas of the computer that are off limits to him.</p>
<p>The Court adopted a gates-up-or-down reading of the CFAA, rejecting the
broader purpose-based interpretation urged by the government. Under this view,
authorization turns on whether the relevant gate is up or down, not on the
reason the information was accessed.</p>
<p>The decision resolved a long-standing circuit split over the scope of the
phrase exceeds authorized access in 18 U.S.C. 1030.</p>
</article>
</body>
</html>`

func TestAddPageStoresReadableArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	s := NewStore(nil)
	fired := 0
	s.Watch(func() { fired++ })

	m, err := s.AddPage(context.Background(), srv.URL, CategoryReading)
	require.NoError(t, err)

	assert.Equal(t, 1, fired, "one page import is one mutation")
	assert.Equal(t, KindText, m.Kind)
	assert.Contains(t, m.Name, "Van Buren")
	assert.Contains(t, m.Text, "gates-up-or-down")
	assert.Contains(t, m.Text, srv.URL)

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, m.Name, snap[0].Name)
}

func TestAddPageHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewStore(nil)
	_, err := s.AddPage(context.Background(), srv.URL, CategoryReading)
	require.Error(t, err)
	assert.Equal(t, 0, s.Len())
}
