package connector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openAlexFixture = `{
  "results": [
    {
      "id": "https://openalex.org/W2741809807",
      "doi": "https://doi.org/10.1234/sleep.2020.001",
      "title": "Sleep and Memory Consolidation",
      "publication_year": 2020,
      "cited_by_count": 412,
      "abstract_inverted_index": {"Sleep": [0], "supports": [1], "memory.": [2]},
      "authorships": [
        {"author": {"display_name": "A. Researcher"}},
        {"author": {"display_name": "B. Scientist"}}
      ],
      "primary_location": {
        "landing_page_url": "https://example.org/sleep",
        "pdf_url": "https://example.org/sleep.pdf"
      },
      "ids": {"openalex": "https://openalex.org/W2741809807"}
    },
    {
      "id": "https://openalex.org/W99",
      "title": "",
      "display_name": "",
      "publication_year": 2021
    }
  ]
}`

func TestOpenAlex_Search(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/works", r.URL.Path)
		gotQuery = r.URL.Query().Get("search")
		assert.Equal(t, "25", r.URL.Query().Get("per-page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(openAlexFixture))
	}))
	defer srv.Close()

	c := NewOpenAlex(srv.URL, srv.Client(), "")
	sources, err := c.Search(context.Background(), "sleep memory", SearchOptions{MaxResults: 25})
	require.NoError(t, err)
	assert.Equal(t, "sleep memory", gotQuery)

	// Untitled works are skipped.
	require.Len(t, sources, 1)
	src := sources[0]
	assert.Equal(t, "10.1234/sleep.2020.001", src.CanonicalID.DOI)
	assert.Equal(t, "W2741809807", src.CanonicalID.OpenAlexID)
	assert.Equal(t, "doi:10.1234/sleep.2020.001", src.CanonicalID.Key())
	assert.Equal(t, "Sleep and Memory Consolidation", src.Title)
	assert.Equal(t, []string{"A. Researcher", "B. Scientist"}, src.Authors)
	assert.Equal(t, 2020, src.Year)
	assert.Equal(t, "Sleep supports memory.", src.Abstract)
	assert.Equal(t, 412, src.CitationsCount)
	assert.Equal(t, "openalex", src.Connector)
}

func TestOpenAlex_SearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewOpenAlex(srv.URL, srv.Client(), "")
	_, err := c.Search(context.Background(), "q", SearchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

const arxivFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2101.00001v2</id>
    <title>Deep   Sleep
      Networks</title>
    <summary>  A study of sleep.  </summary>
    <published>2021-01-02T00:00:00Z</published>
    <author><name>C. Author</name></author>
    <link href="http://arxiv.org/pdf/2101.00001v2" title="pdf" type="application/pdf"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/1801.99999v1</id>
    <title>Old Paper</title>
    <summary>Too old.</summary>
    <published>2018-06-01T00:00:00Z</published>
    <author><name>D. Author</name></author>
  </entry>
</feed>`

func TestArxiv_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "all:sleep networks", r.URL.Query().Get("search_query"))
		w.Header().Set("Content-Type", "application/atom+xml")
		_, _ = w.Write([]byte(arxivFixture))
	}))
	defer srv.Close()

	c := NewArxiv(srv.URL, srv.Client())
	sources, err := c.Search(context.Background(), "sleep networks", SearchOptions{
		MaxResults: 10,
		YearFrom:   2020,
	})
	require.NoError(t, err)

	// The 2018 entry falls outside the year window.
	require.Len(t, sources, 1)
	src := sources[0]
	assert.Equal(t, "2101.00001", src.CanonicalID.ArxivID)
	assert.Equal(t, "arxiv:2101.00001", src.CanonicalID.Key())
	assert.Equal(t, "Deep Sleep Networks", src.Title)
	assert.Equal(t, "A study of sleep.", src.Abstract)
	assert.Equal(t, 2021, src.Year)
	assert.Equal(t, "http://arxiv.org/pdf/2101.00001v2", src.PDFURL)
	assert.Equal(t, "preprint", src.SourceType)
}
