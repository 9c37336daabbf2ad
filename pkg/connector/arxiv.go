package connector

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/inquiro-ai/inquiro/pkg/models"
)

const arxivDefaultBaseURL = "https://export.arxiv.org/api"

// Arxiv searches the arXiv Atom API.
type Arxiv struct {
	baseURL string
	client  *http.Client
}

// NewArxiv creates an arXiv connector. baseURL and client may be empty for
// production defaults.
func NewArxiv(baseURL string, client *http.Client) *Arxiv {
	if baseURL == "" {
		baseURL = arxivDefaultBaseURL
	}
	return &Arxiv{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClientOrDefault(client),
	}
}

// Name implements Connector.
func (a *Arxiv) Name() string { return "arxiv" }

type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID        string `xml:"id"`
	Title     string `xml:"title"`
	Summary   string `xml:"summary"`
	Published string `xml:"published"`
	Authors   []struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Links []struct {
		Href  string `xml:"href,attr"`
		Title string `xml:"title,attr"`
		Type  string `xml:"type,attr"`
	} `xml:"link"`
	DOI string `xml:"doi"`
}

// arxivVersionSuffix matches the trailing vN of an abs URL.
var arxivVersionSuffix = regexp.MustCompile(`v\d+$`)

// Search implements Connector.
func (a *Arxiv) Search(ctx context.Context, query string, opts SearchOptions) ([]models.Source, error) {
	params := url.Values{}
	params.Set("search_query", "all:"+query)
	params.Set("sortBy", "relevance")
	if opts.MaxResults > 0 {
		params.Set("max_results", fmt.Sprintf("%d", opts.MaxResults))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/query?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("arxiv: build request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv: request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arxiv: unexpected status %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("arxiv: decode feed: %w", err)
	}

	sources := make([]models.Source, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		title := collapseWhitespace(e.Title)
		if title == "" {
			continue
		}

		authors := make([]string, 0, len(e.Authors))
		for _, au := range e.Authors {
			if au.Name != "" {
				authors = append(authors, au.Name)
			}
		}

		year := 0
		if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
			year = t.Year()
		}

		pdfURL := ""
		for _, l := range e.Links {
			if l.Title == "pdf" || l.Type == "application/pdf" {
				pdfURL = l.Href
				break
			}
		}

		// Year filtering is client-side: the Atom API has no year filter.
		if opts.YearFrom > 0 && year > 0 && year < opts.YearFrom {
			continue
		}
		if opts.YearTo > 0 && year > 0 && year > opts.YearTo {
			continue
		}

		sources = append(sources, models.Source{
			CanonicalID: models.CanonicalID{
				DOI:     e.DOI,
				ArxivID: arxivIDFromAbsURL(e.ID),
				URL:     e.ID,
			},
			Title:          title,
			Authors:        authors,
			Year:           year,
			Abstract:       collapseWhitespace(e.Summary),
			URL:            e.ID,
			PDFURL:         pdfURL,
			SourceType:     "preprint",
			Connector:      a.Name(),
			CitationsCount: 0,
		})
	}

	// The API honors max_results, but guard against oversized test fixtures.
	if opts.MaxResults > 0 && len(sources) > opts.MaxResults {
		sources = sources[:opts.MaxResults]
	}

	return sources, nil
}

// arxivIDFromAbsURL extracts "2101.00001" from
// "http://arxiv.org/abs/2101.00001v2", dropping the version so different
// versions of a preprint deduplicate.
func arxivIDFromAbsURL(absURL string) string {
	i := strings.Index(absURL, "/abs/")
	if i < 0 {
		return ""
	}
	id := absURL[i+len("/abs/"):]
	return arxivVersionSuffix.ReplaceAllString(id, "")
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
