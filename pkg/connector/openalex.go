package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/inquiro-ai/inquiro/pkg/models"
)

const openAlexDefaultBaseURL = "https://api.openalex.org"

// OpenAlex searches the OpenAlex works catalog.
type OpenAlex struct {
	baseURL string
	client  *http.Client
	mailto  string
}

// NewOpenAlex creates an OpenAlex connector. baseURL and client may be empty
// for production defaults; mailto joins OpenAlex's polite pool when set.
func NewOpenAlex(baseURL string, client *http.Client, mailto string) *OpenAlex {
	if baseURL == "" {
		baseURL = openAlexDefaultBaseURL
	}
	return &OpenAlex{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClientOrDefault(client),
		mailto:  mailto,
	}
}

// Name implements Connector.
func (o *OpenAlex) Name() string { return "openalex" }

type openAlexResponse struct {
	Results []openAlexWork `json:"results"`
}

type openAlexWork struct {
	ID                    string           `json:"id"`
	DOI                   string           `json:"doi"`
	Title                 string           `json:"title"`
	DisplayName           string           `json:"display_name"`
	PublicationYear       int              `json:"publication_year"`
	CitedByCount          int              `json:"cited_by_count"`
	AbstractInvertedIndex map[string][]int `json:"abstract_inverted_index"`
	Authorships           []struct {
		Author struct {
			DisplayName string `json:"display_name"`
		} `json:"author"`
	} `json:"authorships"`
	PrimaryLocation struct {
		LandingPageURL string `json:"landing_page_url"`
		PdfURL         string `json:"pdf_url"`
	} `json:"primary_location"`
	IDs struct {
		OpenAlex string `json:"openalex"`
	} `json:"ids"`
}

// Search implements Connector.
func (o *OpenAlex) Search(ctx context.Context, query string, opts SearchOptions) ([]models.Source, error) {
	params := url.Values{}
	params.Set("search", query)
	if opts.MaxResults > 0 {
		params.Set("per-page", fmt.Sprintf("%d", opts.MaxResults))
	}
	var filters []string
	if opts.YearFrom > 0 {
		filters = append(filters, fmt.Sprintf("from_publication_date:%d-01-01", opts.YearFrom))
	}
	if opts.YearTo > 0 {
		filters = append(filters, fmt.Sprintf("to_publication_date:%d-12-31", opts.YearTo))
	}
	if len(filters) > 0 {
		params.Set("filter", strings.Join(filters, ","))
	}
	if o.mailto != "" {
		params.Set("mailto", o.mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/works?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("openalex: build request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openalex: request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openalex: unexpected status %d", resp.StatusCode)
	}

	var body openAlexResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("openalex: decode response: %w", err)
	}

	sources := make([]models.Source, 0, len(body.Results))
	for _, w := range body.Results {
		title := w.Title
		if title == "" {
			title = w.DisplayName
		}
		if title == "" {
			continue
		}

		authors := make([]string, 0, len(w.Authorships))
		for _, a := range w.Authorships {
			if a.Author.DisplayName != "" {
				authors = append(authors, a.Author.DisplayName)
			}
		}

		src := models.Source{
			CanonicalID: models.CanonicalID{
				DOI:        normalizeDOI(w.DOI),
				OpenAlexID: openAlexShortID(w.ID, w.IDs.OpenAlex),
				URL:        w.PrimaryLocation.LandingPageURL,
			},
			Title:          title,
			Authors:        authors,
			Year:           w.PublicationYear,
			Abstract:       reconstructAbstract(w.AbstractInvertedIndex),
			URL:            w.PrimaryLocation.LandingPageURL,
			PDFURL:         w.PrimaryLocation.PdfURL,
			SourceType:     "paper",
			Connector:      o.Name(),
			CitationsCount: w.CitedByCount,
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// reconstructAbstract rebuilds plain text from OpenAlex's inverted index.
func reconstructAbstract(index map[string][]int) string {
	if len(index) == 0 {
		return ""
	}
	type posWord struct {
		pos  int
		word string
	}
	var words []posWord
	for word, positions := range index {
		for _, p := range positions {
			words = append(words, posWord{pos: p, word: word})
		}
	}
	sort.Slice(words, func(i, j int) bool { return words[i].pos < words[j].pos })

	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.word
	}
	return strings.Join(parts, " ")
}

// normalizeDOI strips the https://doi.org/ prefix OpenAlex returns.
func normalizeDOI(doi string) string {
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	return doi
}

// openAlexShortID reduces a work URL (https://openalex.org/W123) to W123.
func openAlexShortID(ids ...string) string {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if i := strings.LastIndex(id, "/"); i >= 0 {
			id = id[i+1:]
		}
		return id
	}
	return ""
}
