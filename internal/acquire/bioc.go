// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acquire fetches the inputs of a curation run: a paper's full text
// from the PMC open-access BioC service and a gene's aliases from the gene
// database.
package acquire

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pdiddy/gene-summarizer/internal/httputil"
	"github.com/pdiddy/gene-summarizer/pkg/types"
)

// biocCollection is one BioC collection as returned by the BioC JSON API.
type biocCollection struct {
	Documents []biocDocument `json:"documents"`
}

// biocDocument is one document inside a collection.
type biocDocument struct {
	ID       string        `json:"id"`
	Passages []biocPassage `json:"passages"`
}

// biocPassage carries the passage text and its infons (key/value annotations).
// Only infons["section_type"] is used.
type biocPassage struct {
	Infons map[string]any `json:"infons"`
	Text   *string        `json:"text"`
}

// BioCClient fetches full text from the PMC open-access BioC JSON service.
type BioCClient struct {
	client  *httputil.Client
	baseURL string
	log     *zap.Logger
}

// NewBioCClient returns a client for the service at cfg.BioCURL.
func NewBioCClient(client *httputil.Client, cfg types.SourceConfig, log *zap.Logger) *BioCClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &BioCClient{client: client, baseURL: cfg.BioCURL, log: log}
}

// FetchDocument downloads the BioC record for pubmedID and flattens it into a
// Document. The service answers unknown papers with an HTML page and status
// 200, which is reported as ErrNotFound. Every other failure is a *FetchError.
func (c *BioCClient) FetchDocument(ctx context.Context, pubmedID string) (types.Document, error) {
	url := c.baseURL + pubmedID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.Document{}, &FetchError{Err: eris.Wrap(err, "creating BioC request")}
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("fetching paper", zap.String("pubmed_id", pubmedID), zap.String("url", url))

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return types.Document{}, &FetchError{Err: eris.Wrap(err, "BioC request")}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return types.Document{}, &FetchError{StatusCode: resp.StatusCode}
	}

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		io.Copy(io.Discard, resp.Body)
		return types.Document{}, ErrNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Document{}, &FetchError{Err: eris.Wrap(err, "reading BioC response")}
	}

	collections, err := decodeCollections(body)
	if err != nil {
		return types.Document{}, &FetchError{Err: eris.Wrap(err, "parsing BioC response")}
	}

	doc := flatten(pubmedID, collections)
	c.log.Debug("fetched paper", zap.String("pubmed_id", pubmedID), zap.Int("passages", len(doc.Passages)))
	return doc, nil
}

// decodeCollections accepts either a JSON array of collections or a single
// collection object.
func decodeCollections(body []byte) ([]biocCollection, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var cols []biocCollection
		if err := json.Unmarshal(trimmed, &cols); err != nil {
			return nil, err
		}
		return cols, nil
	}
	var col biocCollection
	if err := json.Unmarshal(trimmed, &col); err != nil {
		return nil, err
	}
	return []biocCollection{col}, nil
}

// flatten walks collections, documents, and passages in source order.
func flatten(pubmedID string, collections []biocCollection) types.Document {
	doc := types.Document{PubMedID: pubmedID}
	for _, col := range collections {
		for _, d := range col.Documents {
			for _, p := range d.Passages {
				section, _ := p.Infons["section_type"].(string)
				doc.Passages = append(doc.Passages, types.Passage{
					Section: section,
					Text:    p.Text,
				})
			}
		}
	}
	return doc
}
