// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pdiddy/gene-summarizer/internal/httputil"
	"github.com/pdiddy/gene-summarizer/pkg/types"
)

// aliasTables are the record tables requested from the gene database.
var aliasTables = []string{"AllProducts", "Alias"}

// aliasRequest is the record-service request body (VEuPathDB record API).
type aliasRequest struct {
	Attributes []string          `json:"attributes"`
	PrimaryKey []aliasPrimaryKey `json:"primaryKey"`
	Tables     []string          `json:"tables"`
}

type aliasPrimaryKey struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// aliasResponse captures the Alias table of a gene record.
type aliasResponse struct {
	Tables struct {
		Alias []struct {
			Alias string `json:"alias"`
		} `json:"Alias"`
	} `json:"tables"`
}

// AliasClient looks up gene aliases in a VEuPathDB-style record service
// such as PlasmoDB.
type AliasClient struct {
	client  *httputil.Client
	url     string
	project string
	log     *zap.Logger
}

// NewAliasClient returns a client for the record service at cfg.URL.
func NewAliasClient(client *httputil.Client, cfg types.AliasConfig, log *zap.Logger) *AliasClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &AliasClient{client: client, url: cfg.URL, project: cfg.Project, log: log}
}

// FetchAliases returns the distinct aliases recorded for geneID, in the order
// the service lists them. Lookup failures are logged and yield an empty
// slice: missing synonym data must not abort a run.
func (c *AliasClient) FetchAliases(ctx context.Context, geneID string) []string {
	aliases, err := c.lookup(ctx, geneID)
	if err != nil {
		c.log.Warn("alias lookup failed", zap.String("gene_id", geneID), zap.Error(err))
		return []string{}
	}
	c.log.Debug("alias lookup", zap.String("gene_id", geneID), zap.Strings("aliases", aliases))
	return aliases
}

func (c *AliasClient) lookup(ctx context.Context, geneID string) ([]string, error) {
	body, err := json.Marshal(aliasRequest{
		Attributes: []string{},
		PrimaryKey: []aliasPrimaryKey{
			{Name: "source_id", Value: geneID},
			{Name: "project_id", Value: c.project},
		},
		Tables: aliasTables,
	})
	if err != nil {
		return nil, eris.Wrap(err, "marshaling alias request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "creating alias request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return nil, eris.Wrap(err, "alias request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, eris.Errorf("alias service returned HTTP %d", resp.StatusCode)
	}

	var ar aliasResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, eris.Wrap(err, "parsing alias response")
	}

	seen := make(map[string]bool, len(ar.Tables.Alias))
	aliases := make([]string, 0, len(ar.Tables.Alias))
	for _, row := range ar.Tables.Alias {
		if row.Alias == "" || seen[row.Alias] {
			continue
		}
		seen[row.Alias] = true
		aliases = append(aliases, row.Alias)
	}
	return aliases, nil
}
