// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gene-summarizer/internal/httputil"
	"github.com/pdiddy/gene-summarizer/pkg/types"
)

const sampleBioC = `[{
  "source": "PMC",
  "documents": [{
    "id": "PMC4851391",
    "passages": [
      {"infons": {"section_type": "TITLE", "type": "front"}, "text": "Apical membrane antigen 1 in invasion"},
      {"infons": {"section_type": "ABSTRACT"}, "text": "AMA1 is essential."},
      {"infons": {"section_type": "METHODS"}, "text": "Parasites were cultured."},
      {"infons": {"section_type": "RESULTS"}},
      {"infons": {"section_type": "results"}, "text": "AMA-1 knockdown blocks invasion."},
      {"infons": {"section_type": "REF"}, "text": "Smith et al."}
    ]
  }]
}]`

const sampleBioCObject = `{
  "documents": [{
    "id": "PMC1",
    "passages": [
      {"infons": {"section_type": "TITLE"}, "text": "Single collection"},
      {"infons": {"section_type": 7}, "text": "odd infon"}
    ]
  }]
}`

func newTestBioC(t *testing.T, handler http.HandlerFunc) *BioCClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	cfg := types.SourceConfig{BioCURL: ts.URL + "/BioC_json/"}
	return NewBioCClient(httputil.New(ts.Client(), cfg.HTTPConfig), cfg, nil)
}

func TestFetchDocument(t *testing.T) {
	var gotPath string
	c := newTestBioC(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(sampleBioC))
	})

	doc, err := c.FetchDocument(context.Background(), "27128092")
	require.NoError(t, err)

	assert.Equal(t, "/BioC_json/27128092", gotPath)
	assert.Equal(t, "27128092", doc.PubMedID)
	require.Len(t, doc.Passages, 6)
	assert.Equal(t, "TITLE", doc.Passages[0].Section)
	require.NotNil(t, doc.Passages[0].Text)
	assert.Equal(t, "Apical membrane antigen 1 in invasion", *doc.Passages[0].Text)
	assert.Nil(t, doc.Passages[3].Text)
}

func TestFetchDocument_SingleCollection(t *testing.T) {
	c := newTestBioC(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleBioCObject))
	})

	doc, err := c.FetchDocument(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, doc.Passages, 2)
	assert.Equal(t, "TITLE", doc.Passages[0].Section)
	assert.Equal(t, "", doc.Passages[1].Section)
}

func TestFetchDocument_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantErr     error
		wantStatus  int
	}{
		{
			name:        "HTML page means no record",
			status:      http.StatusOK,
			contentType: "text/html",
			body:        "<html>No result can be found.</html>",
			wantErr:     ErrNotFound,
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			contentType: "text/plain",
			body:        "boom",
			wantStatus:  http.StatusInternalServerError,
		},
		{
			name:        "missing resource",
			status:      http.StatusNotFound,
			contentType: "application/json",
			body:        `{}`,
			wantStatus:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestBioC(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.FetchDocument(context.Background(), "123")
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.wantStatus, fe.StatusCode)
		})
	}
}

func TestFetchDocument_MalformedJSON(t *testing.T) {
	c := newTestBioC(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"documents": [`))
	})

	_, err := c.FetchDocument(context.Background(), "123")
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 0, fe.StatusCode)
	assert.Contains(t, fe.Error(), "paper fetch failed")
}

func TestFetchError_Message(t *testing.T) {
	assert.Equal(t, "paper fetch status code: 503", (&FetchError{StatusCode: 503}).Error())
}
