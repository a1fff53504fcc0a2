package opensearch

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/country-gallery-api/internal/domain"
)

func TestBuildSearchQuery_FiltersCountryAndApproval(t *testing.T) {
	query := buildSearchQuery("country-1", "sunset", 25)

	raw, err := json.Marshal(query)
	require.NoError(t, err)

	var decoded struct {
		Size  int `json:"size"`
		Query struct {
			Bool struct {
				Must   []map[string]map[string]any `json:"must"`
				Filter []map[string]map[string]any `json:"filter"`
			} `json:"bool"`
		} `json:"query"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, 25, decoded.Size)
	require.Len(t, decoded.Query.Bool.Must, 1)
	assert.Equal(t, "sunset", decoded.Query.Bool.Must[0]["multi_match"]["query"])
	require.Len(t, decoded.Query.Bool.Filter, 2)
	assert.Equal(t, "country-1", decoded.Query.Bool.Filter[0]["term"]["country_id"])
	assert.Equal(t, true, decoded.Query.Bool.Filter[1]["term"]["approved"])
}

func TestToDocument_FlattensOptionalFields(t *testing.T) {
	batchID := "01jbatch"
	caption := "Harbour"
	created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	doc := toDocument(domain.Submission{
		ID:          "s1",
		CountryID:   "c1",
		BatchID:     &batchID,
		StoragePath: "c1/01jbatch/1.jpg",
		Caption:     &caption,
		Approved:    true,
		CreatedAt:   created,
	})

	assert.Equal(t, "01jbatch", doc.BatchID)
	assert.Equal(t, "Harbour", doc.Caption)
	assert.Empty(t, doc.AuthorName)
	assert.Empty(t, doc.Story)
	assert.Equal(t, created, doc.CreatedAt)
}

func TestIndexMapping_IsValidJSON(t *testing.T) {
	var m map[string]any
	assert.NoError(t, json.Unmarshal([]byte(indexMapping()), &m))
}
