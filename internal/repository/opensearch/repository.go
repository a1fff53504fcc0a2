package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/internal/domain"
)

// document is the indexed form of a submission
type document struct {
	ID          string    `json:"id"`
	CountryID   string    `json:"country_id"`
	BatchID     string    `json:"batch_id,omitempty"`
	StoragePath string    `json:"image_path"`
	Caption     string    `json:"caption,omitempty"`
	AuthorName  string    `json:"author_name,omitempty"`
	Story       string    `json:"story,omitempty"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDocument(s domain.Submission) document {
	return document{
		ID:          s.ID,
		CountryID:   s.CountryID,
		BatchID:     deref(s.BatchID),
		StoragePath: s.StoragePath,
		Caption:     deref(s.Caption),
		AuthorName:  deref(s.AuthorName),
		Story:       deref(s.Story),
		Approved:    s.Approved,
		CreatedAt:   s.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type Repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) *Repository {
	return &Repository{
		client: client,
		config: config,
	}
}

func (r *Repository) IndexSubmissions(ctx context.Context, submissions []domain.Submission) error {
	if len(submissions) == 0 {
		return nil
	}

	byCountry := make(map[string][]domain.Submission)
	for _, s := range submissions {
		byCountry[s.CountryID] = append(byCountry[s.CountryID], s)
	}

	for countryID, group := range byCountry {
		if err := r.bulkIndex(ctx, countryID, group); err != nil {
			return fmt.Errorf("failed to bulk index country %s: %w", countryID, err)
		}
	}

	return nil
}

func (r *Repository) bulkIndex(ctx context.Context, countryID string, submissions []domain.Submission) error {
	if err := r.ensureIndex(ctx, countryID); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	indexName := r.config.GetIndexName(countryID)

	var body strings.Builder
	for _, s := range submissions {
		action := map[string]any{
			"index": map[string]any{
				"_index": indexName,
				"_id":    s.ID,
			},
		}
		if err := writeNDJSON(&body, action); err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		if err := writeNDJSON(&body, toDocument(s)); err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
	}

	return r.doBulk(ctx, body.String())
}

func (r *Repository) DeleteSubmissions(ctx context.Context, countryID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	indexName := r.config.GetIndexName(countryID)

	var body strings.Builder
	for _, id := range ids {
		action := map[string]any{
			"delete": map[string]any{
				"_index": indexName,
				"_id":    id,
			},
		}
		if err := writeNDJSON(&body, action); err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
	}

	return r.doBulk(ctx, body.String())
}

func (r *Repository) doBulk(ctx context.Context, body string) error {
	req := opensearchapi.BulkRequest{
		Body: strings.NewReader(body),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	// A missing index on delete means there is nothing to remove.
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

func writeNDJSON(b *strings.Builder, v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.Write(line)
	b.WriteString("\n")
	return nil
}

func (r *Repository) Search(ctx context.Context, countryID, query string, limit int) ([]string, error) {
	queryJSON, err := json.Marshal(buildSearchQuery(countryID, query, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexName(countryID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			return []string{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	ids := make([]string, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		ids = append(ids, hit.ID)
	}

	return ids, nil
}

// buildSearchQuery matches the query text against caption, author and story,
// restricted to approved submissions of one country.
func buildSearchQuery(countryID, query string, limit int) map[string]any {
	return map[string]any{
		"size": limit,
		"query": map[string]any{
			"bool": map[string]any{
				"must": []map[string]any{
					{
						"multi_match": map[string]any{
							"query":  query,
							"fields": []string{"caption^2", "author_name", "story"},
						},
					},
				},
				"filter": []map[string]any{
					{"term": map[string]any{"country_id": countryID}},
					{"term": map[string]any{"approved": true}},
				},
			},
		},
		"sort": []any{
			"_score",
			map[string]any{"created_at": map[string]any{"order": "desc"}},
		},
	}
}

func indexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"country_id": { "type": "keyword" },
				"batch_id": { "type": "keyword" },
				"image_path": { "type": "keyword" },
				"caption": { "type": "text" },
				"author_name": { "type": "text" },
				"story": { "type": "text" },
				"approved": { "type": "boolean" },
				"created_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *Repository) ensureIndex(ctx context.Context, countryID string) error {
	indexName := r.config.GetIndexName(countryID)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(indexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}
