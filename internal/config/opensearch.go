package config

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
)

// OpenSearchConfig points at the cluster holding one submission index per
// country. OPENSEARCH_ADDRESSES, a comma separated list of URLs, overrides
// the single host setting.
type OpenSearchConfig struct {
	Addresses          []string
	Scheme             string
	Host               string
	Port               string
	Username           string
	Password           string
	IndexPrefix        string
	InsecureSkipVerify bool
}

func DefaultOpenSearchConfig() *OpenSearchConfig {
	return &OpenSearchConfig{
		Addresses:          splitList(getEnvWithDefault("OPENSEARCH_ADDRESSES", "")),
		Scheme:             getEnvWithDefault("OPENSEARCH_SCHEME", "http"),
		Host:               getEnvWithDefault("OPENSEARCH_HOST", "localhost"),
		Port:               getEnvWithDefault("OPENSEARCH_PORT", "9200"),
		Username:           getEnvWithDefault("OPENSEARCH_USERNAME", ""),
		Password:           getEnvWithDefault("OPENSEARCH_PASSWORD", ""),
		IndexPrefix:        getEnvWithDefault("OPENSEARCH_INDEX_PREFIX", "submissions"),
		InsecureSkipVerify: getEnvWithDefault("OPENSEARCH_INSECURE_SKIP_VERIFY", "false") == "true",
	}
}

func (c *OpenSearchConfig) addresses() []string {
	if len(c.Addresses) > 0 {
		return c.Addresses
	}
	return []string{fmt.Sprintf("%s://%s:%s", c.Scheme, c.Host, c.Port)}
}

func (c *OpenSearchConfig) GetClient() (*opensearch.Client, error) {
	cfg := opensearch.Config{
		Addresses: c.addresses(),
	}
	if c.InsecureSkipVerify {
		cfg.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	if c.Username != "" && c.Password != "" {
		cfg.Username = c.Username
		cfg.Password = c.Password
	}

	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenSearch client: %w", err)
	}
	return client, nil
}

// GetIndexName returns the submission index of a country as <prefix>_<country_id>.
// Index names must be lower case.
func (c *OpenSearchConfig) GetIndexName(countryID string) string {
	return strings.ToLower(c.IndexPrefix + "_" + countryID)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
