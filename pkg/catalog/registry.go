package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/apperrors"
	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
)

// DefaultTimeout is the maximum time to wait for registry responses.
const DefaultTimeout = 30 * time.Second

// RegistryClient is a Catalog backed by an external business directory API.
// The registry owns retry and freshness policy; this client only translates
// its responses into company records and maps missing entities to
// apperrors.ErrNotFound.
type RegistryClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewRegistryClient creates a registry-backed catalog client.
func NewRegistryClient(baseURL, apiKey string, logger *zap.Logger) *RegistryClient {
	return &RegistryClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logger.Named("registry"),
	}
}

// Get fetches a single company record by DUNS.
func (c *RegistryClient) Get(ctx context.Context, duns string) (*models.Company, error) {
	endpoint, err := buildURL(c.baseURL, "v1", "companies", duns)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	var company models.Company
	if err := c.doJSON(ctx, endpoint, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// All fetches the full candidate set the registry exposes to this account.
func (c *RegistryClient) All(ctx context.Context) ([]*models.Company, error) {
	endpoint, err := buildURL(c.baseURL, "v1", "companies")
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	var response struct {
		Companies []*models.Company `json:"companies"`
	}
	if err := c.doJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}
	return response.Companies, nil
}

// doJSON executes a GET request and decodes the JSON response into out.
func (c *RegistryClient) doJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call registry: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Registry returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("url", endpoint))
		return fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// buildURL constructs a URL by parsing the base and joining path segments.
func buildURL(baseURL string, pathSegments ...string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	segments := append([]string{u.Path}, pathSegments...)
	u.Path = path.Join(segments...)

	return u.String(), nil
}

// Ensure RegistryClient implements Catalog at compile time.
var _ Catalog = (*RegistryClient)(nil)
