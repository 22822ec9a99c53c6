package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shoply/app/models"
	"shoply/app/services"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client forwards metrics reads and post creation to the platform API,
// authenticated with the account's bearer token.
type Client struct {
	client *http.Client
	cfg    Config
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

var _ services.PlatformClient = (*Client)(nil)

type metricsPayload struct {
	Followers   int64 `json:"followers"`
	Following   int64 `json:"following"`
	Posts       int64 `json:"posts"`
	Engagements int64 `json:"engagements"`
}

type createPostPayload struct {
	Text string `json:"text"`
}

type createPostResult struct {
	ID string `json:"id"`
}

type apiError struct {
	Status  int
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("platform api error: status=%d message=%s", e.Status, e.Message)
}

func (c *Client) FetchMetrics(ctx context.Context, account *models.SocialAccount) (*services.PlatformMetrics, error) {
	url := fmt.Sprintf("%s/2/accounts/%s/metrics", c.cfg.BaseURL, account.Handle)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+account.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	var payload metricsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &services.PlatformMetrics{
		Followers:   payload.Followers,
		Following:   payload.Following,
		Posts:       payload.Posts,
		Engagements: payload.Engagements,
	}, nil
}

func (c *Client) CreatePost(ctx context.Context, account *models.SocialAccount, body string) (string, error) {
	url := fmt.Sprintf("%s/2/posts", c.cfg.BaseURL)
	raw, err := json.Marshal(createPostPayload{Text: body})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+account.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", decodeError(resp)
	}
	var result createPostResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.ID, nil
}

func decodeError(resp *http.Response) error {
	apiErr := &apiError{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
		body, _ := io.ReadAll(resp.Body)
		apiErr.Message = string(body)
	}
	return apiErr
}
