package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type BusinessData struct {
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Headline string  `json:"headline"`
}

// BusinessClient is the dashboard's view of business-svc.
type BusinessClient interface {
	FetchBusinessData(ctx context.Context, name, location string) (*BusinessData, error)
	RegenerateHeadline(ctx context.Context, name, location string) (string, error)
}

type Client struct {
	baseURL string
	http    HTTPClient
}

var _ BusinessClient = (*Client)(nil)

func NewClient(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) FetchBusinessData(ctx context.Context, name, location string) (*BusinessData, error) {
	body, err := json.Marshal(map[string]string{"name": name, "location": location})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/business-data", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var data BusinessData
	if err := c.do(req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) RegenerateHeadline(ctx context.Context, name, location string) (string, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("location", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/regenerate-headline?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Headline string `json:"headline"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.Headline, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("request %s: unexpected status %d", req.URL.Path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
