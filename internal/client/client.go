package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// GetInvoice - запрос чека по идентификатору у сервиса чеков
func (c *Client) GetInvoice(ctx context.Context, invoiceID int64) (*InvoiceResponse, error) {
	url := fmt.Sprintf("%s/api/invoices/%d", c.baseURL, invoiceID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, HandleErrorResponse(resp)
	}

	var result InvoiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func HandleErrorResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return NewRateLimitError(resp.Header)
	case http.StatusNotFound, http.StatusNoContent:
		return ErrInvoiceNotFound
	default:
		return ErrServiceUnavailable
	}
}
