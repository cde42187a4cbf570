// Package client implements a small NocoDB REST client for one table. It
// consumes and produces ordered record lists, the wire encoding is JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
)

// APIError is returned when the API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.StatusCode, e.Body)
}

// BuildURL joins the API base URL and a table name into the table endpoint.
func BuildURL(baseURL, table string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(table)
}

// Client talks to a single table endpoint of a NocoDB instance.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New returns a client for the given table endpoint (see BuildURL)
// authenticating with the given JWT token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// BaseURL returns the table endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Query holds the optional list parameters of the record API.
type Query struct {
	// Where is a condition expression in the API's filter syntax.
	Where string
	// Limit caps the number of returned rows, zero means server default.
	Limit int
	// Offset skips rows for pagination.
	Offset int
	// Sort names the sort column, a "-" prefix sorts descending.
	Sort string
	// Fields restricts the columns of the result.
	Fields string
	// Fields1 names required columns in child results.
	Fields1 string
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Where != "" {
		v.Set("where", q.Where)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Fields != "" {
		v.Set("fields", q.Fields)
	}
	if q.Fields1 != "" {
		v.Set("fields1", q.Fields1)
	}
	return v
}

// List retrieves the records matching the query, in server order.
func (c *Client) List(ctx context.Context, q Query) (record.List, error) {
	raw, err := c.do(ctx, http.MethodGet, c.endpoint("", q.values()), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw)
}

// Count returns the number of records matching the where condition.
func (c *Client) Count(ctx context.Context, where string) (int, error) {
	v := url.Values{}
	if where != "" {
		v.Set("where", where)
	}
	raw, err := c.do(ctx, http.MethodGet, c.endpoint("count", v), nil)
	if err != nil {
		return 0, err
	}
	var res struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return 0, fmt.Errorf("decode count response: %w", err)
	}
	return res.Count, nil
}

// GroupBy groups the records of a column and returns the per-value counts.
func (c *Client) GroupBy(ctx context.Context, columnName string, q Query) (record.List, error) {
	v := q.values()
	if columnName != "" {
		v.Set("column_name", columnName)
	}
	raw, err := c.do(ctx, http.MethodGet, c.endpoint("groupby", v), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw)
}

// Aggregate applies an aggregation function (min, max, avg, sum, count) to a
// column.
func (c *Client) Aggregate(ctx context.Context, columnName, fn, having string, q Query) (record.List, error) {
	v := q.values()
	if columnName != "" {
		v.Set("column_name", columnName)
	}
	if fn != "" {
		v.Set("func", fn)
	}
	if having != "" {
		v.Set("having", having)
	}
	raw, err := c.do(ctx, http.MethodGet, c.endpoint("aggregate", v), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw)
}

// FindFirst returns the first record matching the query, or nil when the
// table holds no match.
func (c *Client) FindFirst(ctx context.Context, q Query) (*record.Record, error) {
	raw, err := c.do(ctx, http.MethodGet, c.endpoint("findOne", q.values()), nil)
	if err != nil {
		return nil, err
	}
	records, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// Add inserts the given records in one bulk request.
func (c *Client) Add(ctx context.Context, records record.List) error {
	body, err := json.Marshal(records)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, c.endpoint("bulk", nil), bytes.NewReader(body))
	return err
}

// Update sets the given fields on the record with the given id.
func (c *Client) Update(ctx context.Context, id string, fields *record.Record) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, c.endpoint(url.PathEscape(id), nil), bytes.NewReader(body))
	return err
}

// BulkUpdate updates the given records (each carrying its id) in one
// request.
func (c *Client) BulkUpdate(ctx context.Context, records record.List) error {
	body, err := json.Marshal(records)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, c.endpoint("bulk", nil), bytes.NewReader(body))
	return err
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.endpoint(url.PathEscape(id), nil), nil)
	return err
}

func (c *Client) endpoint(suffix string, v url.Values) string {
	u := c.baseURL
	if suffix != "" {
		u += "/" + suffix
	}
	if len(v) > 0 {
		u += "?" + v.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xc-auth", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &APIError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return raw, nil
}

// decodeList parses a JSON response body into an ordered record list. Both
// a top-level array and a single object are accepted.
func decodeList(raw []byte) (record.List, error) {
	var records record.List
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode api response: %w", err)
	}
	return records, nil
}
