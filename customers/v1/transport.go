package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

type Response struct {
	StatusCode int
	Data       []byte
}

// Transport handles low-level HTTP against the service.
type Transport struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewTransport(baseURL string) *Transport {
	return &Transport{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) string {
	u, _ := url.Parse(t.BaseURL + path)
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (t *Transport) do(method, path string, data any, query map[string]string) (*Response, error) {
	var body io.Reader
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequest(method, t.buildURL(path, query), body)
	if err != nil {
		return nil, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	resdata, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Data:       resdata,
	}, nil
}

// Get sends a GET request
func (t *Transport) Get(path string, query map[string]string) (*Response, error) {
	return t.do(http.MethodGet, path, nil, query)
}

// Post sends a POST request with JSON body
func (t *Transport) Post(path string, data any, query map[string]string) (*Response, error) {
	return t.do(http.MethodPost, path, data, query)
}

// Put sends a PUT request, with a JSON body when data is non-nil
func (t *Transport) Put(path string, data any, query map[string]string) (*Response, error) {
	return t.do(http.MethodPut, path, data, query)
}

// Delete sends a DELETE request
func (t *Transport) Delete(path string, query map[string]string) (*Response, error) {
	return t.do(http.MethodDelete, path, nil, query)
}
