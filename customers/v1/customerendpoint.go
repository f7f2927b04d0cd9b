package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CustomerDTO mirrors the service's customer document. ID and the timestamps
// are server-assigned and null until the customer is persisted.
type CustomerDTO struct {
	ID        *string `json:"id,omitempty"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Address   string  `json:"address"`
	Suspended bool    `json:"suspended"`
	CreatedAt *string `json:"created_at,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// ListQuery carries the optional list filters. Matching is fuzzy unless
// Exact is set; Name switches to the full-name search.
type ListQuery struct {
	FirstName string
	LastName  string
	Address   string
	Name      string
	Exact     bool
}

type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

type FilterGroup struct {
	Logic   string   `json:"logic"`
	Filters []Filter `json:"filters"`
}

type SearchResult struct {
	Data       []CustomerDTO `json:"data"`
	Pagination struct {
		Total int64 `json:"total"`
	} `json:"pagination"`
}

type CustomerEndpoint struct {
	transport *Transport
}

func (ep *CustomerEndpoint) List(q ListQuery) ([]CustomerDTO, error) {
	query := map[string]string{}
	if q.Name != "" {
		query["name"] = q.Name
	}
	if q.FirstName != "" {
		query["first_name"] = q.FirstName
	}
	if q.LastName != "" {
		query["last_name"] = q.LastName
	}
	if q.Address != "" {
		query["address"] = q.Address
	}
	if q.Exact {
		query["match"] = "exact"
	}

	resp, err := ep.transport.Get("/customers", query)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, responseError("GET /customers", resp)
	}

	var customers []CustomerDTO
	if err := json.Unmarshal(resp.Data, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (ep *CustomerEndpoint) Search(filters FilterGroup) (*SearchResult, error) {
	resp, err := ep.transport.Post("/customers/search", map[string]any{"filters": filters}, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, responseError("POST /customers/search", resp)
	}

	var result SearchResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get returns nil for a customer that does not exist.
func (ep *CustomerEndpoint) Get(id string) (*CustomerDTO, error) {
	resp, err := ep.transport.Get("/customers/"+id, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, responseError("GET /customers/"+id, resp)
	}
	return decodeCustomer(resp.Data)
}

func (ep *CustomerEndpoint) Create(dto *CustomerDTO) (*CustomerDTO, error) {
	resp, err := ep.transport.Post("/customers", dto, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, responseError("POST /customers", resp)
	}
	return decodeCustomer(resp.Data)
}

func (ep *CustomerEndpoint) Update(id string, dto *CustomerDTO) (*CustomerDTO, error) {
	resp, err := ep.transport.Put("/customers/"+id, dto, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, responseError("PUT /customers/"+id, resp)
	}
	return decodeCustomer(resp.Data)
}

func (ep *CustomerEndpoint) Delete(id string) error {
	resp, err := ep.transport.Delete("/customers/"+id, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return responseError("DELETE /customers/"+id, resp)
	}
	return nil
}

func (ep *CustomerEndpoint) Suspend(id string) (*CustomerDTO, error) {
	return ep.putLifecycle(id, "suspend")
}

func (ep *CustomerEndpoint) Unsuspend(id string) (*CustomerDTO, error) {
	return ep.putLifecycle(id, "unsuspend")
}

func (ep *CustomerEndpoint) putLifecycle(id, action string) (*CustomerDTO, error) {
	path := fmt.Sprintf("/customers/%s/%s", id, action)
	resp, err := ep.transport.Put(path, nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, responseError("PUT "+path, resp)
	}
	return decodeCustomer(resp.Data)
}

func decodeCustomer(data []byte) (*CustomerDTO, error) {
	var dto CustomerDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

func responseError(op string, resp *Response) error {
	return fmt.Errorf("%s failed with status code %d: %s", op, resp.StatusCode, string(resp.Data))
}
