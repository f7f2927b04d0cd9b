package v1

// Client is the typed API client for the customers service.
type Client struct {
	Transport *Transport
	Customers *CustomerEndpoint
}

// NewClient initializes the API client against a base URL.
func NewClient(baseURL string) *Client {
	t := NewTransport(baseURL)
	return &Client{
		Transport: t,
		Customers: &CustomerEndpoint{transport: t},
	}
}
