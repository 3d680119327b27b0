package eugen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// IdentityClient talks to the community identity service that pools alias
// observations across players. Unlike the Eugen backend it requires a bearer
// token.
type IdentityClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewIdentityClient returns a client for the identity service at baseURL.
func NewIdentityClient(baseURL, apiKey string) *IdentityClient {
	return &IdentityClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// User is one pooled identity record: every username and ladder rank the
// service has seen for an Eugen id.
type User struct {
	EugenID       uint     `json:"eugenId"`
	Usernames     []string `json:"usernames"`
	Ranks         []uint   `json:"ranks"`
	LastKnownRank uint     `json:"lastKnownRank"`
}

// SearchUsers looks up identity records matching a name fragment.
func (c *IdentityClient) SearchUsers(query string) ([]User, error) {
	var users []User
	path := "/players?q=" + url.QueryEscape(query)
	if err := c.do(http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// PushUsers uploads locally observed identity records.
func (c *IdentityClient) PushUsers(users []User) error {
	return c.do(http.MethodPost, "/players", users, nil)
}

func (c *IdentityClient) do(method, path string, in, out any) error {
	var body *bytes.Buffer
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(payload)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: HTTP %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
