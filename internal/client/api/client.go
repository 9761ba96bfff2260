package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/notesai/notesai-cli/internal/client/models"
)

// Client talks JSON over HTTP to the Notes-AI backend. The cookie jar holds
// the opaque session cookie; client code never reads its value, the transport
// attaches it to every request automatically.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client for the given base URL. Every request shares one
// cookie jar and one timeout. The gateway does not retry; retries are the
// calling flow's decision.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar init: %w", err)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout, Jar: jar},
	}, nil
}

// ResetSession discards the cookie jar, dropping any session the server has
// issued. There is no server-side logout endpoint; this is the strongest
// logout the client can perform.
func (c *Client) ResetSession() error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("cookie jar init: %w", err)
	}
	c.httpClient.Jar = jar
	return nil
}

// call issues one request and classifies the outcome. A non-nil body is
// serialized as JSON with Content-Type set; a nil body sends no payload and
// no content type. The raw response body is returned for 2xx statuses.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = &buf
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RejectedError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	return raw, nil
}

// callJSON performs call and decodes the 2xx body into out.
func (c *Client) callJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.call(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &MalformedResponseError{Path: path, Err: err}
	}
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createAccountRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	Email string `json:"email"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

type saveNoteRequest struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
}

type studyGuideRequest struct {
	Notes string `json:"notes"`
}

type checkoutRequest struct {
	LookupKey string `json:"lookup_key"`
}

// redirectResponse is the contract shared by both billing endpoints: exactly
// one of url/error is present.
type redirectResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

func (c *Client) Login(ctx context.Context, username, password string) error {
	_, err := c.call(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Username: username, Password: password})
	return err
}

func (c *Client) CreateAccount(ctx context.Context, email, username, password string) error {
	_, err := c.call(ctx, http.MethodPost, "/auth/create", nil,
		createAccountRequest{Email: email, Username: username, Password: password})
	return err
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := c.call(ctx, http.MethodPost, "/auth/reset-password", nil, resetPasswordRequest{Email: email})
	return err
}

func (c *Client) UserDetails(ctx context.Context) (models.UserDetails, error) {
	var details models.UserDetails
	err := c.callJSON(ctx, http.MethodGet, "/account/user-details", nil, nil, &details)
	return details, err
}

func (c *Client) PurchaseHistory(ctx context.Context) ([]models.SubscriptionRecord, error) {
	var records []models.SubscriptionRecord
	err := c.callJSON(ctx, http.MethodGet, "/account/purchase-history", nil, nil, &records)
	return records, err
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	_, err := c.call(ctx, http.MethodPost, "/account/change-password", nil,
		changePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
	return err
}

func (c *Client) DeleteAccount(ctx context.Context, password string) error {
	_, err := c.call(ctx, http.MethodPost, "/account/delete", nil, deleteAccountRequest{Password: password})
	return err
}

func (c *Client) SaveNote(ctx context.Context, title, notes string) error {
	_, err := c.call(ctx, http.MethodPost, "/notes/to-cloud", nil, saveNoteRequest{Title: title, Notes: notes})
	return err
}

// GenerateStudyGuide returns the raw response payload; rendering it is the
// caller's concern.
func (c *Client) GenerateStudyGuide(ctx context.Context, notes string) (string, error) {
	raw, err := c.call(ctx, http.MethodPost, "/notes/generate-study-guide", nil, studyGuideRequest{Notes: notes})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// CreateCheckoutSession asks the backend for a hosted checkout URL. The
// lookup key is sent both as a query parameter and in the body; the backend
// accepts either.
func (c *Client) CreateCheckoutSession(ctx context.Context, lookupKey string) (string, error) {
	query := url.Values{"lookup_key": []string{lookupKey}}
	return c.redirectURL(ctx, "/stripe/create-checkout-session", query, checkoutRequest{LookupKey: lookupKey})
}

// CreatePortalSession asks the backend for a hosted billing-portal URL.
// The request carries no body.
func (c *Client) CreatePortalSession(ctx context.Context) (string, error) {
	return c.redirectURL(ctx, "/stripe/create-portal-session", nil, nil)
}

// redirectURL resolves the {url}/{error} contract of the billing endpoints.
// The backend reports provider failures as {error} with a non-2xx status, so
// rejected responses are inspected for the same payload before propagating.
func (c *Client) redirectURL(ctx context.Context, path string, query url.Values, body any) (string, error) {
	raw, err := c.call(ctx, http.MethodPost, path, query, body)
	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			var r redirectResponse
			if jsonErr := json.Unmarshal([]byte(rejected.Body), &r); jsonErr == nil && r.Error != "" {
				return "", &ProviderError{Message: r.Error}
			}
		}
		return "", err
	}

	var r redirectResponse
	if err := json.Unmarshal(raw, &r); err != nil {
		return "", &MalformedResponseError{Path: path, Err: err}
	}

	switch {
	case r.URL != "":
		return r.URL, nil
	case r.Error != "":
		return "", &ProviderError{Message: r.Error}
	default:
		return "", &MalformedResponseError{Path: path, Err: errors.New("neither url nor error present")}
	}
}
