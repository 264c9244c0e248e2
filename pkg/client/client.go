package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/localstore"
)

// Client is a typed consumer of the advisory API. Each list call fetches the
// full catalog once; free-text search happens locally with the Filter
// helpers, the same way the web client narrows an already-fetched list on
// every keystroke.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	saved   *localstore.SavedItems
}

type Option func(*Client)

// WithToken attaches a Firebase ID token to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient overrides the underlying transport, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithLocalStore enables the saved-items cache.
func WithLocalStore(store localstore.Store) Option {
	return func(c *Client) {
		c.saved = localstore.NewSavedItems(store)
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError carries the status and message body of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&errBody)
		message := errBody.Message
		if message == "" {
			message = errBody.Error
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) ListDiseases(ctx context.Context) ([]entity.Disease, error) {
	var diseases []entity.Disease
	if err := c.do(ctx, http.MethodGet, "/api/diseases", nil, &diseases); err != nil {
		return nil, err
	}
	return diseases, nil
}

func (c *Client) GetDisease(ctx context.Context, id string) (*entity.Disease, error) {
	var disease entity.Disease
	if err := c.do(ctx, http.MethodGet, "/api/diseases/"+url.PathEscape(id), nil, &disease); err != nil {
		return nil, err
	}
	return &disease, nil
}

func (c *Client) ListTips(ctx context.Context) ([]entity.Tip, error) {
	var tips []entity.Tip
	if err := c.do(ctx, http.MethodGet, "/api/tips", nil, &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

func (c *Client) ListExperts(ctx context.Context) ([]entity.Expert, error) {
	var experts []entity.Expert
	if err := c.do(ctx, http.MethodGet, "/api/experts", nil, &experts); err != nil {
		return nil, err
	}
	return experts, nil
}

func (c *Client) ListQuestions(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	if err := c.do(ctx, http.MethodGet, "/api/questions", nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) AskQuestion(ctx context.Context, question, expert string) (*entity.Question, error) {
	body := map[string]string{"question": question, "expert": expert}
	var created entity.Question
	if err := c.do(ctx, http.MethodPost, "/api/questions", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListProducts fetches the marketplace; buyers only ever see approved
// listings.
func (c *Client) ListProducts(ctx context.Context, approvedOnly bool) ([]entity.Product, error) {
	path := "/api/products"
	if approvedOnly {
		path += "?approved=true"
	}

	var products []entity.Product
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]entity.Note, error) {
	var notes []entity.Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, title, content string) (*entity.Note, error) {
	body := map[string]string{"title": title, "content": content}
	var note entity.Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateProfile(ctx context.Context, email string) (*entity.User, error) {
	var resp struct {
		Message string      `json:"message"`
		User    entity.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/create-user-profile", map[string]string{"email": email}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) GetProfile(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/api/user-profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Chat relays a prompt through the advisory endpoint.
func (c *Client) Chat(ctx context.Context, prompt, expertName string) (string, error) {
	body := map[string]string{"userPrompt": prompt, "expertName": expertName}
	var resp struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/chat", body, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("chat failed: %s", resp.Error)
	}
	return resp.Response, nil
}

// Saved exposes the device-local saved-items cache, or nil when the client
// was built without one.
func (c *Client) Saved() *localstore.SavedItems {
	return c.saved
}
