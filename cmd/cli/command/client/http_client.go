package client

// http_client.go wraps the bookstore HTTP API for the staff CLI.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Auth request/response structures
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Book-related request/response structures
type CreateBookRequest struct {
	Title    string `json:"title"`
	AuthorID *int64 `json:"author_id,omitempty"`
	Genre    string `json:"genre"`
	Language string `json:"language"`
	Price    int64  `json:"price"`
	Count    int64  `json:"count"`
}

type BookResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	Genre    string `json:"genre"`
	Language string `json:"language"`
	Price    int64  `json:"price"`
	Count    int64  `json:"count"`
}

type BookListResponse struct {
	Data     []BookResponse `json:"data"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Duty report: rented books grouped by username
type RentedBookResponse struct {
	BookID        *int64 `json:"book_id,omitempty"`
	BookTitle     string `json:"book_title,omitempty"`
	DateStart     string `json:"date_start"`
	DateReturn    string `json:"date_return"`
	DaysRemaining int    `json:"days_remaining"`
}

type DutyResponse struct {
	Users map[string][]RentedBookResponse `json:"users"`
}

type EmailRequest struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Message    string   `json:"message"`
}

type EmailResponse struct {
	Message string `json:"message"`
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// doJSON sends a request with the auth header set and decodes the JSON
// response into out (when out is non-nil).
func (c *HTTPClient) doJSON(method, path string, body, out any) error {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	request, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("request failed with status: %s", response.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}

func (c *HTTPClient) Login(request *LoginRequest) (*AuthResponse, error) {
	var result AuthResponse
	if err := c.doJSON(http.MethodPost, "/api/auth/login", request, &result); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &result, nil
}

// ListBooks fetches one page of the staff catalog view.
func (c *HTTPClient) ListBooks(page int) (*BookListResponse, error) {
	var result BookListResponse
	path := fmt.Sprintf("/api/worker/books?page=%d", page)
	if err := c.doJSON(http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateBook(request *CreateBookRequest) (*BookResponse, error) {
	var result BookResponse
	if err := c.doJSON(http.MethodPost, "/api/books", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Duty() (*DutyResponse, error) {
	var result DutyResponse
	if err := c.doJSON(http.MethodGet, "/api/duty", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) SendEmail(request *EmailRequest) error {
	var result EmailResponse
	return c.doJSON(http.MethodPost, "/api/email", request, &result)
}
