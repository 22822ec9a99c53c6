package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shoply/app/dto"
)

// Session holds the authenticated REST connection to the shoply server.
type Session struct {
	BaseURL string
	Token   string
	client  *http.Client
}

func NewSession() *Session {
	return &Session{client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *Session) Login(baseURL, email, password string) error {
	s.BaseURL = baseURL
	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	resp, err := s.client.Post(baseURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: status %d", resp.StatusCode)
	}
	var tok dto.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return err
	}
	s.Token = tok.AccessToken
	return nil
}

func (s *Session) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, s.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (s *Session) Products() (*dto.ProductListResponse, error) {
	var resp dto.ProductListResponse
	if err := s.get("/products?page_size=100", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Session) Orders() ([]dto.OrderResponse, error) {
	var orders []dto.OrderResponse
	if err := s.get("/admin/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Session) Posts() ([]dto.ScheduledPostResponse, error) {
	var posts []dto.ScheduledPostResponse
	if err := s.get("/admin/social/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
