package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoply/app/controllers"
	"shoply/app/dto"
	"shoply/app/middleware"
	"shoply/app/models"
	"shoply/app/repo"
	"shoply/app/services"
	"shoply/app/testutil"
)

type stubProvider struct{ n int }

func (s *stubProvider) CreateSession(ctx context.Context, reference string, items []models.OrderItem) (*services.CheckoutSession, error) {
	s.n++
	return &services.CheckoutSession{ID: fmt.Sprintf("cs_%d", s.n), URL: "https://pay.example.com/" + reference}, nil
}

type stubPlatform struct{}

func (stubPlatform) FetchMetrics(ctx context.Context, account *models.SocialAccount) (*services.PlatformMetrics, error) {
	return &services.PlatformMetrics{Followers: 10}, nil
}

func (stubPlatform) CreatePost(ctx context.Context, account *models.SocialAccount, body string) (string, error) {
	return "ext_1", nil
}

func newTestServer(t *testing.T) *httptest.Server {
	db := testutil.OpenTestDB(t)
	signer := testutil.NewSigner()

	userRepo := repo.NewUserRepository(db)
	productRepo := repo.NewProductRepository(db)
	cartRepo := repo.NewCartRepository(db)
	orderRepo := repo.NewOrderRepository(db)
	accountRepo := repo.NewSocialAccountRepository(db)
	postRepo := repo.NewScheduledPostRepository(db)

	users := services.NewUserService(userRepo)
	products := services.NewProductService(productRepo)
	carts := services.NewCartService(cartRepo, productRepo)
	checkout := services.NewCheckoutService(db, cartRepo, productRepo, orderRepo, &stubProvider{})
	social := services.NewSocialService(accountRepo, postRepo, stubPlatform{}, nil, 3)

	if err := users.EnsureAdmin("admin@shoply.local", "admin123"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	h := NewRouter(Controllers{
		Health:   controllers.NewHealthController(),
		Auth:     controllers.NewAuthController(users, signer),
		Products: controllers.NewProductController(products),
		Carts:    controllers.NewCartController(carts),
		Checkout: controllers.NewCheckoutController(checkout),
		Admin:    controllers.NewAdminController(users),
		Social:   controllers.NewSocialController(social),
	}, &middleware.Auth{Signer: signer})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, token, body string) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func login(t *testing.T, srv *httptest.Server, email, password string) string {
	t.Helper()
	code, raw := do(t, http.MethodPost, srv.URL+"/login", "", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	if code != http.StatusOK {
		t.Fatalf("login %s: got %d, body %s", email, code, raw)
	}
	var tok dto.TokenResponse
	if err := json.Unmarshal(raw, &tok); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	return tok.AccessToken
}

func TestAdminRoutesRejectOutsiders(t *testing.T) {
	srv := newTestServer(t)

	code, _ := do(t, http.MethodGet, srv.URL+"/admin/users", "", "")
	if code != http.StatusUnauthorized {
		t.Fatalf("no token: got %d want 401", code)
	}

	code, _ = do(t, http.MethodPost, srv.URL+"/register", "", `{"email":"eve@example.com","password":"secret123"}`)
	if code != http.StatusCreated {
		t.Fatalf("register: got %d", code)
	}
	userToken := login(t, srv, "eve@example.com", "secret123")

	code, _ = do(t, http.MethodGet, srv.URL+"/admin/users", userToken, "")
	if code != http.StatusForbidden {
		t.Fatalf("user token on admin route: got %d want 403", code)
	}

	adminToken := login(t, srv, "admin@shoply.local", "admin123")
	code, _ = do(t, http.MethodGet, srv.URL+"/admin/users", adminToken, "")
	if code != http.StatusOK {
		t.Fatalf("admin token: got %d want 200", code)
	}
}

func TestShoppingFlow(t *testing.T) {
	srv := newTestServer(t)
	adminToken := login(t, srv, "admin@shoply.local", "admin123")

	code, raw := do(t, http.MethodPost, srv.URL+"/admin/products", adminToken, `{"name":"Mug","price_cents":1200,"stock":10}`)
	if code != http.StatusCreated {
		t.Fatalf("create product: got %d, body %s", code, raw)
	}
	var product dto.ProductResponse
	if err := json.Unmarshal(raw, &product); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	// catalog is public
	code, _ = do(t, http.MethodGet, srv.URL+"/products", "", "")
	if code != http.StatusOK {
		t.Fatalf("public list: got %d", code)
	}

	// cart requires auth
	code, _ = do(t, http.MethodGet, srv.URL+"/cart", "", "")
	if code != http.StatusUnauthorized {
		t.Fatalf("cart without token: got %d want 401", code)
	}

	code, _ = do(t, http.MethodPost, srv.URL+"/register", "", `{"email":"dan@example.com","password":"secret123"}`)
	if code != http.StatusCreated {
		t.Fatalf("register: got %d", code)
	}
	userToken := login(t, srv, "dan@example.com", "secret123")

	code, raw = do(t, http.MethodPost, srv.URL+"/cart/items", userToken, fmt.Sprintf(`{"product_id":%d,"quantity":2}`, product.ID))
	if code != http.StatusCreated {
		t.Fatalf("add to cart: got %d, body %s", code, raw)
	}

	code, raw = do(t, http.MethodPost, srv.URL+"/checkout", userToken, "")
	if code != http.StatusCreated {
		t.Fatalf("checkout: got %d, body %s", code, raw)
	}
	var session dto.CheckoutResponse
	if err := json.Unmarshal(raw, &session); err != nil {
		t.Fatalf("decode checkout: %v", err)
	}
	if session.RedirectURL == "" {
		t.Fatalf("no redirect url: %+v", session)
	}

	code, raw = do(t, http.MethodPost, srv.URL+"/checkout/confirm", "", fmt.Sprintf(`{"session_id":%q}`, session.SessionID))
	if code != http.StatusOK {
		t.Fatalf("confirm: got %d, body %s", code, raw)
	}
	var order dto.OrderResponse
	if err := json.Unmarshal(raw, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.Status != models.OrderStatusPaid {
		t.Fatalf("expected paid order, got %q", order.Status)
	}

	code, raw = do(t, http.MethodGet, srv.URL+"/orders", userToken, "")
	if code != http.StatusOK {
		t.Fatalf("list orders: got %d", code)
	}
	var orders []dto.OrderResponse
	if err := json.Unmarshal(raw, &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 1 || orders[0].TotalCents != 2400 {
		t.Fatalf("unexpected orders: %s", raw)
	}

	// stock reflects the sale
	code, raw = do(t, http.MethodGet, srv.URL+fmt.Sprintf("/products/%d", product.ID), "", "")
	if code != http.StatusOK {
		t.Fatalf("get product: got %d", code)
	}
	var after dto.ProductResponse
	if err := json.Unmarshal(raw, &after); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	if after.Stock != 8 {
		t.Fatalf("expected stock 8 after sale, got %d", after.Stock)
	}
}

func TestSocialAdminFlow(t *testing.T) {
	srv := newTestServer(t)
	adminToken := login(t, srv, "admin@shoply.local", "admin123")

	code, raw := do(t, http.MethodPost, srv.URL+"/admin/social/accounts", adminToken, `{"platform":"mastodon","handle":"shoply","access_token":"tok"}`)
	if code != http.StatusCreated {
		t.Fatalf("create account: got %d, body %s", code, raw)
	}
	var account dto.SocialAccountResponse
	if err := json.Unmarshal(raw, &account); err != nil {
		t.Fatalf("decode account: %v", err)
	}

	code, raw = do(t, http.MethodPost, srv.URL+"/admin/social/posts", adminToken, fmt.Sprintf(`{"account_id":%d,"body":"sale starts now"}`, account.ID))
	if code != http.StatusCreated {
		t.Fatalf("schedule post: got %d, body %s", code, raw)
	}

	code, raw = do(t, http.MethodGet, srv.URL+"/metrics/mastodon", adminToken, "")
	if code != http.StatusOK {
		t.Fatalf("metrics: got %d, body %s", code, raw)
	}
	var metrics dto.MetricsResponse
	if err := json.Unmarshal(raw, &metrics); err != nil {
		t.Fatalf("decode metrics: %v", err)
	}
	if metrics.Followers != 10 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}

	code, _ = do(t, http.MethodGet, srv.URL+"/metrics/unknown", adminToken, "")
	if code != http.StatusNotFound {
		t.Fatalf("metrics for unknown platform: got %d want 404", code)
	}
}
