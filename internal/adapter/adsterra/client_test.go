package adsterra

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"popforge/internal/config/configs"
	"popforge/internal/core/domain"
)

func newTestClient(endpoint string) *Client {
	c := NewClient(configs.Adsterra{Endpoint: endpoint, Timeout: time.Second}, nil)
	c.rng = rand.New(rand.NewSource(1))
	return c
}

func TestFetchCampaignsWrappedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/campaigns" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key-123456" {
			t.Errorf("unexpected auth header %q", got)
		}
		if got := r.Header.Get("Publisher-ID"); got != "pub-1" {
			t.Errorf("unexpected publisher header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"campaigns":[{"id":"c1","name":"One","cpm":2.5},{"id":"c2","name":"Two","cpm":1.0}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.FetchCampaigns(context.Background(), domain.APICredentials{
		APIKey: "key-123456", PublisherID: "pub-1",
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c1" || got[1].CPM != 1.0 {
		t.Fatalf("unexpected campaigns: %+v", got)
	}
}

func TestFetchCampaignsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"c1","name":"One","cpm":3.1}]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.FetchCampaigns(context.Background(), domain.APICredentials{APIKey: "key-123456"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("unexpected campaigns: %+v", got)
	}
}

func TestFetchCampaignsPrefersCredentialEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	// configured endpoint is unreachable, the credential one wins
	c := newTestClient("http://127.0.0.1:1")
	got, err := c.FetchCampaigns(context.Background(), domain.APICredentials{
		APIKey: "key-123456", Endpoint: srv.URL + "/",
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list from remote, got %d", len(got))
	}
}

func TestFetchCampaignsFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.FetchCampaigns(context.Background(), domain.APICredentials{APIKey: "key-123456"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) < 8 || len(got) > 12 {
		t.Fatalf("expected synthetic fallback of 8-12 campaigns, got %d", len(got))
	}
}

func TestFetchCampaignsFallsBackOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"campaigns": "not a list"`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.FetchCampaigns(context.Background(), domain.APICredentials{APIKey: "key-123456"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected synthetic fallback, got nothing")
	}
}

func TestFetchCampaignsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient("http://127.0.0.1:1")
	_, err := c.FetchCampaigns(ctx, domain.APICredentials{APIKey: "key-123456"})
	if err == nil {
		t.Fatal("expected context error, got synthetic data")
	}
}

func TestValidateKeyRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/validate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") == "Bearer good-key" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if !c.ValidateKey(context.Background(), "good-key") {
		t.Fatal("expected 200 to validate")
	}
	// a 2xx that is not 200 is an explicit rejection
	if c.ValidateKey(context.Background(), "meh-key") {
		t.Fatal("expected non-200 2xx to reject")
	}
}

func TestValidateKeyPermissiveOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if !c.ValidateKey(context.Background(), "abcdef") {
		t.Fatal("expected >5 chars to pass the permissive check")
	}
	if c.ValidateKey(context.Background(), "abcde") {
		t.Fatal("expected 5 chars to fail the permissive check")
	}
	if c.ValidateKey(context.Background(), "  abc  ") {
		t.Fatal("expected surrounding whitespace to be ignored")
	}
}

func TestValidateKeyPermissiveWhenUnreachable(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1")
	if !c.ValidateKey(context.Background(), "long-enough-key") {
		t.Fatal("expected permissive check when endpoint is unreachable")
	}
	if c.ValidateKey(context.Background(), "tiny") {
		t.Fatal("expected short key to fail everywhere")
	}
}
