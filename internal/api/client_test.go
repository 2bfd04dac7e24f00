package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flintapp/flint-cli/internal/models"
)

func TestClientDoRequest(t *testing.T) {
	t.Run("unwraps the data envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": {"accessToken": "tok", "refreshToken": "ref", "userId": "7"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client(), 0)
		resp, err := client.DevLogin(context.Background(), DevLoginRequest{UserID: 7})
		if err != nil {
			t.Fatalf("DevLogin failed: %v", err)
		}
		if resp.AccessToken != "tok" || resp.UserID != "7" {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("falls back to unenveloped bodies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"accessToken": "bare"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client(), 0)
		resp, err := client.DevLogin(context.Background(), DevLoginRequest{UserID: 1})
		if err != nil {
			t.Fatalf("DevLogin failed: %v", err)
		}
		if resp.AccessToken != "bare" {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("returns StatusError for non-2xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client(), 0)
		_, err := client.DevLogin(context.Background(), DevLoginRequest{UserID: 1})

		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("expected StatusError, got %v", err)
		}
		if statusErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d", statusErr.StatusCode)
		}
	})

	t.Run("attaches the bearer token", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"data": {}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client(), 0)
		client.SetToken("secret")
		if _, err := client.GetCollection(context.Background(), "c1"); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if gotAuth != "Bearer secret" {
			t.Errorf("Authorization = %q", gotAuth)
		}
	})
}

func TestSearchContents(t *testing.T) {
	t.Run("maps numeric ids to strings", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("keyword"); got != "dune" {
				t.Errorf("keyword = %q", got)
			}
			w.Write([]byte(`{"data": {"contents": [
				{"id": 42, "title": "Dune", "author": "Villeneuve", "posterUrl": "http://img/42", "year": 2021},
				{"id": 7, "title": "Dune Part Two", "author": "Villeneuve", "posterUrl": "", "year": 2024}
			]}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client(), 0)
		results, err := client.SearchContents(context.Background(), "dune")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}

		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].ContentID != "42" || results[0].ImageURL != "http://img/42" {
			t.Errorf("unexpected first result: %+v", results[0])
		}
		if results[1].ContentID != "7" || results[1].Year != 2024 {
			t.Errorf("unexpected second result: %+v", results[1])
		}
	})

	t.Run("empty result set", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": {"contents": []}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client(), 0)
		results, err := client.SearchContents(context.Background(), "nothing")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected no results, got %v", results)
		}
	})
}

func TestCreateCollection(t *testing.T) {
	t.Run("posts the payload and returns the id", func(t *testing.T) {
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/collections" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"data": {"collectionId": "col-9"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client(), 0)
		req := models.CreateCollectionRequest{
			Title:    "Weekend Picks",
			IsPublic: true,
			ContentList: []models.ContentItem{
				{ContentID: "42", Reason: "an easy rewatch"},
			},
		}
		id, err := client.CreateCollection(context.Background(), req)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if id != "col-9" {
			t.Errorf("id = %q", id)
		}
		if gotBody["title"] != "Weekend Picks" {
			t.Errorf("body title = %v", gotBody["title"])
		}
		contentList, ok := gotBody["contentList"].([]any)
		if !ok || len(contentList) != 1 {
			t.Errorf("contentList = %v", gotBody["contentList"])
		}
	})
}

func TestListCollections(t *testing.T) {
	t.Run("passes cursor and size", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("cursor") != "abc" || q.Get("size") != "5" {
				t.Errorf("query = %v", q)
			}
			w.Write([]byte(`{"data": {"items": [{"collectionId": "c1", "title": "T"}], "nextCursor": "def", "hasNext": true}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client(), 0)
		page, err := client.ListCollections(context.Background(), "abc", 5)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(page.Items) != 1 || page.NextCursor != "def" || !page.HasNext {
			t.Errorf("unexpected page: %+v", page)
		}
	})

	t.Run("first page omits the cursor", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, present := r.URL.Query()["cursor"]; present {
				t.Error("cursor should be omitted on the first page")
			}
			if r.URL.Query().Get("size") != "10" {
				t.Errorf("size should default to 10, got %q", r.URL.Query().Get("size"))
			}
			w.Write([]byte(`{"data": {"items": [], "hasNext": false}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client(), 0)
		if _, err := client.ListCollections(context.Background(), "", 0); err != nil {
			t.Fatalf("list failed: %v", err)
		}
	})
}
