package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticTokens struct{ token string }

func (s staticTokens) AccessToken() string { return s.token }

func TestFetchIngredients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ingredients" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":[
			{"_id":"b1","name":"Краторная булка","type":"bun","price":1255},
			{"_id":"s1","name":"Соус","type":"sauce","price":90}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), nil)
	list, err := c.FetchIngredients(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(list) != 2 || list[0].ID != "b1" || list[1].Price != 90 {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestSubmitOrder_SendsAuthAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("auth header %q", got)
		}
		var body map[string][]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if len(body["ingredients"]) != 3 || body["ingredients"][0] != "b1" || body["ingredients"][2] != "b1" {
			t.Fatalf("body: %v", body)
		}
		w.Write([]byte(`{"success":true,"name":"Бургер","order":{"_id":"oid","number":777,"status":"done"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), staticTokens{"Bearer tok"})
	o, err := c.SubmitOrder(context.Background(), []string{"b1", "s1", "b1"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if o.Number != 777 || o.Name != "Бургер" {
		t.Fatalf("order: %+v", o)
	}
}

func TestFetchOrderByNumber_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/99999" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"orders":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), nil)
	orders, err := c.FetchOrderByNumber(context.Background(), 99999)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty, got %v", orders)
	}
}

func TestRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), nil)
	if _, err := c.FetchFeedOrders(context.Background()); !errors.Is(err, ErrRemote) {
		t.Fatalf("expected ErrRemote, got %v", err)
	}
}

func TestSuccessFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"ingredient ids must be provided"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), staticTokens{})
	if _, err := c.SubmitOrder(context.Background(), nil); !errors.Is(err, ErrRemote) {
		t.Fatalf("expected ErrRemote, got %v", err)
	}
}
