package catalog

import (
	"context"
	"errors"
	"testing"

	"stellar/internal/domain"
)

type fakeLoader struct {
	list  []domain.Ingredient
	err   error
	calls int
}

func (f *fakeLoader) FetchIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	f.calls++
	return f.list, f.err
}

func sample() []domain.Ingredient {
	return []domain.Ingredient{
		{ID: "b1", Name: "Булка", Type: domain.IngredientTypeBun, Price: 200},
		{ID: "s1", Name: "Соус", Type: domain.IngredientTypeSauce, Price: 50},
		{ID: "m1", Name: "Котлета", Type: domain.IngredientTypeFilling, Price: 100},
		{ID: "m2", Name: "Сыр", Type: domain.IngredientTypeFilling, Price: 40},
	}
}

func TestLoadOnce(t *testing.T) {
	ctx := context.Background()
	api := &fakeLoader{list: sample()}
	c := New(api, nil)

	if c.Loaded() {
		t.Fatalf("loaded before Load")
	}
	select {
	case <-c.Ready():
		t.Fatalf("ready before Load")
	default:
	}

	if err := c.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := c.Load(ctx); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if api.calls != 1 {
		t.Fatalf("expected single fetch, got %d", api.calls)
	}
	select {
	case <-c.Ready():
	default:
		t.Fatalf("ready not closed after load")
	}
}

func TestLoadFailureStaysPending(t *testing.T) {
	api := &fakeLoader{err: errors.New("boom")}
	c := New(api, nil)
	if err := c.Load(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if c.Loaded() {
		t.Fatalf("must not be loaded after failure")
	}
	select {
	case <-c.Ready():
		t.Fatalf("ready must stay open after failure")
	default:
	}
}

func TestLookupAndFilters(t *testing.T) {
	c := New(&fakeLoader{list: sample()}, nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	ing, ok := c.Get("m1")
	if !ok || ing.Name != "Котлета" {
		t.Fatalf("get m1: %v %v", ing, ok)
	}
	if _, ok := c.Get("nope"); ok {
		t.Fatalf("unexpected hit")
	}

	if got := len(c.Buns()); got != 1 {
		t.Fatalf("buns: %d", got)
	}
	if got := len(c.Sauces()); got != 1 {
		t.Fatalf("sauces: %d", got)
	}
	if got := len(c.Fillings()); got != 2 {
		t.Fatalf("fillings: %d", got)
	}
	if got := len(c.All()); got != 4 {
		t.Fatalf("all: %d", got)
	}
}
