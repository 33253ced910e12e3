package assembly

import (
	"errors"
	"testing"

	"stellar/internal/domain"
)

var (
	bun1   = domain.Ingredient{ID: "bun1", Name: "Булка N-200i", Type: domain.IngredientTypeBun, Price: 200}
	bun2   = domain.Ingredient{ID: "bun2", Name: "Флюоресцентная булка", Type: domain.IngredientTypeBun, Price: 988}
	cutlet = domain.Ingredient{ID: "ing1", Name: "Котлета", Type: domain.IngredientTypeFilling, Price: 100}
	sauce  = domain.Ingredient{ID: "ing2", Name: "Соус Spicy-X", Type: domain.IngredientTypeSauce, Price: 50}
)

func TestSetBun_LastWins(t *testing.T) {
	s := New()
	if err := s.SetBun(bun1); err != nil {
		t.Fatalf("set bun: %v", err)
	}
	if err := s.SetBun(bun2); err != nil {
		t.Fatalf("set bun2: %v", err)
	}
	snap := s.Snapshot()
	if snap.Bun == nil || snap.Bun.ID != "bun2" {
		t.Fatalf("expected bun2, got %+v", snap.Bun)
	}
}

func TestSetBun_WrongCategory(t *testing.T) {
	s := New()
	if err := s.SetBun(cutlet); !errors.Is(err, ErrWrongCategory) {
		t.Fatalf("expected ErrWrongCategory, got %v", err)
	}
	if _, err := s.AddItem(bun1); !errors.Is(err, ErrWrongCategory) {
		t.Fatalf("expected ErrWrongCategory for bun item, got %v", err)
	}
}

func TestAddItem_UniqueInstanceIDs(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := s.AddItem(cutlet)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if seen[id] {
			t.Fatalf("instance id %q reused", id)
		}
		seen[id] = true
	}
	if got := len(s.Snapshot().Items); got != 50 {
		t.Fatalf("items: %d", got)
	}
}

func TestRemoveItem(t *testing.T) {
	s := New()
	id1, _ := s.AddItem(cutlet)
	id2, _ := s.AddItem(cutlet)
	s.RemoveItem(id1)
	// повторное удаление и чужой id — no-op
	s.RemoveItem(id1)
	s.RemoveItem("missing")
	snap := s.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].InstanceID != id2 {
		t.Fatalf("unexpected items: %+v", snap.Items)
	}
}

func TestMoveItem(t *testing.T) {
	s := New()
	a, _ := s.AddItem(cutlet)
	b, _ := s.AddItem(sauce)
	if err := s.MoveItem(0, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	snap := s.Snapshot()
	if snap.Items[0].InstanceID != b || snap.Items[1].InstanceID != a {
		t.Fatalf("expected [b a], got %+v", snap.Items)
	}
}

func TestMoveItem_PreservesOthers(t *testing.T) {
	s := New()
	var ids []string
	for i := 0; i < 4; i++ {
		id, _ := s.AddItem(cutlet)
		ids = append(ids, id)
	}
	// [0 1 2 3] -> move(3, 1) -> [0 3 1 2]
	if err := s.MoveItem(3, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	snap := s.Snapshot()
	want := []string{ids[0], ids[3], ids[1], ids[2]}
	for i, w := range want {
		if snap.Items[i].InstanceID != w {
			t.Fatalf("pos %d: want %s, got %s", i, w, snap.Items[i].InstanceID)
		}
	}
}

func TestMoveItem_OutOfRange(t *testing.T) {
	s := New()
	id, _ := s.AddItem(cutlet)
	for _, c := range [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
		if err := s.MoveItem(c[0], c[1]); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("move(%d,%d): expected ErrInvalidIndex, got %v", c[0], c[1], err)
		}
	}
	// состояние не тронуто
	snap := s.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].InstanceID != id {
		t.Fatalf("state mutated: %+v", snap.Items)
	}
}

func TestTotal(t *testing.T) {
	s := New()
	if s.Total() != 0 {
		t.Fatalf("empty total: %d", s.Total())
	}
	s.SetBun(bun1)
	s.AddItem(cutlet)
	s.AddItem(sauce)
	// булка дважды: 2*200 + 100 + 50
	if got := s.Total(); got != 450 {
		t.Fatalf("total: %d", got)
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.SetBun(bun1)
	s.AddItem(cutlet)
	s.Clear()
	snap := s.Snapshot()
	if snap.Bun != nil || len(snap.Items) != 0 || snap.Total != 0 {
		t.Fatalf("not cleared: %+v", snap)
	}
}

func TestIngredientIDs_Bracketed(t *testing.T) {
	s := New()
	if _, ok := s.IngredientIDs(); ok {
		t.Fatalf("expected no ids without bun")
	}
	s.SetBun(bun1)
	s.AddItem(cutlet)
	s.AddItem(sauce)
	ids, ok := s.IngredientIDs()
	if !ok {
		t.Fatalf("expected ids")
	}
	want := []string{"bun1", "ing1", "ing2", "bun1"}
	if len(ids) != len(want) {
		t.Fatalf("ids: %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("pos %d: want %s, got %s", i, want[i], ids[i])
		}
	}
}
