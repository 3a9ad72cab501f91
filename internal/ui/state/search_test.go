package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/ze/internal/menu"
)

func TestSearchAppendAndRemove(t *testing.T) {
	s := Search{}
	if s.RemoveLast() {
		t.Fatalf("expected remove on empty query to be a no-op")
	}
	if s.Query != "" {
		t.Fatalf("expected empty query, got %q", s.Query)
	}
	s.Append("ab")
	s.Append("ç")
	if s.Query != "abç" {
		t.Fatalf("unexpected query %q", s.Query)
	}
	if !s.RemoveLast() || s.Query != "ab" {
		t.Fatalf("expected rune-aware removal, got %q", s.Query)
	}
	if s.Append("") {
		t.Fatalf("expected empty append to report no change")
	}
	if !s.Clear() || s.Active() {
		t.Fatalf("expected cleared query, got %q", s.Query)
	}
}

func TestSearchAppendRemoveRoundTrip(t *testing.T) {
	for _, query := range []string{"a", "dev", "Zürich", "日本"} {
		s := Search{Query: query}
		s.Append("x")
		s.RemoveLast()
		if s.Query != query {
			t.Fatalf("round trip changed %q to %q", query, s.Query)
		}
	}
}

func TestApplyEmptyQueryAppendsNewSession(t *testing.T) {
	items := sessionItems("alpha", "beta")
	got := Search{}.Apply(items, true)
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %#v", got)
	}
	if got[2].Kind != menu.KindNewSession {
		t.Fatalf("expected new-session tail, got %s", got[2].Kind)
	}
	if len(items) != 2 {
		t.Fatalf("expected source slice untouched")
	}
}

func TestApplyQueryFiltersAndAppendsCreate(t *testing.T) {
	items := sessionItems("Alpha", "beta", "ALPINE")
	got := Search{Query: "alp"}.Apply(items, true)
	want := []menu.Item{items[0], items[2], menu.CreateFromQueryItem("alp")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected filter result %#v", got)
	}
}

func TestApplyNoMatchLeavesOnlyCreate(t *testing.T) {
	got := Search{Query: "abc"}.Apply(sessionItems("dev", "ops"), true)
	if len(got) != 1 || got[0].Kind != menu.KindCreateFromQuery || got[0].Name != "abc" {
		t.Fatalf("expected only create-from-query item, got %#v", got)
	}
}

func TestApplyTailIsExactlyOneSynthetic(t *testing.T) {
	sources := [][]menu.Item{nil, sessionItems("dev", "abc")}
	for _, src := range sources {
		for _, query := range []string{"", "abc", "zzz"} {
			got := Search{Query: query}.Apply(src, true)
			if len(got) == 0 {
				t.Fatalf("query %q: expected non-empty list", query)
			}
			synthetic := 0
			for _, item := range got {
				if item.Synthetic() {
					synthetic++
				}
			}
			if synthetic != 1 || !got[len(got)-1].Synthetic() {
				t.Fatalf("query %q: expected one synthetic tail item, got %#v", query, got)
			}
			wantKind := menu.KindCreateFromQuery
			if query == "" {
				wantKind = menu.KindNewSession
			}
			if got[len(got)-1].Kind != wantKind {
				t.Fatalf("query %q: expected %s tail, got %s", query, wantKind, got[len(got)-1].Kind)
			}
		}
	}
}

func TestApplyDisabledReturnsItemsUnchanged(t *testing.T) {
	items := menu.LayoutItems([]string{"default", "compact"})
	got := Search{Query: "zzz"}.Apply(items, false)
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("expected layouts unchanged, got %#v", got)
	}
}

func TestFilterItemsIsIdempotent(t *testing.T) {
	items := append(sessionItems("dev", "Devops", "web", "straße"), menu.SeparatorItem())
	for _, query := range []string{"", "dev", "EV", "STRASSE", "x"} {
		once := FilterItems(items, query)
		twice := FilterItems(once, query)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("query %q: filtering not idempotent: %#v vs %#v", query, once, twice)
		}
	}
}

func TestFilterItemsCaseFolding(t *testing.T) {
	items := sessionItems("Über-Dev", "ΣΊΣΥΦΟΣ")
	if got := FilterItems(items, "üBER"); len(got) != 1 || got[0].Name != "Über-Dev" {
		t.Fatalf("expected folded match for Ü, got %#v", got)
	}
	if got := FilterItems(items, "σίσυφος"); len(got) != 1 {
		t.Fatalf("expected folded match for final sigma, got %#v", got)
	}
}

func TestFilterItemsSkipsSeparators(t *testing.T) {
	items := []menu.Item{menu.SeparatorItem(), {Kind: menu.KindSession, Name: "a"}}
	if got := FilterItems(items, "a"); len(got) != 1 || got[0].Kind != menu.KindSession {
		t.Fatalf("expected separator dropped, got %#v", got)
	}
}
