package cache

import (
	"strings"
	"testing"

	"github.com/doeshing/codescout/internal/domain"
)

func TestKeyIgnoresInsertionOrder(t *testing.T) {
	store := newTestStore(t, domain.CacheSettings{})

	a := map[string]any{}
	a["query"] = "react"
	a["language"] = "typescript"
	a["limit"] = 10

	b := map[string]any{}
	b["limit"] = 10
	b["language"] = "typescript"
	b["query"] = "react"

	if store.Key("cat", a) != store.Key("cat", b) {
		t.Fatalf("structurally equal params hashed differently: %q vs %q",
			store.Key("cat", a), store.Key("cat", b))
	}
}

func TestKeyStructAndMapAgree(t *testing.T) {
	store := newTestStore(t, domain.CacheSettings{})

	req := domain.PackageSearchRequest{Query: "react", Limit: 10}
	asMap := map[string]any{"limit": 10, "query": "react"}

	if store.Key("cat", req) != store.Key("cat", asMap) {
		t.Fatalf("struct and equivalent map hashed differently")
	}
}

func TestKeyDiffersAcrossParamsAndCategories(t *testing.T) {
	store := newTestStore(t, domain.CacheSettings{})

	base := map[string]any{"query": "react"}
	if store.Key("cat", base) == store.Key("cat", map[string]any{"query": "vue"}) {
		t.Fatal("different params must hash differently")
	}
	if store.Key("cat-a", base) == store.Key("cat-b", base) {
		t.Fatal("different categories must yield different keys")
	}
}

func TestKeyFormat(t *testing.T) {
	store := newTestStore(t, domain.CacheSettings{KeyVersion: "v1"})
	key := store.Key(domain.CategoryCodeSearch, map[string]any{"query": "x"})
	if !strings.HasPrefix(key, "v1-"+domain.CategoryCodeSearch+":") {
		t.Fatalf("key %q lacks version-category prefix", key)
	}
	hash := key[strings.IndexByte(key, ':')+1:]
	if len(hash) != 32 {
		t.Fatalf("hash part %q is not an md5 hex digest", hash)
	}
}
