package language

import "testing"

func TestCatalog_HasExactly22Languages(t *testing.T) {
	got := Catalog()
	if len(got) != 22 {
		t.Errorf("expected 22 languages, got %d", len(got))
	}
}

func TestCatalog_CodesAreUniqueAndNonEmpty(t *testing.T) {
	seen := map[string]string{}
	for name, code := range Catalog() {
		if code == "" {
			t.Errorf("language %q has an empty code", name)
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("code %q is shared by %q and %q", code, prev, name)
		}
		seen[code] = name
	}
}

func TestCatalog_KnownEntries(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"Hindi", "hi"},
		{"Tamil", "ta"},
		{"Bengali", "bn"},
		{"Urdu", "ur"},
		{"Santali", "sat"},
	}

	got := Catalog()
	for _, tt := range tests {
		if got[tt.name] != tt.code {
			t.Errorf("Catalog()[%q] = %q, want %q", tt.name, got[tt.name], tt.code)
		}
	}
}

func TestCatalog_ReturnsACopy(t *testing.T) {
	first := Catalog()
	first["Hindi"] = "tampered"
	first["Klingon"] = "tlh"

	second := Catalog()
	if second["Hindi"] != "hi" {
		t.Errorf("mutation leaked into the catalog: Hindi = %q", second["Hindi"])
	}
	if _, ok := second["Klingon"]; ok {
		t.Error("added entry leaked into the catalog")
	}
}
