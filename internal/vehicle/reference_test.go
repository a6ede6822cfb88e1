package vehicle

import "testing"

func TestReferenceTables(t *testing.T) {
	seen := make(map[string]bool)
	for _, entry := range makeModels {
		if seen[entry.Make] {
			t.Fatalf("duplicate make %q", entry.Make)
		}
		seen[entry.Make] = true
		if len(entry.Models) == 0 {
			t.Fatalf("make %q has no models", entry.Make)
		}
	}

	for _, a := range makeAliases {
		if !IsMake(a.Make) {
			t.Fatalf("alias %q points at unknown make %q", a.Alias, a.Make)
		}
	}
}

func TestModelAliasesResolveForSomeMake(t *testing.T) {
	for alias, model := range modelAliases {
		found := false
		for _, mk := range makeNames {
			if HasModel(mk, model) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("model alias %q -> %q matches no make", alias, model)
		}
	}
}

func TestMakesAndModelsReturnCopies(t *testing.T) {
	makes := Makes()
	if len(makes) == 0 || makes[0] != "ACURA" {
		t.Fatalf("unexpected makes: %v", makes)
	}
	makes[0] = "CHANGED"
	if Makes()[0] != "ACURA" {
		t.Fatal("Makes exposed internal state")
	}

	models := Models("MAZDA")
	if len(models) == 0 {
		t.Fatal("expected MAZDA models")
	}
	models[0] = "CHANGED"
	if Models("MAZDA")[0] == "CHANGED" {
		t.Fatal("Models exposed internal state")
	}

	if Models("DELOREAN") != nil {
		t.Fatal("expected nil for unknown make")
	}
}

func TestResolveMake(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "toyota", want: "TOYOTA", wantOK: true},
		{in: " chevy ", want: "CHEVROLET", wantOK: true},
		{in: "land rover", want: "LAND ROVER", wantOK: true},
		{in: "toyotas", want: "TOYOTAS", wantOK: false},
		{in: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ResolveMake(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("ResolveMake(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
