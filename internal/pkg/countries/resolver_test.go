package countries

import "testing"

func TestResolve_ExactName(t *testing.T) {
	c := Resolve("Japan")
	if c == nil || c.Code != "jp" {
		t.Fatalf("expected jp, got %+v", c)
	}
}

func TestResolve_CaseAndWhitespace(t *testing.T) {
	c := Resolve("  nEw   ZeAlAnD ")
	if c == nil || c.Code != "nz" {
		t.Fatalf("expected nz, got %+v", c)
	}
}

func TestResolve_Alias(t *testing.T) {
	cases := map[string]string{
		"uk":          "gb",
		"holland":     "nl",
		"deutschland": "de",
		"usa":         "us",
		"nippon":      "jp",
	}
	for q, want := range cases {
		c := Resolve(q)
		if c == nil || c.Code != want {
			t.Errorf("Resolve(%q): expected %s, got %+v", q, want, c)
		}
	}
}

func TestResolve_ISOCode(t *testing.T) {
	c := Resolve("FR")
	if c == nil || c.Code != "fr" {
		t.Fatalf("expected fr, got %+v", c)
	}
}

func TestResolve_Substring(t *testing.T) {
	c := Resolve("the beautiful south of france")
	if c == nil || c.Code != "fr" {
		t.Fatalf("expected fr, got %+v", c)
	}
}

func TestResolve_FuzzyTypo(t *testing.T) {
	// One substitution in a 11-char name: similarity ~0.91, above threshold.
	c := Resolve("switzarland")
	if c == nil || c.Code != "ch" {
		t.Fatalf("expected ch for 'switzarland', got %+v", c)
	}
}

func TestResolve_BelowThreshold(t *testing.T) {
	if c := Resolve("xqzzyland"); c != nil {
		t.Fatalf("expected no match, got %+v", c)
	}
}

func TestResolve_Empty(t *testing.T) {
	if c := Resolve("   "); c != nil {
		t.Fatalf("expected nil for blank input, got %+v", c)
	}
}

func TestResolve_Diacritics(t *testing.T) {
	c := Resolve("España")
	if c == nil || c.Code != "es" {
		t.Fatalf("expected es, got %+v", c)
	}
}

func TestByCode(t *testing.T) {
	c, ok := ByCode(" DE ")
	if !ok || c.Name != "Germany" {
		t.Fatalf("expected Germany, got %+v (ok=%v)", c, ok)
	}
	if _, ok := ByCode("zz"); ok {
		t.Error("expected miss for unknown code")
	}
}

func TestSimilarity(t *testing.T) {
	if s := similarity("spain", "spain"); s != 1 {
		t.Errorf("identical strings: expected 1, got %f", s)
	}
	if s := similarity("spain", "spine"); s >= 0.88 {
		t.Errorf("expected spain/spine below threshold, got %f", s)
	}
}

func TestAll_SortedCopy(t *testing.T) {
	a := All()
	if len(a) == 0 {
		t.Fatal("dataset is empty")
	}
	a[0].Name = "mutated"
	b := All()
	if b[0].Name == "mutated" {
		t.Error("All must return a copy")
	}
}
