package result

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"bla\rblupp\r\n\r": "blablupp",
		" bla   ":          "bla",
		"":                 "leer",
		" ":                "leer",
		"\r\n":             "leer",
		"a &amp; b":        "a & b",
		"&lt;sup&gt;":      "<sup>",
		"  Größe  ":        "Größe",
	}
	for input, want := range cases {
		if got := Normalize(input, DefaultEmptyAnswer); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Butan-1-on",
		" Piperidin \r\n",
		"",
		"a &amp; b",
		"SOCl₂",
		"-0,47 kcal/mol",
		"p_K_Taut = p_K_aKeton × p_K_aEnol",
	}
	for _, input := range inputs {
		once := Normalize(input, DefaultEmptyAnswer)
		twice := Normalize(once, DefaultEmptyAnswer)
		if once != twice {
			t.Fatalf("normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}

	// Nested entities decode one level per call, so a second pass changes them.
	once := Normalize("&amp;lt;", DefaultEmptyAnswer)
	if once != "&lt;" {
		t.Fatalf("expected one decoding level, got %q", once)
	}
	if twice := Normalize(once, DefaultEmptyAnswer); twice != "<" {
		t.Fatalf("expected second pass to decode %q, got %q", once, twice)
	}
}
