package result

import (
	"slices"
	"testing"
)

func values(parts []Part) []string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, part.Value)
	}
	return out
}

func TestExplode(t *testing.T) {
	cases := []struct {
		cell string
		want []string
	}{
		{"Teil 1: Butan-1-on; Teil 2: Z; Teil 3: Piperidin", []string{"Butan-1-on", "Z", "Piperidin"}},
		{"Teil 1: OC[C@@H](O)C=O", []string{"OC[C@@H](O)C=O"}},
		{"Teil 1:x; Teil 2: ", []string{"x", ""}},
		{"-0,47 kcal/mol", []string{"-0,47 kcal/mol"}},
		{"{Dropzone 1 -> Nu}, {Dropzone 2 -> Nu}", []string{"{Dropzone 1 -> Nu}, {Dropzone 2 -> Nu}"}},
		{"", []string{""}},
	}
	exploder := NewExploder(DefaultPartTag)
	for _, tc := range cases {
		if got := values(exploder.Explode(tc.cell)); !slices.Equal(got, tc.want) {
			t.Fatalf("Explode(%q) = %q, want %q", tc.cell, got, tc.want)
		}
	}
}

func TestExplodeKeepsLiteralOrder(t *testing.T) {
	parts := NewExploder("Teil").Explode("Teil 2: second; Teil 1: first")
	if got := values(parts); !slices.Equal(got, []string{"second", "first"}) {
		t.Fatalf("expected literal order, got %q", got)
	}
	if inOrder(parts) {
		t.Fatalf("expected out-of-order parts to be detected")
	}
	if got := tags(parts); !slices.Equal(got, []int{2, 1}) {
		t.Fatalf("unexpected tags %v", got)
	}
}

func TestExplodeCustomTag(t *testing.T) {
	var nilExploder *Exploder
	if got := values(nilExploder.Explode("Teil 1: a; Teil 2: b")); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("nil exploder should use the default tag, got %q", got)
	}
	if got := values(NewExploder("Part").Explode("Part 1: a; Part 2: b")); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("unexpected parts %q", got)
	}
}
