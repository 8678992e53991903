package filter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/movie"
)

func sample() []movie.Movie {
	return []movie.Movie{
		{ID: 1, Title: "Halloween", Category: category.Slasher},
		{ID: 2, Title: "Nosferatu", Category: category.Classic},
		{ID: 3, Title: "The Shining", Category: category.Psychological},
		{ID: 4, Title: "Scream", Category: category.Slasher},
		{ID: 5, Title: "Dracula", Category: "Classic Universal"},
	}
}

func ids(movies []movie.Movie) []int {
	out := make([]int, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ID)
	}
	return out
}

func TestVisibleAllReturnsInputUnchanged(t *testing.T) {
	in := sample()
	if diff := cmp.Diff(in, Visible(in, All)); diff != "" {
		t.Fatalf("All changed the list (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(in, Visible(in, Filter{})); diff != "" {
		t.Fatalf("zero filter is not All (-want +got):\n%s", diff)
	}
}

func TestVisibleSubstringCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want []int
	}{
		{name: "exact", f: By("Slasher"), want: []int{1, 4}},
		{name: "lower", f: By("classic"), want: []int{2, 5}},
		{name: "substring", f: By("psycho"), want: []int{3}},
		{name: "upper", f: By("UNIVERSAL"), want: []int{5}},
		{name: "none", f: By("Found Footage"), want: []int{}},
		{name: "empty token matches all", f: By(""), want: []int{1, 2, 3, 4, 5}},
		{name: "category", f: ForCategory(category.Classic), want: []int{2, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Visible(sample(), tt.f))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("visible mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVisibleMatchesDefinition(t *testing.T) {
	in := sample()
	for _, token := range []string{"s", "S", "ic", "er", "xyz", "Classic"} {
		var want []int
		for _, m := range in {
			if strings.Contains(strings.ToLower(string(m.Category)), strings.ToLower(token)) {
				want = append(want, m.ID)
			}
		}
		got := ids(Visible(in, By(token)))
		if want == nil {
			want = []int{}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("token %q mismatch (-want +got):\n%s", token, diff)
		}
	}
}

func TestOptionsAndSelection(t *testing.T) {
	opts := Options()
	var labels []string
	for _, o := range opts {
		labels = append(labels, o.Label())
	}
	if diff := cmp.Diff([]string{"All", "Slasher", "Classic", "Psychological"}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if !All.Selected(opts[0]) {
		t.Fatalf("expected All chip selected for sentinel")
	}
	if All.Selected(opts[1]) {
		t.Fatalf("did not expect Slasher chip selected for sentinel")
	}
	if !By("classic").Selected(opts[2]) {
		t.Fatalf("expected Classic chip selected for lower-case token")
	}
	if By("classic").Selected(opts[0]) {
		t.Fatalf("did not expect All chip selected for a token")
	}
	if _, ok := All.Token(); ok {
		t.Fatalf("sentinel should carry no token")
	}
}
