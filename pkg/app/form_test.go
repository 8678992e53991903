package app

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/movie"
)

var ignoreCodec = cmpopts.IgnoreFields(Form{}, "Codec")

func utcForm() Form {
	f := NewForm()
	f.Codec = movie.DateCodec{Location: time.UTC}
	return f
}

func TestFormDefaults(t *testing.T) {
	f := NewForm()
	if f.Title != "" || f.Year != "" || f.PlannedAt != "" {
		t.Fatalf("expected empty text fields, got %+v", f)
	}
	if f.Category != category.Slasher {
		t.Fatalf("expected default category %q, got %q", category.Slasher, f.Category)
	}
	if f.Expanded {
		t.Fatalf("expected selector closed")
	}
}

func TestFormSubmitBuildsDraftAndResets(t *testing.T) {
	f := utcForm()
	f.SetField(FieldTitle, "The Shining")
	f.SetField(FieldYear, "1980")
	f.SetField(FieldPlannedAt, "13/10/2025")
	f.SelectCategory(category.Psychological)

	d, ok := f.Submit()
	if !ok {
		t.Fatalf("expected submit to succeed")
	}
	want := movie.Draft{
		Title:     "The Shining",
		Year:      1980,
		Category:  category.Psychological,
		PlannedAt: time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC).UnixMilli(),
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Fatalf("draft mismatch (-want +got):\n%s", diff)
	}

	reset := utcForm()
	if diff := cmp.Diff(reset, f, ignoreCodec); diff != "" {
		t.Fatalf("form not reset (-want +got):\n%s", diff)
	}
}

func TestFormSubmitNormalizesBadNumbers(t *testing.T) {
	f := utcForm()
	f.SetField(FieldTitle, "It Follows")
	f.SetField(FieldYear, "twenty fourteen")
	f.SetField(FieldPlannedAt, "next friday")
	d, ok := f.Submit()
	if !ok {
		t.Fatalf("expected submit to succeed")
	}
	if d.Year != 0 || d.PlannedAt != 0 {
		t.Fatalf("expected year and date normalized to 0, got %+v", d)
	}
}

func TestFormRejectedSubmitLeavesFieldsUnchanged(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		f := utcForm()
		f.SetField(FieldTitle, title)
		f.SetField(FieldYear, "1999")
		f.SetField(FieldPlannedAt, "31/10/2025")
		f.SelectCategory(category.Classic)
		f.ToggleCategories()
		before := f

		if _, ok := f.Submit(); ok {
			t.Fatalf("title %q: expected rejection", title)
		}
		if diff := cmp.Diff(before, f, ignoreCodec); diff != "" {
			t.Fatalf("title %q: form changed on rejection (-want +got):\n%s", title, diff)
		}
	}
}

func TestFormCategorySelectorToggles(t *testing.T) {
	f := NewForm()
	f.ToggleCategories()
	if !f.Expanded {
		t.Fatalf("expected selector open")
	}
	f.SelectCategory(category.Classic)
	if f.Expanded {
		t.Fatalf("expected selection to close the selector")
	}
	if f.Category != category.Classic {
		t.Fatalf("expected category %q, got %q", category.Classic, f.Category)
	}
	f.ToggleCategories()
	f.ToggleCategories()
	if f.Expanded {
		t.Fatalf("expected second toggle to close the selector")
	}
}

func TestFormValue(t *testing.T) {
	f := NewForm()
	f.SetField(FieldTitle, "a")
	f.SetField(FieldYear, "b")
	f.SetField(FieldPlannedAt, "c")
	for field, want := range map[Field]string{FieldTitle: "a", FieldYear: "b", FieldPlannedAt: "c"} {
		if got := f.Value(field); got != want {
			t.Fatalf("field %s: expected %q, got %q", field, want, got)
		}
	}
}
