package options

import "testing"

func TestGetFilter(t *testing.T) {
	tests := []struct {
		in    string
		label string
	}{
		{in: "", label: "All"},
		{in: "clássico", label: "Classic"},
		{in: "PSYCHOLOGICAL", label: "Psychological"},
		{in: "lash", label: "lash"},
	}
	for _, tt := range tests {
		o := UIOptions{Filter: tt.in}
		if got := o.GetFilter().Label(); got != tt.label {
			t.Fatalf("GetFilter(%q) label = %q, want %q", tt.in, got, tt.label)
		}
	}
}
