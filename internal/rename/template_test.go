package rename

import (
	"testing"
)

func TestTemplateRender(t *testing.T) {
	cs := CaptureSet{
		Matched:    true,
		Positional: []string{"12345", "2025-01-15"},
		Named:      map[string]string{"num": "12345", "date": "2025-01-15"},
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"positional groups", "{2}_INV_{1}.pdf", "2025-01-15_INV_12345.pdf"},
		{"named groups", "{date}_INV_{num}.pdf", "2025-01-15_INV_12345.pdf"},
		{"mixed groups", "{date}_{1}.pdf", "2025-01-15_12345.pdf"},
		{"no placeholders", "fixed.pdf", "fixed.pdf"},
		{"empty template", "", ""},
		{"adjacent placeholders", "{1}{2}", "123452025-01-15"},
		{"empty braces pass through", "a{}b.pdf", "a{}b.pdf"},
		{"invalid key passes through", "a{1x}b.pdf", "a{1x}b.pdf"},
		{"unclosed brace passes through", "doc_{1", "doc_{1"},
		{"lone closing brace passes through", "doc}1.pdf", "doc}1.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTemplate(tt.template).Render(cs)
			if err != nil {
				t.Fatalf("Render(%q) returned error: %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestTemplateRenderErrors(t *testing.T) {
	cs := CaptureSet{
		Matched:    true,
		Positional: []string{"A7B3"},
		Named:      map[string]string{"order": "A7B3"},
	}

	tests := []struct {
		name     string
		template string
		wantErr  string
	}{
		{"index above range", "{2}.pdf", `index 2 out of range`},
		{"index zero", "{0}.pdf", `index 0 out of range`},
		{"unknown named group", "{client}.pdf", `unknown group "client"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate(tt.template).Render(cs)
			if err == nil {
				t.Fatalf("Render(%q) succeeded, want error", tt.template)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("Render(%q) error = %q, want %q", tt.template, err.Error(), tt.wantErr)
			}
		})
	}
}

// Rendering is total whenever every positional index is within range and
// every named key was captured.
func TestTemplateRenderTotalWithinRange(t *testing.T) {
	cs := CaptureSet{
		Matched:    true,
		Positional: []string{"a", "b", "c"},
		Named:      map[string]string{"x": "a"},
	}

	for _, tmpl := range []string{"{1}", "{2}", "{3}", "{x}", "{1}{2}{3}{x}", "p{3}s"} {
		if _, err := ParseTemplate(tmpl).Render(cs); err != nil {
			t.Errorf("Render(%q) = %v, want nil error", tmpl, err)
		}
	}
}
