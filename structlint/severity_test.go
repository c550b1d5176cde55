package structlint

import "testing"

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{ERROR, "ERROR"},
		{WARNING, "WARNING"},
		{NOTICE, "NOTICE"},
		{Severity(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
	}{
		{"ERROR", ERROR},
		{"error", ERROR},
		{"WARNING", WARNING},
		{"warning", WARNING},
		{"NOTICE", NOTICE},
		{"notice", NOTICE},
		{"", WARNING},
		{"bogus", WARNING},
	}

	for _, tt := range tests {
		if got := ParseSeverity(tt.input); got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
