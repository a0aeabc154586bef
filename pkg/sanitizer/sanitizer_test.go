package sanitizer

import (
	"reflect"
	"testing"
)

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", "Sprint planning", "Sprint planning"},
		{"leading and trailing spaces", "  Sprint planning  ", "Sprint planning"},
		{"collapses inner whitespace", "Sprint \t  planning", "Sprint planning"},
		{"newlines become spaces", "Sprint\nplanning", "Sprint planning"},
		{"empty", "", ""},
		{"only whitespace", "   \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Fatalf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Dana@Example.COM "); got != "dana@example.com" {
		t.Fatalf("expected lowercased trimmed email, got %q", got)
	}
}

func TestNormalizeEquipmentTags(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil input", nil, nil},
		{"lowercases", []string{"Projector"}, []string{"projector"}},
		{"strips special characters", []string{"white-board", "HDMI cable!"}, []string{"whiteboard", "hdmicable"}},
		{"dedupes preserving order", []string{"projector", "Projector", "whiteboard"}, []string{"projector", "whiteboard"}},
		{"drops empties", []string{"", "  ", "---", "tv"}, []string{"tv"}},
		{"all invalid yields nil", []string{"", "!!!"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeEquipmentTags(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("NormalizeEquipmentTags(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	once := NormalizeEquipmentTags([]string{" White-Board ", "Projector"})
	twice := NormalizeEquipmentTags(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected idempotent normalization, got %v then %v", once, twice)
	}
}
