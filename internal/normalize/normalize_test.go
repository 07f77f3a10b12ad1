package normalize

import (
	"reflect"
	"testing"
)

func TestName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Peanuts", "peanuts"},
		{"  High Fructose Corn Syrup  ", "high fructose corn syrup"},
		{"RED 40\t", "red 40"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := Name(tt.input); got != tt.expected {
			t.Errorf("Name(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestNames_DropsBlank(t *testing.T) {
	got := Names([]string{" Vegan ", "", "  ", "KETO"})
	want := []string{"vegan", "keto"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSplitLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "prefix and trailing period",
			input:    "Ingredients: Sugar, Peanuts, Salt.",
			expected: []string{"Sugar", "Peanuts", "Salt"},
		},
		{
			name:     "parenthesis keeps sub-ingredients together",
			input:    "Chocolate (sugar, cocoa butter), milk; soy lecithin",
			expected: []string{"Chocolate (sugar, cocoa butter)", "milk", "soy lecithin"},
		},
		{
			name:     "newlines separate",
			input:    "water\nsalt\n\nred 40",
			expected: []string{"water", "salt", "red 40"},
		},
		{
			name:     "empty",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		got := SplitLabel(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, got)
		}
	}
}

func TestUniqueStrings_KeepsOrder(t *testing.T) {
	got := UniqueStrings([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   string
		categories []string
	}{
		{"clean ascii", "Sugar, Peanuts, Salt", "Sugar, Peanuts, Salt", nil},
		{"zero-width inside name", "pea\u200Bnuts, salt", "peanuts, salt", []string{"zero-width"}},
		{"bom and soft hyphen", "\uFEFFglu\u00ADten", "gluten", []string{"zero-width", "soft-hyphen"}},
		{"bidi override", "salt\u202E, sugar", "salt, sugar", []string{"bidi"}},
		{"control char", "milk\x07, eggs", "milk, eggs", []string{"control-char"}},
		{"newlines kept", "milk\neggs", "milk\neggs", nil},
		{"cyrillic homoglyph in latin word", "p\u0435anuts", "peanuts", []string{"homoglyph"}},
		{"all-cyrillic word untouched", "сахар", "сахар", nil},
		{"invalid utf8", "salt\xff", "salt", []string{"invalid-utf8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, findings := CleanLabel(tt.input)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
			var categories []string
			for _, f := range findings {
				categories = append(categories, f.Category)
			}
			if !reflect.DeepEqual(categories, tt.categories) {
				t.Errorf("expected findings %v, got %v", tt.categories, categories)
			}
		})
	}
}
