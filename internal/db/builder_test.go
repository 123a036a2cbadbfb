package db

import (
	"strings"
	"testing"
)

func TestIndexBuilder_Build(t *testing.T) {
	idx, err := NewIndex("matchdex:jobs:idx").
		Prefix("matchdex:jobs:").
		TagWithOpts("top_skills", ",", false).
		TagWithOpts("other_skills", ",", false).
		TagWithOpts("seniorities", ",", false).
		Numeric("max_salary").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Name != "matchdex:jobs:idx" {
		t.Errorf("unexpected name: %s", idx.Name)
	}
	if idx.StorageType != StorageHash {
		t.Errorf("expected HASH storage, got %s", idx.StorageType)
	}
	if len(idx.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(idx.Fields))
	}
	if idx.Fields[0].TagSeparator != "," {
		t.Errorf("expected comma separator, got %q", idx.Fields[0].TagSeparator)
	}
	if idx.Fields[3].Type != IndexFieldNumeric {
		t.Errorf("expected numeric field, got %v", idx.Fields[3].Type)
	}
}

func TestIndexBuilder_Validation(t *testing.T) {
	if _, err := NewIndex("").Tag("f").Build(); err == nil {
		t.Error("expected error for empty name")
	}

	if _, err := NewIndex("idx").Build(); err == nil {
		t.Error("expected error for no fields")
	}

	if _, err := NewIndex("idx").Tag("f").Tag("f").Build(); err == nil {
		t.Error("expected error for duplicate field")
	}

	if _, err := NewIndex("bad name").Tag("f").Build(); err == nil {
		t.Error("expected error for invalid identifier")
	}
}

func TestIndexBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewIndex("").MustBuild()
}

func TestIndexDefinition_String(t *testing.T) {
	idx := NewIndex("idx").Prefix("p:").Tag("skills").Numeric("salary").MustBuild()
	s := idx.String()
	for _, want := range []string{"FT.CREATE", "idx", "PREFIX", "p:", "SCHEMA", "skills", "TAG", "salary", "NUMERIC"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in %q", want, s)
		}
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"matchdex:jobs:idx", true},
		{"with-dash_and_underscore", true},
		{"", false},
		{"has space", false},
		{"has/slash", false},
	}
	for _, tc := range tests {
		if got := IsValidIdentifier(tc.s); got != tc.want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
}
