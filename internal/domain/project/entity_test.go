package project

import (
	"reflect"
	"testing"
)

func TestCleanSkills(t *testing.T) {
	got := CleanSkills([]string{" Go ", "", "  ", "SQL", "Go"})
	want := []string{"Go", "SQL", "Go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseStatus(t *testing.T) {
	if s, ok := ParseStatus(" Closed "); !ok || s != StatusClosed {
		t.Fatalf("expected closed, got %q %v", s, ok)
	}
	if _, ok := ParseStatus("archived"); ok {
		t.Fatalf("expected archived to be rejected")
	}
}
