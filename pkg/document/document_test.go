package document

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name     string
		pairs    []string
		wantCols []string
		wantVals []string
	}{
		{"empty", nil, []string{}, []string{}},
		{"keeps insertion order", []string{"zeta", "1", "alpha", "2"}, []string{"zeta", "alpha"}, []string{"1", "2"}},
		{"trailing column gets empty value", []string{"name", "Ann", "city"}, []string{"name", "city"}, []string{"Ann", ""}},
		{"duplicate column overwrites in place", []string{"a", "1", "b", "2", "a", "3"}, []string{"a", "b"}, []string{"3", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord(tt.pairs...)
			if got := Columns(r); !reflect.DeepEqual(got, tt.wantCols) {
				t.Errorf("Columns() = %v, want %v", got, tt.wantCols)
			}
			if got := Values(r); !reflect.DeepEqual(got, tt.wantVals) {
				t.Errorf("Values() = %v, want %v", got, tt.wantVals)
			}
		})
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want int
	}{
		{"lines", Lines{"a", "b"}, 2},
		{"object", Object{"a": 1}, 1},
		{"array", Array{1, 2, 3}, 3},
		{"records", Records{NewRecord("a", "1")}, 1},
		{"nil lines", Lines(nil), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Len(tt.doc); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUnexpectedDocument(t *testing.T) {
	err := UnexpectedDocument(FormatCSV, Lines{"x"})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}
	want := "malformed input: csv handler cannot take document.Lines"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
