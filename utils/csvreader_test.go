package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `first_name,last_name,address
Alice,Jones, 1 New Ave
Bob,Smith,2 Old Rd`

	got, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"first_name", "last_name", "address"},
		{"Alice", "Jones", "1 New Ave"},
		{"Bob", "Smith", "2 Old Rd"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}

func TestParseCSVBadRecord(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("a,b\nc")); err == nil {
		t.Fatal("expected error for ragged record")
	}
}
