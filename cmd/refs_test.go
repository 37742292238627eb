package cmd

import (
	"errors"
	"reflect"
	"testing"

	sim "github.com/rajvardhan161/os-lab/sim"
)

func TestParseReferenceString_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []sim.PageID
	}{
		{"plain", "1,2,3", []sim.PageID{1, 2, 3}},
		{"spaces around tokens", " 1 , 2 ,3 ", []sim.PageID{1, 2, 3}},
		{"single token", "7", []sim.PageID{7}},
		{"zero is a valid page", "0,1,0", []sim.PageID{0, 1, 0}},
		{"empty input", "", []sim.PageID{}},
		{"only whitespace", "   ", []sim.PageID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReferenceString(tt.input)
			if err != nil {
				t.Fatalf("ParseReferenceString(%q) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseReferenceString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseReferenceString_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"letters", "1,two,3"},
		{"negative page", "1,-2,3"},
		{"empty token", "1,,3"},
		{"trailing comma", "1,2,"},
		{"float", "1.5,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReferenceString(tt.input)
			if !errors.Is(err, sim.ErrMalformedInput) {
				t.Errorf("ParseReferenceString(%q): got err %v, want ErrMalformedInput", tt.input, err)
			}
		})
	}
}
