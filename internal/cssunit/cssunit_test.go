package cssunit

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want Length
	}{
		{"absent", nil, "0px"},
		{"int", 12, "12px"},
		{"negative", -3, "-3px"},
		{"float", 12.5, "12.5px"},
		{"string", "50%", "50%"},
		{"length", Length("10vh"), "10vh"},
		{"zero literal", "0", "0"},
		{"int8", int8(-3), "-3px"},
		{"int16", int16(5), "5px"},
		{"uint", uint(5), "5px"},
		{"uint8", uint8(200), "200px"},
		{"uint64", uint64(7), "7px"},
		{"float32", float32(0.1), "0.1px"},
		{"named int", cellCount(4), "4px"},
		{"named string", axis("25vw"), "25vw"},
	}
	for _, tc := range cases {
		if got := Resolve(tc.in); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

type cellCount uint16

type axis string

func TestResolveNumbersAreValidLengths(t *testing.T) {
	inputs := []Input{int8(1), int16(2), int32(3), int64(4), uint(5), uint8(6), uint16(7), uint32(8), uint64(9), uintptr(10), float32(1.5), 2.5}
	for _, in := range inputs {
		got := Resolve(in)
		if !got.Valid() {
			t.Fatalf("%T: expected a valid length, got %q", in, got)
		}
		if got.Cells(100) <= 0 {
			t.Fatalf("%T: expected a positive cell offset for %q, got %d", in, got, got.Cells(100))
		}
	}
}

func TestParse(t *testing.T) {
	value, unit, err := Parse("12.5px")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 12.5 || unit != "px" {
		t.Fatalf("expected 12.5px, got %v%s", value, unit)
	}
	if _, unit, err := Parse("0"); err != nil || unit != "px" {
		t.Fatalf("expected literal zero to parse as px, got %q, %v", unit, err)
	}
	for _, bad := range []string{"", "px", "12", "abc%", "12em", "NaNpx"} {
		if _, _, err := Parse(bad); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("expected ErrInvalidLength for %q, got %v", bad, err)
		}
	}
}

func TestCells(t *testing.T) {
	if got := Length("7px").Cells(100); got != 7 {
		t.Fatalf("expected 7 cells, got %d", got)
	}
	if got := Length("50%").Cells(80); got != 40 {
		t.Fatalf("expected 40 cells, got %d", got)
	}
	if got := Length("25vw").Cells(120); got != 30 {
		t.Fatalf("expected 30 cells, got %d", got)
	}
	if got := Length("bogus").Cells(80); got != 0 {
		t.Fatalf("expected invalid length to resolve to 0, got %d", got)
	}
	if !Length("0").Valid() || Length("1em").Valid() {
		t.Fatalf("unexpected validity results")
	}
}
