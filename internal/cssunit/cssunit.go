// Package cssunit resolves CSS-style lengths ("12px", "50%", "10vw") used for
// menu positions and pivots, and maps them onto terminal cells.
package cssunit

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Length is a canonical CSS length such as "0px", "12.5px" or "50%".
type Length string

// Zero is the length an absent coordinate resolves to.
const Zero Length = "0px"

// Input is anything Resolve accepts: nil, a Go number, a Length or a string.
type Input interface{}

// ErrInvalidLength reports a string that is not "0" or <number><unit>.
var ErrInvalidLength = errors.New("invalid css length")

var suffixes = []string{"px", "%", "vh", "vw"}

// Resolve turns an input into a canonical length. Absent inputs become "0px",
// numbers become "{n}px" and strings are passed through unchanged.
func Resolve(in Input) Length {
	switch v := in.(type) {
	case nil:
		return Zero
	case Length:
		return v
	case string:
		return Length(v)
	case float64:
		return Px(v)
	}
	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Length(strconv.FormatInt(rv.Int(), 10) + "px")
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Length(strconv.FormatUint(rv.Uint(), 10) + "px")
	case reflect.Float32:
		return Length(strconv.FormatFloat(rv.Float(), 'f', -1, 32) + "px")
	case reflect.Float64:
		return Px(rv.Float())
	case reflect.String:
		return Length(rv.String())
	}
	return Length(fmt.Sprint(in))
}

// Px formats n as a pixel length.
func Px(n float64) Length {
	return Length(strconv.FormatFloat(n, 'f', -1, 64) + "px")
}

// Parse validates s and splits it into magnitude and unit. The literal "0" is
// accepted and reported with the "px" unit.
func Parse(s string) (float64, string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "0" {
		return 0, "px", nil
	}
	for _, suffix := range suffixes {
		if !strings.HasSuffix(trimmed, suffix) {
			continue
		}
		raw := strings.TrimSuffix(trimmed, suffix)
		if raw == "" {
			break
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			break
		}
		return value, suffix, nil
	}
	return 0, "", fmt.Errorf("%w: %q", ErrInvalidLength, s)
}

// Valid reports whether l parses.
func (l Length) Valid() bool {
	_, _, err := Parse(string(l))
	return err == nil
}

// Cells converts l into a cell offset along an axis. px map 1:1 onto cells,
// % and the viewport units scale by extent. vh and vw are not axis-checked:
// the host passes the matching extent for the axis being resolved. Invalid
// lengths resolve to 0.
func (l Length) Cells(extent int) int {
	value, unit, err := Parse(string(l))
	if err != nil {
		return 0
	}
	switch unit {
	case "px":
		return int(math.Round(value))
	default:
		return int(math.Round(value * float64(extent) / 100))
	}
}

func (l Length) String() string {
	return string(l)
}
