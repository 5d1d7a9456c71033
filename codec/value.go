package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnsupportedValue is returned for values that have no CSS text form.
var ErrUnsupportedValue = errors.New("codec: unsupported style value")

// unitless lists properties whose numeric values are written without "px".
// Keys are in camelCase; Unitless also accepts the kebab form.
var unitless = map[string]struct{}{
	"animationIterationCount": {},
	"borderImageOutset":       {},
	"borderImageSlice":        {},
	"borderImageWidth":        {},
	"boxFlex":                 {},
	"boxFlexGroup":            {},
	"boxOrdinalGroup":         {},
	"columnCount":             {},
	"columns":                 {},
	"flex":                    {},
	"flexGrow":                {},
	"flexPositive":            {},
	"flexShrink":              {},
	"flexNegative":            {},
	"flexOrder":               {},
	"gridRow":                 {},
	"gridRowEnd":              {},
	"gridRowSpan":             {},
	"gridRowStart":            {},
	"gridColumn":              {},
	"gridColumnEnd":           {},
	"gridColumnSpan":          {},
	"gridColumnStart":         {},
	"fontWeight":              {},
	"lineClamp":               {},
	"lineHeight":              {},
	"opacity":                 {},
	"order":                   {},
	"orphans":                 {},
	"tabSize":                 {},
	"widows":                  {},
	"zIndex":                  {},
	"zoom":                    {},
	"fillOpacity":             {},
	"floodOpacity":            {},
	"stopOpacity":             {},
	"strokeDasharray":         {},
	"strokeDashoffset":        {},
	"strokeMiterlimit":        {},
	"strokeOpacity":           {},
	"strokeWidth":             {},
}

var unitlessKebab = func() map[string]struct{} {
	m := make(map[string]struct{}, len(unitless))
	for k := range unitless {
		m[Property(k)] = struct{}{}
	}
	return m
}()

// Unitless reports whether numeric values of prop are written without a unit.
func Unitless(prop string) bool {
	if strings.HasPrefix(prop, "--") {
		return true
	}
	if _, ok := unitless[prop]; ok {
		return true
	}
	_, ok := unitlessKebab[prop]
	return ok
}

// Value renders a single declaration value for prop. Numbers gain "px"
// unless the property is unitless or the number is zero.
func Value(prop string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedValue, string(t))
		}
		return number(prop, f), nil
	case float64:
		return number(prop, t), nil
	case float32:
		return number(prop, float64(t)), nil
	case int:
		return number(prop, float64(t)), nil
	case int8:
		return number(prop, float64(t)), nil
	case int16:
		return number(prop, float64(t)), nil
	case int32:
		return number(prop, float64(t)), nil
	case int64:
		return number(prop, float64(t)), nil
	case uint:
		return number(prop, float64(t)), nil
	case uint8:
		return number(prop, float64(t)), nil
	case uint16:
		return number(prop, float64(t)), nil
	case uint32:
		return number(prop, float64(t)), nil
	case uint64:
		return number(prop, float64(t)), nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// Values renders v as one or more declaration values. Slices are fallback
// lists (display: ["-webkit-box", "flex"]) and keep their order.
func Values(prop string, v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, it := range t {
			s, err := Value(prop, it)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}
	s, err := Value(prop, v)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

func number(prop string, f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if f == 0 || Unitless(prop) {
		return s
	}
	return s + "px"
}
