// Package wp10 defines the WP 1.0 assessment scale used by the ORES
// article quality model: six classes in descending order of quality,
// FA at the top and Stub at the bottom.
package wp10

import "strings"

// classes is the assessment scale in descending order of quality.
var classes = [...]string{"FA", "GA", "B", "C", "Start", "Stub"}

// Classes returns the scale in descending order of quality.
func Classes() []string {
	out := make([]string, len(classes))
	copy(out, classes[:])
	return out
}

// Index returns the position of a class on the scale, with 0 being the
// highest quality. Class names match case-insensitively. Names outside
// the scale return an *UnknownClassError.
func Index(name string) (int, error) {
	for i, class := range classes {
		if strings.EqualFold(class, name) {
			return i, nil
		}
	}
	return 0, &UnknownClassError{Name: name}
}

// Canonical returns the canonical spelling of a class name, so "stub"
// becomes "Stub".
func Canonical(name string) (string, error) {
	idx, err := Index(name)
	if err != nil {
		return "", err
	}
	return classes[idx], nil
}

// Distance returns Index(a) - Index(b). The result is positive when a is
// ranked below b on the scale, so Distance("Stub", "C") is 2.
func Distance(a, b string) (int, error) {
	ia, err := Index(a)
	if err != nil {
		return 0, err
	}
	ib, err := Index(b)
	if err != nil {
		return 0, err
	}
	return ia - ib, nil
}
