package symptom

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Stiffness is the decoded form of a record's stiffness column.
type Stiffness struct {
	Parts    []string       `json:"parts"`
	Strength map[Region]int `json:"strength"`
}

// EmptyStiffness is the value substituted for missing or corrupt content.
func EmptyStiffness() Stiffness {
	return Stiffness{Parts: []string{}, Strength: map[Region]int{}}
}

// NewStiffness builds a Stiffness from submitted values. Duplicate and blank
// parts are dropped, strengths for unknown regions are ignored.
func NewStiffness(parts []string, strength map[Region]int) Stiffness {
	s := EmptyStiffness()
	s.Parts = uniqueTokens(parts)
	for r, v := range strength {
		if r.Valid() {
			s.Strength[r] = v
		}
	}
	return s
}

// StrengthOf returns the strength recorded for r, 0 when absent.
func (s Stiffness) StrengthOf(r Region) int {
	return s.Strength[r]
}

// Encode serializes s for storage.
func (s Stiffness) Encode() (string, error) {
	if s.Parts == nil {
		s.Parts = []string{}
	}
	if s.Strength == nil {
		s.Strength = map[Region]int{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode stiffness: %w", err)
	}
	return string(b), nil
}

type storedStiffness struct {
	Parts    []string                   `json:"parts"`
	Strength map[string]json.RawMessage `json:"strength"`
}

// ErrCorruptStiffness is returned by ParseStiffness for content that is not
// a stiffness object.
var ErrCorruptStiffness = errors.New("corrupt stiffness content")

// ParseStiffness parses stored stiffness content. Empty content is the empty
// default. Strengths may be stored either as numbers or as numeric strings;
// unparseable values are left out.
func ParseStiffness(text string) (Stiffness, error) {
	if strings.TrimSpace(text) == "" {
		return EmptyStiffness(), nil
	}

	var stored storedStiffness
	if err := json.Unmarshal([]byte(text), &stored); err != nil {
		return EmptyStiffness(), fmt.Errorf("%w: %v", ErrCorruptStiffness, err)
	}

	s := EmptyStiffness()
	if stored.Parts != nil {
		s.Parts = stored.Parts
	}
	for _, r := range Regions {
		raw, ok := stored.Strength[string(r)]
		if !ok {
			continue
		}
		if v, ok := parseRawStrength(raw); ok {
			s.Strength[r] = v
		}
	}
	return s, nil
}

// DecodeStiffness is ParseStiffness with corruption masked: it never fails
// and yields EmptyStiffness for anything that does not parse.
func DecodeStiffness(text string) Stiffness {
	s, err := ParseStiffness(text)
	if err != nil {
		return EmptyStiffness()
	}
	return s
}

func parseRawStrength(raw json.RawMessage) (int, bool) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseStrength coerces a submitted strength to an integer, 0 when it is
// empty or not an integer.
func ParseStrength(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

// StrengthFromJSON is ParseStrength for a JSON value that may be a number or
// a numeric string.
func StrengthFromJSON(raw json.RawMessage) int {
	n, _ := parseRawStrength(raw)
	return n
}
