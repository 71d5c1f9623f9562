// Package symptom holds the symptom-log vocabulary: the fixed body-part
// taxonomy, the stiffness regions, and the codecs used to persist a record's
// multi-valued fields.
package symptom

// Hand identifies a hand in the taxonomy.
type Hand string

const (
	HandRight Hand = "R"
	HandLeft  Hand = "L"
)

// Digit identifies a finger.
type Digit string

const (
	DigitThumb  Digit = "Thumb"
	DigitIndex  Digit = "Index"
	DigitMiddle Digit = "Middle"
	DigitRing   Digit = "Ring"
	DigitPinky  Digit = "Pinky"
)

// Part is one selectable body part.
type Part struct {
	ID    string `json:"id"`
	Hand  Hand   `json:"hand"`
	Digit Digit  `json:"digit"`
	Label string `json:"label"`
}

// HandParts groups the parts of one hand in display order.
type HandParts struct {
	Hand  Hand   `json:"hand"`
	Label string `json:"label"`
	Parts []Part `json:"parts"`
}

var hands = [...]struct {
	hand  Hand
	label string
}{
	{HandRight, "右手"},
	{HandLeft, "左手"},
}

var digits = [...]struct {
	digit Digit
	label string
}{
	{DigitThumb, "親指"},
	{DigitIndex, "人差し指"},
	{DigitMiddle, "中指"},
	{DigitRing, "薬指"},
	{DigitPinky, "小指"},
}

var partsByID = buildPartIndex()

func buildPartIndex() map[string]Part {
	index := make(map[string]Part, len(hands)*len(digits))
	for _, h := range hands {
		for _, d := range digits {
			p := Part{ID: PartID(h.hand, d.digit), Hand: h.hand, Digit: d.digit, Label: d.label}
			index[p.ID] = p
		}
	}
	return index
}

// PartID returns the identifier of a (hand, digit) pair, e.g. "R_Index".
func PartID(hand Hand, digit Digit) string {
	return string(hand) + "_" + string(digit)
}

// Taxonomy returns the full taxonomy, right hand first, thumb to pinky.
func Taxonomy() []HandParts {
	result := make([]HandParts, 0, len(hands))
	for _, h := range hands {
		group := HandParts{Hand: h.hand, Label: h.label, Parts: make([]Part, 0, len(digits))}
		for _, d := range digits {
			group.Parts = append(group.Parts, partsByID[PartID(h.hand, d.digit)])
		}
		result = append(result, group)
	}
	return result
}

// LookupPart finds a part by identifier.
func LookupPart(id string) (Part, bool) {
	p, ok := partsByID[id]
	return p, ok
}

// PartLabel returns the display label of a part, or the id itself when the
// id is not part of the taxonomy.
func PartLabel(id string) string {
	if p, ok := partsByID[id]; ok {
		return p.Label
	}
	return id
}
