package symptom

// Region is one of the fixed areas a stiffness strength is scored for.
type Region string

const (
	RegionRightHand Region = "R_Hand"
	RegionLeftHand  Region = "L_Hand"
	RegionRightKnee Region = "R_Knee"
	RegionLeftKnee  Region = "L_Knee"
)

// Regions lists every region in chart order.
var Regions = [...]Region{RegionRightHand, RegionLeftHand, RegionRightKnee, RegionLeftKnee}

var regionLabels = map[Region]string{
	RegionRightHand: "右手",
	RegionLeftHand:  "左手",
	RegionRightKnee: "右膝",
	RegionLeftKnee:  "左膝",
}

// Label returns the display name of the region.
func (r Region) Label() string {
	if l, ok := regionLabels[r]; ok {
		return l
	}
	return string(r)
}

// Valid reports whether r is one of the fixed regions.
func (r Region) Valid() bool {
	_, ok := regionLabels[r]
	return ok
}
