package fixed

// Angle is a binary angle: the full circle maps onto the uint32 range.
type Angle uint32

const (
	Ang45  Angle = 0x20000000
	Ang90  Angle = 0x40000000
	Ang180 Angle = 0x80000000
	Ang270 Angle = 0xc0000000

	FineAngles       = 8192
	FineMask         = FineAngles - 1
	AngleToFineShift = 19

	SlopeRange = 2048
)

// finesine covers 5/4 of a circle so that cosine can be read from the
// same table with a quarter-turn offset.
var finesine [5 * FineAngles / 4]Fixed

func init() {
	const quarter = FineAngles / 4
	for i := range finesine {
		j := i & FineMask
		q := j & (quarter - 1)
		v := quarterSine[q]
		if j&quarter != 0 {
			v = quarterSine[quarter-1-q]
		}
		if j >= FineAngles/2 {
			v = -v
		}
		finesine[i] = v
	}
}

// FineSine returns sin for a fine angle index.
func FineSine(i int) Fixed {
	return finesine[i&FineMask]
}

// FineCosine returns cos for a fine angle index.
func FineCosine(i int) Fixed {
	return finesine[(i&FineMask)+FineAngles/4]
}

// Fine converts a binary angle to a fine table index.
func (a Angle) Fine() int {
	return int(a >> AngleToFineShift)
}

// Cos returns the cosine of a.
func (a Angle) Cos() Fixed {
	return FineCosine(a.Fine())
}

// Sin returns the sine of a.
func (a Angle) Sin() Fixed {
	return FineSine(a.Fine())
}

// FromDegrees converts whole degrees, as stored in map placements, to an Angle.
// Multiples of 45 snap to the exact octant constant.
func FromDegrees(deg int32) Angle {
	if deg%45 != 0 {
		return Angle(uint32(deg) * uint32(Ang45/45))
	}
	return Ang45 * Angle(deg/45)
}

// SlopeDiv returns num/den scaled to [0, SlopeRange] as a tanToAngle
// index. Small denominators saturate.
func SlopeDiv(num, den uint32) int {
	if den < 512 {
		return SlopeRange
	}
	ans := (num << 3) / (den >> 8)
	if ans <= SlopeRange {
		return int(ans)
	}
	return SlopeRange
}

// PointToAngle returns the angle of the vector from (x1,y1) to (x2,y2),
// resolved per octant through the tangent table.
func PointToAngle(x1, y1, x2, y2 Fixed) Angle {
	x := x2 - x1
	y := y2 - y1
	if x == 0 && y == 0 {
		return 0
	}

	if x >= 0 {
		if y >= 0 {
			if x > y {
				return tanToAngle[SlopeDiv(uint32(y), uint32(x))]
			}
			return Ang90 - 1 - tanToAngle[SlopeDiv(uint32(x), uint32(y))]
		}
		y = -y
		if x > y {
			return -tanToAngle[SlopeDiv(uint32(y), uint32(x))]
		}
		return Ang270 + tanToAngle[SlopeDiv(uint32(x), uint32(y))]
	}

	x = -x
	if y >= 0 {
		if x > y {
			return Ang180 - 1 - tanToAngle[SlopeDiv(uint32(y), uint32(x))]
		}
		return Ang90 + tanToAngle[SlopeDiv(uint32(x), uint32(y))]
	}
	y = -y
	if x > y {
		return Ang180 + tanToAngle[SlopeDiv(uint32(y), uint32(x))]
	}
	return Ang270 - 1 - tanToAngle[SlopeDiv(uint32(x), uint32(y))]
}
