package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMul(t *testing.T) {
	assert.Equal(t, Int(6), Mul(Int(2), Int(3)))
	assert.Equal(t, FracUnit/4, Mul(FracUnit/2, FracUnit/2))
	assert.Equal(t, Int(-6), Mul(Int(-2), Int(3)))
}

func TestDivSaturates(t *testing.T) {
	assert.Equal(t, Int(2), Div(Int(6), Int(3)))
	assert.Equal(t, maxFixed, Div(Int(30000), 1))
	assert.Equal(t, minFixed, Div(Int(-30000), 1))
}

func TestApproxDistance(t *testing.T) {
	// 3-4-5 triangle comes out at 5.5 with the octagonal approximation
	assert.Equal(t, Int(5)+FracUnit/2, ApproxDistance(Int(3), Int(-4)))
	assert.Equal(t, Int(10), ApproxDistance(Int(10), 0))
}

func TestAngles(t *testing.T) {
	assert.Equal(t, Ang90, FromDegrees(90))
	assert.Equal(t, Ang45*5, FromDegrees(225))
	assert.InDelta(t, int64(FracUnit), int64(Angle(0).Cos()), 2)
	assert.InDelta(t, 0, int64(Angle(0).Sin()), 30)
	assert.InDelta(t, int64(FracUnit), int64(Ang90.Sin()), 2)
}

func TestFineSineTable(t *testing.T) {
	assert.Equal(t, Fixed(25), FineSine(0))
	assert.Equal(t, Fixed(65535), FineSine(FineAngles/4-1))
	for i := range FineAngles / 4 {
		assert.Equal(t, FineSine(i), FineSine(FineAngles/2-1-i), "mirror of %d", i)
		assert.Equal(t, -FineSine(i), FineSine(i+FineAngles/2), "negation of %d", i)
	}
	assert.Equal(t, FineSine(FineAngles/4), FineCosine(0))
}

func TestSlopeDiv(t *testing.T) {
	assert.Equal(t, 0, SlopeDiv(0, uint32(Int(10))))
	assert.Equal(t, SlopeRange/2, SlopeDiv(uint32(Int(5)), uint32(Int(10))))
	assert.Equal(t, SlopeRange, SlopeDiv(uint32(Int(10)), uint32(Int(10))))
	assert.Equal(t, SlopeRange, SlopeDiv(uint32(Int(10)), 100))
}

func TestPointToAngle(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int32
		want   Angle
	}{
		{name: "east", dx: 10, dy: 0, want: 0},
		{name: "north", dx: 0, dy: 10, want: Ang90 - 1},
		{name: "west", dx: -10, dy: 0, want: Ang180 - 1},
		{name: "south", dx: 0, dy: -10, want: Ang270},
		{name: "north east", dx: 10, dy: 10, want: Ang45 - 1},
		{name: "north west", dx: -10, dy: 10, want: Ang90 + Ang45},
		{name: "south west", dx: -10, dy: -10, want: Ang180 + Ang45 - 1},
		{name: "south east", dx: 10, dy: -10, want: Ang270 + Ang45},
		{name: "shallow", dx: 20, dy: 1, want: tanToAngle[SlopeRange/20]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointToAngle(0, 0, Int(tt.dx), Int(tt.dy))
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, Angle(0), PointToAngle(Int(3), Int(3), Int(3), Int(3)))
	assert.Equal(t, PointToAngle(0, 0, Int(7), Int(3)), PointToAngle(Int(100), Int(100), Int(107), Int(103)))
}
