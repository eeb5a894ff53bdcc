package info

import "github.com/udisondev/retrogo/internal/fixed"

const (
	SprPlay SpriteNum = iota
	SprPoss
	SprTroo
	SprSkul
	SprBar1
	SprBexp
	SprMisl
	SprBfs1
	SprBfe1
	SprBal1
	SprPuff
	SprBlud
	SprTfog
	SprIfog
	SprClip
	SprStim
	SprMedi
	SprArm1
	SprPinv
	SprPins
	SprSoul
	NumSprites
)

type spriteDef struct {
	name          string
	width, height int32 // first frame size in map units
}

var sprites = [NumSprites]spriteDef{
	{"PLAY", 38, 56},
	{"POSS", 42, 55},
	{"TROO", 42, 57},
	{"SKUL", 36, 46},
	{"BAR1", 23, 32},
	{"BEXP", 34, 40},
	{"MISL", 12, 25},
	{"BFS1", 31, 31},
	{"BFE1", 60, 58},
	{"BAL1", 15, 16},
	{"PUFF", 7, 8},
	{"BLUD", 6, 8},
	{"TFOG", 39, 59},
	{"IFOG", 20, 31},
	{"CLIP", 8, 11},
	{"STIM", 14, 14},
	{"MEDI", 28, 19},
	{"ARM1", 31, 17},
	{"PINV", 14, 25},
	{"PINS", 14, 25},
	{"SOUL", 14, 25},
}

func (s SpriteNum) String() string {
	if s < 0 || s >= NumSprites {
		return "????"
	}
	return sprites[s].name
}

// SpriteTable answers sprite dimension queries from the built-in sizes.
type SpriteTable struct{}

// Width returns the first-frame width of s.
func (SpriteTable) Width(s SpriteNum) fixed.Fixed {
	if s < 0 || s >= NumSprites {
		return 0
	}
	return fixed.Int(sprites[s].width)
}

// Height returns the first-frame height of s.
func (SpriteTable) Height(s SpriteNum) fixed.Fixed {
	if s < 0 || s >= NumSprites {
		return 0
	}
	return fixed.Int(sprites[s].height)
}
