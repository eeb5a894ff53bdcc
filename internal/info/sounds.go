package info

// Sound identifies a sound effect.
type Sound int32

const (
	SfxNone Sound = iota
	SfxPistol
	SfxRocketLaunch
	SfxBarrelExplode
	SfxFireballShoot
	SfxFireballExplode
	SfxBFGShoot
	SfxBFGExplode
	SfxTeleport
	SfxItemBack
	SfxItemUp
	SfxOof
	SfxPlayerPain
	SfxPlayerDeath
	SfxPlayerXDeath
	SfxPossSight
	SfxPossDeath
	SfxPossActive
	SfxImpSight
	SfxImpDeath
	SfxImpActive
	SfxMonsterPain
	SfxSkullAttack
	SfxSlop
	NumSounds
)

var soundNames = [NumSounds]string{
	"none", "pistol", "rlaunc", "barexp", "firsht", "firxpl", "bfg", "rxplod",
	"telept", "itmbk", "itemup", "oof", "plpain", "pldeth", "pdiehi", "posit1",
	"podth1", "posact", "bgsit1", "bgdth1", "bgact", "popain", "sklatk", "slop",
}

func (s Sound) String() string {
	if s < 0 || s >= NumSounds {
		return "unknown"
	}
	return soundNames[s]
}
