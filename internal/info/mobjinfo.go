package info

import "github.com/udisondev/retrogo/internal/fixed"

const (
	MTPlayer MobjType = iota
	MTPossessed
	MTTroop
	MTSkull
	MTBarrel
	MTRocket
	MTBFG
	MTTroopShot
	MTPuff
	MTBlood
	MTTFog
	MTIFog
	MTTrail
	MTClip
	MTStim
	MTMedi
	MTArmor
	MTInv
	MTIns
	MTSoul
	MTDeadPossessed
	NumMobjTypes
)

const fu = fixed.FracUnit

const missileFlags = MFNoBlockmap | MFMissile | MFDropoff | MFNoGravity

// MobjInfos is the per-type descriptor table.
var MobjInfos = [NumMobjTypes]MobjInfo{
	MTPlayer: {
		Name: "player", DoomedNum: -1, SpawnState: SPlay, SpawnHealth: 100,
		SeeState: SPlayRun1, PainState: SPlayPain, PainChance: 255, PainSound: SfxPlayerPain,
		MissileState: SPlayAtk1, DeathState: SPlayDie1, XDeathState: SPlayXDie1,
		DeathSound: SfxPlayerDeath, Radius: 16 * fu, Height: 56 * fu, Mass: 100,
		Flags:  MFSolid | MFShootable | MFDropoff | MFPickup | MFNotDMatch,
		Flags2: MF2CastShadow, Blood: BloodRed,
	},
	MTPossessed: {
		Name: "zombieman", DoomedNum: 3004, SpawnState: SPossStnd, SpawnHealth: 20,
		SeeState: SPossRun1, SeeSound: SfxPossSight, ReactionTime: 8, AttackSound: SfxPistol,
		PainState: SPossPain, PainChance: 200, PainSound: SfxMonsterPain,
		MissileState: SPossAtk1, DeathState: SPossDie1, XDeathState: SPossXDie1,
		DeathSound: SfxPossDeath, Speed: 8 * fu, Radius: 20 * fu, Height: 56 * fu, Mass: 100,
		ActiveSound: SfxPossActive, Flags: MFSolid | MFShootable | MFCountKill,
		Flags2: MF2CastShadow, Blood: BloodRed,
	},
	MTTroop: {
		Name: "imp", DoomedNum: 3001, SpawnState: STrooStnd, SpawnHealth: 60,
		SeeState: STrooRun1, SeeSound: SfxImpSight, ReactionTime: 8,
		PainState: STrooPain, PainChance: 200, PainSound: SfxMonsterPain,
		MeleeState: STrooAtk1, MissileState: STrooAtk1, DeathState: STrooDie1,
		XDeathState: STrooXDie1, DeathSound: SfxImpDeath, Speed: 8 * fu,
		Radius: 20 * fu, Height: 56 * fu, Mass: 100, ActiveSound: SfxImpActive,
		Flags: MFSolid | MFShootable | MFCountKill, Flags2: MF2CastShadow,
		Blood: BloodRed,
	},
	MTSkull: {
		Name: "lost soul", DoomedNum: 3006, SpawnState: SSkullStnd, SpawnHealth: 100,
		SeeState: SSkullRun1, ReactionTime: 8, AttackSound: SfxSkullAttack,
		PainState: SSkullPain, PainChance: 256, PainSound: SfxMonsterPain,
		MissileState: SSkullAtk1, DeathState: SSkullDie1, DeathSound: SfxFireballExplode,
		Speed: 8 * fu, Radius: 16 * fu, Height: 56 * fu, Mass: 50, Damage: 3,
		ActiveSound: SfxSkullAttack,
		Flags:       MFSolid | MFShootable | MFFloat | MFNoGravity | MFNoBlood,
		Flags2:      MF2CastShadow,
	},
	MTBarrel: {
		Name: "barrel", DoomedNum: 2035, SpawnState: SBar1, SpawnHealth: 20,
		DeathState: SBExp, DeathSound: SfxBarrelExplode, Radius: 10 * fu, Height: 42 * fu,
		Mass: 100, Flags: MFSolid | MFShootable | MFNoBlood, Flags2: MF2CastShadow,
	},
	MTRocket: {
		Name: "rocket", DoomedNum: -1, SpawnState: SRocket, SpawnHealth: 1000,
		SeeSound: SfxRocketLaunch, DeathState: SExplode1, DeathSound: SfxBarrelExplode,
		Speed: 20 * fu, Radius: 11 * fu, Height: 8 * fu, Mass: 100, Damage: 20,
		Flags: missileFlags, Flags2: MF2CastShadow,
	},
	MTBFG: {
		Name: "bfg ball", DoomedNum: -1, SpawnState: SBFGShot, SpawnHealth: 1000,
		DeathState: SBFGLand, DeathSound: SfxBFGExplode, Speed: 25 * fu,
		Radius: 13 * fu, Height: 8 * fu, Mass: 100, Damage: 100,
		Flags: missileFlags, Flags2: MF2Translucent,
	},
	MTTroopShot: {
		Name: "imp fireball", DoomedNum: -1, SpawnState: STBall1, SpawnHealth: 1000,
		SeeSound: SfxFireballShoot, DeathState: STBallX1, DeathSound: SfxFireballExplode,
		Speed: 10 * fu, Radius: 6 * fu, Height: 8 * fu, Mass: 100, Damage: 3,
		Flags: missileFlags, Flags2: MF2Translucent,
	},
	MTPuff: {
		Name: "bullet puff", DoomedNum: -1, SpawnState: SPuff1, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100,
		Flags: MFNoBlockmap | MFNoGravity, Flags2: MF2Translucent,
	},
	MTBlood: {
		Name: "blood", DoomedNum: -1, SpawnState: SBlood1, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100,
		Flags: MFNoBlockmap, Flags2: MF2Blood, Blood: BloodRed,
	},
	MTTFog: {
		Name: "teleport fog", DoomedNum: -1, SpawnState: STFog, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100,
		Flags: MFNoBlockmap | MFNoGravity, Flags2: MF2Translucent,
	},
	MTIFog: {
		Name: "item fog", DoomedNum: -1, SpawnState: SIFog, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100,
		Flags: MFNoBlockmap | MFNoGravity, Flags2: MF2Translucent,
	},
	MTTrail: {
		Name: "smoke trail", DoomedNum: -1, SpawnState: STrail1, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100,
		Flags: MFNoBlockmap | MFNoGravity, Flags2: MF2Translucent,
	},
	MTClip: {
		Name: "clip", DoomedNum: 2007, SpawnState: SClip, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100, Flags: MFSpecial,
	},
	MTStim: {
		Name: "stimpack", DoomedNum: 2011, SpawnState: SStim, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100, Flags: MFSpecial,
	},
	MTMedi: {
		Name: "medikit", DoomedNum: 2012, SpawnState: SMedi, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100, Flags: MFSpecial,
	},
	MTArmor: {
		Name: "green armor", DoomedNum: 2018, SpawnState: SArm1, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100, Flags: MFSpecial, Frames: 2,
	},
	MTInv: {
		Name: "invulnerability", DoomedNum: 2022, SpawnState: SPinv, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100, Flags: MFSpecial | MFCountItem,
		Flags2: MF2FloatBob, Frames: 4,
	},
	MTIns: {
		Name: "partial invisibility", DoomedNum: 2024, SpawnState: SPins, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100,
		Flags: MFSpecial | MFCountItem | MFFuzz, Flags2: MF2FloatBob, Frames: 4,
	},
	MTSoul: {
		Name: "soulsphere", DoomedNum: 2013, SpawnState: SSoul, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100, Flags: MFSpecial | MFCountItem,
		Flags2: MF2FloatBob, Frames: 4,
	},
	MTDeadPossessed: {
		Name: "dead zombieman", DoomedNum: 18, SpawnState: SPossDie5, SpawnHealth: 1000,
		Radius: 20 * fu, Height: 16 * fu, Mass: 100, Flags: MFCorpse,
		Flags2: MF2Decoration, Blood: BloodRed,
	},
}
