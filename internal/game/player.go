package game

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mobj"
)

const (
	maxBob          = fixed.Fixed(0x100000)
	deathViewHeight = 6 * fixed.FracUnit
	ceilingGap      = 4 * fixed.FracUnit
	weaponDelay     = 20
	startAmmo       = 20
	maxAmmo         = 50
)

// playerThink applies the player's command before the thinkers run.
func (g *Game) playerThink(p *mobj.Player) {
	mo := p.Mo
	if mo == nil || mo.Removed() {
		return
	}

	if p.State == mobj.PlayerDead {
		g.deathThink(p)
		return
	}

	cmd := p.Cmd
	mo.Angle += fixed.Angle(uint32(int32(cmd.AngleTurn)) << 16)

	if mo.Z <= mo.FloorZ {
		if cmd.ForwardMove != 0 {
			thrust(p, mo.Angle, fixed.Fixed(cmd.ForwardMove)*2048)
		}
		if cmd.SideMove != 0 {
			thrust(p, mo.Angle-fixed.Ang90, fixed.Fixed(cmd.SideMove)*2048)
		}
	}
	if (cmd.ForwardMove != 0 || cmd.SideMove != 0) && mo.State == info.SPlay {
		g.level.SetState(mo, info.SPlayRun1)
	}

	g.calcHeight(p)

	if g.weaponWait > 0 {
		g.weaponWait--
	}
	if cmd.Buttons&BtAttack != 0 && g.weaponWait == 0 && g.ammo > 0 {
		g.ammo--
		g.weaponWait = weaponDelay
		if g.level.SetState(mo, mo.Info.MissileState) {
			g.level.SpawnPlayerMissile(mo, info.MTRocket)
		}
	}

	if p.DamageCount > 0 {
		p.DamageCount--
	}
	if p.BonusCount > 0 {
		p.BonusCount--
	}
	if p.Invulnerability > 0 {
		p.Invulnerability--
	}
	if p.Invisibility > 0 {
		p.Invisibility--
		if p.Invisibility == 0 {
			mo.Flags &^= info.MFFuzz
		}
	}
}

// thrust pushes the body and the view bob along angle.
func thrust(p *mobj.Player, angle fixed.Angle, move fixed.Fixed) {
	dx := fixed.Mul(move, angle.Cos())
	dy := fixed.Mul(move, angle.Sin())
	p.Mo.MomX += dx
	p.Mo.MomY += dy
	p.MomX += dx
	p.MomY += dy
}

// calcHeight sets the view height with walking bob and landing squat.
func (g *Game) calcHeight(p *mobj.Player) {
	mo := p.Mo

	bob := (fixed.Mul(p.MomX, p.MomX) + fixed.Mul(p.MomY, p.MomY)) >> 2
	if bob > maxBob || bob < 0 {
		bob = maxBob
	}

	if mo.Z > mo.FloorZ {
		p.ViewZ = min(mo.Z+mobj.ViewHeight, mo.CeilingZ-ceilingGap)
		return
	}

	angle := (fixed.FineAngles / 20 * int(g.level.Time)) & fixed.FineMask
	viewBob := fixed.Mul(bob/2, fixed.FineSine(angle))

	if p.State == mobj.PlayerLive {
		p.ViewHeight += p.DeltaViewHeight
		if p.ViewHeight > mobj.ViewHeight {
			p.ViewHeight = mobj.ViewHeight
			p.DeltaViewHeight = 0
		}
		if p.ViewHeight < mobj.ViewHeight/2 {
			p.ViewHeight = mobj.ViewHeight / 2
			if p.DeltaViewHeight <= 0 {
				p.DeltaViewHeight = 1
			}
		}
		if p.DeltaViewHeight != 0 {
			p.DeltaViewHeight += fixed.FracUnit / 4
			if p.DeltaViewHeight == 0 {
				p.DeltaViewHeight = 1
			}
		}
	}

	p.ViewZ = mo.Z + p.ViewHeight + viewBob
	if p.ViewZ > mo.CeilingZ-ceilingGap {
		p.ViewZ = mo.CeilingZ - ceilingGap
	}
}

// deathThink lowers the view to the floor and waits for use to respawn.
func (g *Game) deathThink(p *mobj.Player) {
	if p.ViewHeight > deathViewHeight {
		p.ViewHeight -= fixed.FracUnit
	}
	if p.ViewHeight < deathViewHeight {
		p.ViewHeight = deathViewHeight
	}
	p.DeltaViewHeight = 0
	g.calcHeight(p)

	if p.Cmd.Buttons&BtUse != 0 {
		p.State = mobj.PlayerReborn
	}
}
