package game

import (
	"github.com/udisondev/retrogo/internal/fixed"
	"github.com/udisondev/retrogo/internal/info"
	"github.com/udisondev/retrogo/internal/mobj"
)

const (
	maxHealth     = 100
	maxSoulHealth = 200
	bonusAdd      = 6
	greenArmor    = 100
)

// touchSpecial picks up special when the player body touches it.
func (g *Game) touchSpecial(special, toucher *mobj.Mobj) {
	p := toucher.Player
	if p == nil || toucher.IsVoodooDoll() || toucher.Health <= 0 {
		return
	}

	delta := special.Z - toucher.Z
	if delta > toucher.Height || delta < -8*fixed.FracUnit {
		// out of reach
		return
	}

	switch special.Type {
	case info.MTStim:
		if !giveHealth(p, 10, maxHealth) {
			return
		}
	case info.MTMedi:
		if !giveHealth(p, 25, maxHealth) {
			return
		}
	case info.MTSoul:
		giveHealth(p, 100, maxSoulHealth)
	case info.MTArmor:
		if p.Armor >= greenArmor {
			return
		}
		p.Armor = greenArmor
	case info.MTClip:
		if g.ammo >= maxAmmo {
			return
		}
		g.ammo = min(g.ammo+10, maxAmmo)
	case info.MTInv:
		p.Invulnerability = 30 * mobj.TicRate
	case info.MTIns:
		p.Invisibility = 60 * mobj.TicRate
		toucher.Flags |= info.MFFuzz
	default:
		return
	}

	if special.Flags&info.MFCountItem != 0 {
		g.level.Stats.Items++
	}
	p.BonusCount += bonusAdd
	g.level.Remove(special)
	g.opts.Sound.StartSound(nil, info.SfxItemUp)
}

func giveHealth(p *mobj.Player, amount, limit int32) bool {
	if p.Health >= limit {
		return false
	}
	p.Health = min(p.Health+amount, limit)
	p.Mo.Health = p.Health
	return true
}
