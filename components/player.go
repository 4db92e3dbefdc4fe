package components

import (
	"fmt"
	"time"

	"github.com/automoto/forward-fighter/config"
	"github.com/yohamta/donburi"
)

// Facing is the side of the player an attack lands on.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	}
	return fmt.Sprintf("Facing(%d)", int(f))
}

// Height is the vertical band an attack covers.
type Height int

const (
	HeightHi Height = iota
	HeightMd
	HeightLo
)

func (h Height) String() string {
	switch h {
	case HeightHi:
		return "hi"
	case HeightMd:
		return "md"
	case HeightLo:
		return "lo"
	}
	return fmt.Sprintf("Height(%d)", int(h))
}

// Duration is how long an attack at this height stays active.
func (h Height) Duration() time.Duration {
	switch h {
	case HeightHi:
		return config.Player.HiAttack
	case HeightMd:
		return config.Player.MdAttack
	case HeightLo:
		return config.Player.LoAttack
	}
	panic(fmt.Sprintf("invalid height %d", int(h)))
}

// offset is the attack hitbox's y offset as a fraction of the player height.
func (h Height) offset() float64 {
	switch h {
	case HeightHi:
		return 2.0 / 3.0
	case HeightMd:
		return 1.0 / 3.0
	case HeightLo:
		return 0
	}
	panic(fmt.Sprintf("invalid height %d", int(h)))
}

// AttackAnimation names the animation played for an attack.
func AttackAnimation(f Facing, h Height) config.AnimationID {
	switch f {
	case FacingLeft:
		switch h {
		case HeightHi:
			return config.AnimAttackLeftHi
		case HeightMd:
			return config.AnimAttackLeftMd
		case HeightLo:
			return config.AnimAttackLeftLo
		}
	case FacingRight:
		switch h {
		case HeightHi:
			return config.AnimAttackRightHi
		case HeightMd:
			return config.AnimAttackRightMd
		case HeightLo:
			return config.AnimAttackRightLo
		}
	}
	panic(fmt.Sprintf("invalid attack %v %v", f, h))
}

// PlayerData owns the player's hurtbox and its six attack hitboxes. At most
// one attack is active at a time.
type PlayerData struct {
	Hurtbox *HitboxData
	Attacks [2][3]*HitboxData // [Facing][Height]

	current  *HitboxData
	timer    time.Duration
	duration time.Duration

	active []*HitboxData
}

// NewPlayerData builds the hitboxes for a player whose body spans
// (x, y, w, h). The hurtbox covers the middle half of the body; attack
// hitboxes straddle the left and right edges.
func NewPlayerData(x, y, w, h float64) *PlayerData {
	p := &PlayerData{
		Hurtbox: NewHitboxWithColor(x+w/4, y, w/2, h, config.UI.HurtboxColor, HitboxPlayer),
	}
	p.Hurtbox.OffsetX = w / 4

	size := config.Player.HitboxSize
	for _, f := range []Facing{FacingLeft, FacingRight} {
		ox := -size / 2
		if f == FacingRight {
			ox = w - size/2
		}
		for _, ht := range []Height{HeightHi, HeightMd, HeightLo} {
			oy := h * ht.offset()
			hb := NewHitboxWithColor(x+ox, y+oy, size, size, config.UI.AttackColor, HitboxPlayerAttack)
			hb.OffsetX = ox
			hb.OffsetY = oy
			p.Attacks[f][ht] = hb
		}
	}

	p.active = []*HitboxData{p.Hurtbox}
	return p
}

// Attack replaces any running attack with the one at (f, h) and restarts the
// attack timer.
func (p *PlayerData) Attack(f Facing, h Height) {
	p.deactivate()
	p.current = p.Attacks[f][h]
	p.timer = 0
	p.duration = h.Duration()
	p.active = append(p.active, p.current)
}

// AdvanceAttackTimer runs the active attack's timer and reports whether the
// attack ended during this call.
func (p *PlayerData) AdvanceAttackTimer(dt time.Duration) bool {
	if p.current == nil {
		return false
	}
	p.timer += dt
	if p.timer <= p.duration {
		return false
	}
	p.deactivate()
	return true
}

func (p *PlayerData) deactivate() {
	p.current = nil
	p.timer = 0
	p.duration = 0
	p.active = p.active[:1]
}

// ActiveHitboxes is the hurtbox followed by the active attack, if any. The
// slice is owned by the player and must not be modified.
func (p *PlayerData) ActiveHitboxes() []*HitboxData {
	return p.active
}

func (p *PlayerData) CurrentAttack() (*HitboxData, bool) {
	return p.current, p.current != nil
}

// SyncHitboxes moves every hitbox to its offset from a player at (x, y).
func (p *PlayerData) SyncHitboxes(x, y float64) {
	p.Hurtbox.Follow(x, y)
	for _, row := range p.Attacks {
		for _, hb := range row {
			hb.Follow(x, y)
		}
	}
}

var Player = donburi.NewComponentType[PlayerData]()
