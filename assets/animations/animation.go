package animations

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/forward-fighter/config"
)

var (
	ErrUnknownAnimation  = errors.New("unknown animation")
	ErrNoActiveAnimation = errors.New("no active animation")
	ErrEmptyAnimation    = errors.New("animation has no frames")
)

// Animation is a sequence of sprite sheet indices shown for FrameDuration
// each.
type Animation struct {
	Loops         bool
	FrameDuration time.Duration
	Frames        []int
}

// Table maps animation names to their definitions.
type Table map[config.AnimationID]Animation

// FromDefs converts config animation definitions into a Table.
func FromDefs(defs map[config.AnimationID]config.AnimationDef) Table {
	table := make(Table, len(defs))
	for id, def := range defs {
		table[id] = Animation{
			Loops:         def.Loops,
			FrameDuration: time.Duration(def.FrameMillis) * time.Millisecond,
			Frames:        append([]int(nil), def.Frames...),
		}
	}
	return table
}

// Animator plays one animation of a table at a time.
type Animator struct {
	table    Table
	activeID config.AnimationID
	active   *Animation
	cursor   int
	elapsed  time.Duration
}

func NewAnimator(table Table) *Animator {
	a := &Animator{}
	a.Configure(table)
	return a
}

// Configure replaces the animation table. The current animation, if any,
// is dropped; Play must be called again before Advance.
func (a *Animator) Configure(table Table) {
	a.table = table
	a.active = nil
	a.activeID = ""
	a.cursor = 0
	a.elapsed = 0
}

// Play restarts playback on the named animation.
func (a *Animator) Play(id config.AnimationID) error {
	anim, ok := a.table[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAnimation, id)
	}
	if len(anim.Frames) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyAnimation, id)
	}
	a.active = &anim
	a.activeID = id
	a.cursor = 0
	a.elapsed = 0
	return nil
}

// Advance moves playback forward by dt. At most one frame step happens per
// call, once the time on the current frame exceeds FrameDuration.
func (a *Animator) Advance(dt time.Duration) error {
	if a.active == nil {
		return ErrNoActiveAnimation
	}
	a.elapsed += dt
	if a.elapsed <= a.active.FrameDuration {
		return nil
	}

	a.cursor++
	if a.cursor >= len(a.active.Frames) {
		if a.active.Loops {
			a.cursor = 0
		} else {
			// hold the final frame
			a.cursor = len(a.active.Frames) - 1
		}
	}
	a.elapsed = 0
	return nil
}

// Frame returns the sheet index of the frame on display, or -1 before the
// first Play.
func (a *Animator) Frame() int {
	if a.active == nil {
		return -1
	}
	return a.active.Frames[a.cursor]
}

// Current returns the name of the playing animation.
func (a *Animator) Current() (config.AnimationID, bool) {
	return a.activeID, a.active != nil
}
