package config

// AnimationID names an entry in a character's animation table.
type AnimationID string

const (
	AnimIdle AnimationID = "idle"
	AnimWalk AnimationID = "walk"
	AnimFall AnimationID = "fall"

	AnimAttackLeftHi  AnimationID = "lhi"
	AnimAttackLeftMd  AnimationID = "lmd"
	AnimAttackLeftLo  AnimationID = "llo"
	AnimAttackRightHi AnimationID = "rhi"
	AnimAttackRightMd AnimationID = "rmd"
	AnimAttackRightLo AnimationID = "rlo"
)

func (id AnimationID) String() string {
	return string(id)
}

// AnimationDef describes one animation as frame indices into a sprite sheet.
type AnimationDef struct {
	Loops       bool
	FrameMillis int
	Frames      []int
}

// SheetFrames is the number of frames in each character's sprite sheet.
var SheetFrames = map[string]int{
	"player": 14,
	"enemy":  3,
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[AnimationID]AnimationDef{
	"player": {
		AnimIdle: {Loops: true, FrameMillis: 400, Frames: []int{0, 1}},

		// Attacks are a windup frame followed by the strike, held until the
		// attack ends.
		AnimAttackLeftHi:  {Loops: false, FrameMillis: 40, Frames: []int{2, 3}},
		AnimAttackLeftMd:  {Loops: false, FrameMillis: 30, Frames: []int{4, 5}},
		AnimAttackLeftLo:  {Loops: false, FrameMillis: 50, Frames: []int{6, 7}},
		AnimAttackRightHi: {Loops: false, FrameMillis: 40, Frames: []int{8, 9}},
		AnimAttackRightMd: {Loops: false, FrameMillis: 30, Frames: []int{10, 11}},
		AnimAttackRightLo: {Loops: false, FrameMillis: 50, Frames: []int{12, 13}},
	},
	"enemy": {
		AnimWalk: {Loops: true, FrameMillis: 150, Frames: []int{0, 1}},
		AnimFall: {Loops: false, FrameMillis: 100, Frames: []int{2}},
	},
}
