package arena

import "github.com/jakecoffman/cp"

// Kind tags every arena object. The numeric value doubles as the cp collision
// type and picks the object's filter category bit.
type Kind int

const (
	KindPlayer Kind = iota + 1
	KindWall
	KindRocket
	KindExplosion
	KindRecoilWave
)

var allKinds = []Kind{KindPlayer, KindWall, KindRocket, KindExplosion, KindRecoilWave}

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindWall:
		return "wall"
	case KindRocket:
		return "rocket"
	case KindExplosion:
		return "explosion"
	case KindRecoilWave:
		return "recoil_wave"
	}
	return "unknown"
}

func (k Kind) CollisionType() cp.CollisionType {
	return cp.CollisionType(k)
}

func (k Kind) Category() uint {
	return 1 << uint(k)
}

// Sensor kinds report contacts but never push anything.
func (k Kind) Sensor() bool {
	switch k {
	case KindRocket, KindExplosion, KindRecoilWave:
		return true
	}
	return false
}
