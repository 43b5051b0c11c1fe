package arena

import "github.com/jakecoffman/cp"

// Rules decides which kinds may touch. It is symmetric in its arguments.
type Rules struct {
	// ChainReactions lets explosions set off rockets flying through them.
	ChainReactions bool
}

func (r Rules) Allows(a, b Kind) bool {
	a, b = canonicalKinds(a, b)
	switch {
	case b == KindRecoilWave:
		return false
	case a == KindPlayer && b == KindRocket:
		return false
	case a == KindRocket && b == KindRocket:
		return false
	case a == KindRocket && b == KindExplosion:
		return r.ChainReactions
	case a == KindExplosion && b == KindExplosion:
		return false
	}
	return true
}

// Mask is the cp filter mask for k: every category k is allowed to touch.
func (r Rules) Mask(k Kind) uint {
	var mask uint
	for _, other := range allKinds {
		if r.Allows(k, other) {
			mask |= other.Category()
		}
	}
	return mask
}

func (r Rules) Filter(k Kind) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, k.Category(), r.Mask(k))
}

func canonicalKinds(a, b Kind) (Kind, Kind) {
	if b < a {
		return b, a
	}
	return a, b
}
