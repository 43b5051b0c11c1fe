package arena

import "testing"

func TestRulesAllows(t *testing.T) {
	cases := []struct {
		a, b  Kind
		chain bool
		want  bool
	}{
		{KindPlayer, KindRocket, false, false},
		{KindRocket, KindRocket, false, false},
		{KindRocket, KindExplosion, false, false},
		{KindRocket, KindExplosion, true, true},
		{KindExplosion, KindExplosion, true, false},
		{KindRocket, KindWall, false, true},
		{KindPlayer, KindWall, false, true},
		{KindPlayer, KindExplosion, false, true},
		{KindExplosion, KindWall, false, true},
		{KindRecoilWave, KindPlayer, false, false},
		{KindRecoilWave, KindWall, true, false},
	}
	for _, c := range cases {
		t.Run(c.a.String()+"_"+c.b.String(), func(t *testing.T) {
			r := Rules{ChainReactions: c.chain}
			if got := r.Allows(c.a, c.b); got != c.want {
				t.Fatalf("Allows(%s, %s) = %v, want %v", c.a, c.b, got, c.want)
			}
			if got := r.Allows(c.b, c.a); got != c.want {
				t.Fatalf("Allows(%s, %s) = %v, want %v (swapped)", c.b, c.a, got, c.want)
			}
		})
	}
}

func TestRulesFilterMatchesAllows(t *testing.T) {
	for _, chain := range []bool{false, true} {
		r := Rules{ChainReactions: chain}
		for _, a := range allKinds {
			for _, b := range allKinds {
				reject := r.Filter(a).Reject(r.Filter(b))
				if reject == r.Allows(a, b) {
					t.Fatalf("chain=%v %s/%s: filter reject=%v but Allows=%v", chain, a, b, reject, r.Allows(a, b))
				}
			}
		}
	}
}

func TestRecoilWaveMaskIsEmpty(t *testing.T) {
	if m := (Rules{ChainReactions: true}).Mask(KindRecoilWave); m != 0 {
		t.Fatalf("recoil wave mask = %b, want 0", m)
	}
}
