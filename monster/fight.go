package monster

// Layout is one possible mob set for a fight, with its probability of
// occurring (§4.E "generate-battle" dispatch: "consult the
// enemy-layout generator for this fight type, which returns a set
// {(prob, enemies)}").
type Layout struct {
	Probability float64
	Monsters    []Instance
}

// Fight names an encounter and knows how to enumerate its layouts.
type Fight struct {
	Name      string
	Generator func() []Layout
}

// Fights is the read-only catalog of registered encounters, resolved
// by the CLI's fight=<name> flag (§6).
var Fights = map[string]*Fight{}

func registerFight(f Fight) {
	Fights[normalizeFightName(f.Name)] = &f
}

// FightByName resolves a case/space/underscore-insensitive fight name
// (§6's CLI fight= parsing rule).
func FightByName(name string) (*Fight, bool) {
	f, ok := Fights[normalizeFightName(name)]
	return f, ok
}

func normalizeFightName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == ' ' || r == '_' || r == '-':
			continue
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func init() {
	registerFight(Fight{
		Name: "Test Mob",
		Generator: func() []Layout {
			return []Layout{{Probability: 1, Monsters: []Instance{NewInstance(TestMob, 100)}}}
		},
	})

	registerFight(Fight{
		Name: "Jaw Worm",
		Generator: func() []Layout {
			return singleMobAverage(JawWorm)
		},
	})

	registerFight(Fight{
		Name: "Cultist",
		Generator: func() []Layout {
			return singleMobAverage(Cultist)
		},
	})

	registerFight(Fight{
		Name: "One Louse",
		Generator: func() []Layout {
			return singleMobHPRange(Louse)
		},
	})

	registerFight(Fight{
		Name: "Two Slimes",
		Generator: func() []Layout {
			a := singleMobHPRange(Slime)
			b := singleMobHPRange(Slime)
			var out []Layout
			for _, la := range a {
				for _, lb := range b {
					out = append(out, Layout{
						Probability: la.Probability * lb.Probability,
						Monsters:    []Instance{la.Monsters[0], lb.Monsters[0]},
					})
				}
			}
			return out
		},
	})
}

// singleMobAverage generates one layout at the template's rounded
// mean HP, per defines.h's normalize_mob_variations=true default
// (§4.C/§9: "if true, use average HP values when generating mobs").
func singleMobAverage(t *Template) []Layout {
	hp := (t.HPMin + t.HPMax) / 2
	return []Layout{{Probability: 1, Monsters: []Instance{NewInstance(t, hp)}}}
}

// singleMobHPRange enumerates every HP value in [HPMin, HPMax] with
// uniform probability — used for templates whose HP spread is a
// first-class chance branch the search should reason about (Louse,
// Slime), rather than being normalized away.
func singleMobHPRange(t *Template) []Layout {
	n := t.HPMax - t.HPMin + 1
	out := make([]Layout, 0, n)
	p := 1.0 / float64(n)
	for hp := t.HPMin; hp <= t.HPMax; hp++ {
		out = append(out, Layout{Probability: p, Monsters: []Instance{NewInstance(t, hp)}})
	}
	return out
}
