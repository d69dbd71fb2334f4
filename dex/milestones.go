package dex

import (
	"fmt"

	"pokedump/types"
)

// Arg is everything a milestone test may look at: the current party and
// boxes, plus the accumulated seen-species set for this identity.
type Arg struct {
	Party []*types.Pokemon
	Boxes [][]*types.Pokemon
	Seen  map[int]bool

	// Multi-step milestones may report how far along they are.
	Progress string
}

// All flattens party and boxes into one walkable list.
func (a *Arg) All() []*types.Pokemon {
	out := []*types.Pokemon{}
	out = append(out, a.Party...)
	for _, box := range a.Boxes {
		out = append(out, box...)
	}
	return out
}

func (a *Arg) any(test func(*types.Pokemon) bool) bool {
	for _, p := range a.All() {
		if test(p) {
			return true
		}
	}
	return false
}

// is_shiny is the standard test: the two seed halves and the two trainer id
// halves all XORed together, below 8.
func is_shiny(p *types.Pokemon) bool {
	x := (p.Personality >> 16) ^ (p.Personality & 0xFFFF) ^ (p.Trainer_id >> 16) ^ (p.Trainer_id & 0xFFFF)
	return x < 8
}

type Milestone struct {
	Id    string
	Name  string
	Expl  string
	Multi bool // has meaningful Progress
	Test  func(*Arg) bool
}

type Category_list struct {
	Category   string
	Milestones []Milestone
}

var Milestone_list = []Category_list{
	{"Catching", []Milestone{
		{"MID_FIRST", "First Partner", "Have any Pokemon at all", false,
			func(a *Arg) bool { return len(a.All()) > 0 },
		},
		{"MID_PARTY_FULL", "Full House", "Fill all six party slots", false,
			func(a *Arg) bool { return len(a.Party) == types.PARTY_SLOTS },
		},
		{"MID_BOX_FULL", "Boxing Clever", "Fill a storage box to all 30 slots", false,
			func(a *Arg) bool {
				for _, box := range a.Boxes {
					if len(box) == types.BOX_SLOTS {
						return true
					}
				}
				return false
			},
		},
		{"MID_SEEN_50", "Halfway House", "Own 50 different species over time", true,
			func(a *Arg) bool {
				a.Progress = fmt.Sprintf("%v/50 species", len(a.Seen))
				return len(a.Seen) >= 50
			},
		},
		{"MID_SEEN_151", "Living Dex", "Own all 151 species over time", true,
			func(a *Arg) bool {
				a.Progress = fmt.Sprintf("%v/151 species", len(a.Seen))
				return len(a.Seen) >= 151
			},
		},
	}},

	{"Training", []Milestone{
		{"MID_LEVEL_100", "Maxed Out", "Raise a Pokemon to level 100", false,
			func(a *Arg) bool {
				return a.any(func(p *types.Pokemon) bool { return p.Level == types.MAX_LEVEL })
			},
		},
		{"MID_TRAINED", "Fully Trained", "Max out a Pokemon's effort values", false,
			func(a *Arg) bool {
				return a.any(func(p *types.Pokemon) bool {
					total := p.Evs.Hp + p.Evs.Attack + p.Evs.Defense + p.Evs.Speed + p.Evs.Sp_attack + p.Evs.Sp_defense
					return total >= 508
				})
			},
		},
		{"MID_PERFECT", "Perfectionist", "Own a Pokemon with six perfect IVs", false,
			func(a *Arg) bool {
				return a.any(func(p *types.Pokemon) bool {
					return p.Ivs.Hp == types.MAX_IV && p.Ivs.Attack == types.MAX_IV &&
						p.Ivs.Defense == types.MAX_IV && p.Ivs.Speed == types.MAX_IV &&
						p.Ivs.Sp_attack == types.MAX_IV && p.Ivs.Sp_defense == types.MAX_IV
				})
			},
		},
	}},

	{"Curiosities", []Milestone{
		{"MID_EGG", "Precious Cargo", "Carry an egg", false,
			func(a *Arg) bool {
				return a.any(func(p *types.Pokemon) bool { return p.Is_egg })
			},
		},
		{"MID_HIDDEN", "Hidden Talent", "Own a Pokemon with its hidden ability", false,
			func(a *Arg) bool {
				return a.any(func(p *types.Pokemon) bool { return p.Has_hidden_ability })
			},
		},
		{"MID_SHINY", "Lucky Star", "Own a shiny Pokemon", false,
			func(a *Arg) bool { return a.any(is_shiny) },
		},
		{"MID_POKERUS", "Patient Zero", "Own a Pokemon carrying Pokerus", false,
			func(a *Arg) bool {
				return a.any(func(p *types.Pokemon) bool { return p.Pokerus != 0 })
			},
		},
	}},
}
