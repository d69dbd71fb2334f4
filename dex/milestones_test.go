package dex

import (
	"testing"

	"pokedump/types"
)

func find(id string) *Milestone {
	for _, list := range Milestone_list {
		for i := range list.Milestones {
			if list.Milestones[i].Id == id {
				return &list.Milestones[i]
			}
		}
	}
	return nil
}

func mon(species int) *types.Pokemon {
	return &types.Pokemon{Species_id: species, Level: 5, Personality: uint32(species) * 977}
}

func Test_All_Flattens(t *testing.T) {
	arg := Arg{
		Party: []*types.Pokemon{mon(1), mon(4)},
		Boxes: [][]*types.Pokemon{{mon(7)}, {}, {mon(25), mon(39)}},
	}
	if got := len(arg.All()); got != 5 {
		t.Errorf("All() returned %v records, want 5", got)
	}
}

func Test_Milestone_First(t *testing.T) {
	m := find("MID_FIRST")
	if m.Test(&Arg{}) {
		t.Error("unlocked with no Pokemon at all")
	}
	if !m.Test(&Arg{Boxes: [][]*types.Pokemon{{mon(10)}}}) {
		t.Error("not unlocked with a boxed Pokemon")
	}
}

func Test_Milestone_BoxFull(t *testing.T) {
	m := find("MID_BOX_FULL")

	box := []*types.Pokemon{}
	for i := 0; i < types.BOX_SLOTS-1; i++ {
		box = append(box, mon(1+i))
	}
	if m.Test(&Arg{Boxes: [][]*types.Pokemon{box}}) {
		t.Error("unlocked with 29 in a box")
	}

	box = append(box, mon(150))
	if !m.Test(&Arg{Boxes: [][]*types.Pokemon{box}}) {
		t.Error("not unlocked with a full box")
	}
}

func Test_Milestone_Seen_Progress(t *testing.T) {
	m := find("MID_SEEN_50")

	seen := map[int]bool{}
	for i := 0; i < 12; i++ {
		seen[i+1] = true
	}
	arg := Arg{Seen: seen}
	if m.Test(&arg) {
		t.Error("unlocked with 12 species")
	}
	if arg.Progress != "12/50 species" {
		t.Errorf("progress %q", arg.Progress)
	}

	for i := 0; i < 50; i++ {
		seen[i+1] = true
	}
	if !m.Test(&arg) {
		t.Error("not unlocked with 50 species")
	}
}

func Test_Milestone_Perfect(t *testing.T) {
	m := find("MID_PERFECT")

	almost := mon(133)
	almost.Ivs = types.Stats{Hp: 31, Attack: 31, Defense: 31, Speed: 31, Sp_attack: 31, Sp_defense: 30}
	if m.Test(&Arg{Party: []*types.Pokemon{almost}}) {
		t.Error("unlocked with a 5x31 spread")
	}

	perfect := mon(133)
	perfect.Ivs = types.Stats{Hp: 31, Attack: 31, Defense: 31, Speed: 31, Sp_attack: 31, Sp_defense: 31}
	if !m.Test(&Arg{Party: []*types.Pokemon{perfect}}) {
		t.Error("not unlocked with a 6x31 spread")
	}
}

func Test_Milestone_Shiny(t *testing.T) {
	m := find("MID_SHINY")

	// seed halves XOR trainer halves below 8 means shiny
	shiny := &types.Pokemon{Species_id: 129, Personality: 0x12345678, Trainer_id: 0x12345678 ^ 0x0003}
	if !is_shiny(shiny) {
		t.Fatal("fixture isn't shiny")
	}
	if !m.Test(&Arg{Party: []*types.Pokemon{shiny}}) {
		t.Error("not unlocked with a shiny")
	}

	dull := &types.Pokemon{Species_id: 129, Personality: 0x12345678, Trainer_id: 0x00001111}
	if m.Test(&Arg{Party: []*types.Pokemon{dull}}) {
		t.Error("unlocked with a non-shiny")
	}
}

func Test_Milestone_Flags(t *testing.T) {
	egg := mon(1)
	egg.Is_egg = true
	if !find("MID_EGG").Test(&Arg{Party: []*types.Pokemon{egg}}) {
		t.Error("egg milestone not unlocked")
	}

	hidden := mon(6)
	hidden.Has_hidden_ability = true
	if !find("MID_HIDDEN").Test(&Arg{Party: []*types.Pokemon{hidden}}) {
		t.Error("hidden-ability milestone not unlocked")
	}

	sick := mon(19)
	sick.Pokerus = 0x14
	if !find("MID_POKERUS").Test(&Arg{Party: []*types.Pokemon{sick}}) {
		t.Error("pokerus milestone not unlocked")
	}
}
