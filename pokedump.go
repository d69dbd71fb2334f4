package main

// pokedump - save file dumper for an expanded Fire Red ROM hack.
// usage: go run pokedump.go [dump] savefile.sav
//        go run pokedump.go json savefile.sav
//        go run pokedump.go watch
//
// save file location is read from the ini file (or --dir)

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"pokedump/dex"
	"pokedump/readers"
	"pokedump/tables"
	"pokedump/types"
	"pokedump/utils"
)

func format_pokemon(p *types.Pokemon) []string {
	out := []string{}

	name := tables.Species_name(p.Species_id)
	title := fmt.Sprintf("%v (Lv.%v)", name, p.Level)
	if p.Is_egg {
		title = fmt.Sprintf("Egg (%v)", name)
	}
	if p.Nickname != "" && !strings.EqualFold(p.Nickname, name) {
		title = fmt.Sprintf("%v the %v", p.Nickname, title)
	}
	out = append(out, title)

	out = append(out, fmt.Sprintf("   Seeds: %08x / %08x", p.Personality, p.Trainer_id))
	out = append(out, fmt.Sprintf("   Nature: %v, Ability: %v, Gender: %v",
		tables.Nature_name(p.Nature),
		tables.Ability_name(p.Ability_slot, p.Species_id, p.Has_hidden_ability),
		tables.Gender_name(p.Species_id, p.Personality)))
	out = append(out, fmt.Sprintf("   Item: %v, Friendship: %v, Exp: %v",
		tables.Item_name(p.Held_item_id), p.Friendship, p.Experience))

	moves := []string{}
	for m, id := range p.Move_ids {
		if id != 0 {
			moves = append(moves, fmt.Sprintf("%v (%v PP)", tables.Move_name(id), p.Move_pp[m]))
		}
	}
	if len(moves) > 0 {
		out = append(out, "   Moves: "+strings.Join(moves, ", "))
	}

	out = append(out, fmt.Sprintf("   IVs: %v/%v/%v/%v/%v/%v  EVs: %v/%v/%v/%v/%v/%v",
		p.Ivs.Hp, p.Ivs.Attack, p.Ivs.Defense, p.Ivs.Sp_attack, p.Ivs.Sp_defense, p.Ivs.Speed,
		p.Evs.Hp, p.Evs.Attack, p.Evs.Defense, p.Evs.Sp_attack, p.Evs.Sp_defense, p.Evs.Speed))

	return out
}

func dump_save(save *readers.Save, policy types.EmptyPolicy) []string {
	out := []string{}

	out = append(out, fmt.Sprintf("Trainer: %v (%05d)", save.Trainer_name(), save.Trainer_id()&0xFFFF))
	out = append(out, fmt.Sprintf("Save counter: %v (active slot at 0x%X)", save.Save_index, save.Active.Offset))
	out = append(out, "")

	party, failures, err := readers.Decode_party(save, policy)
	if err != nil {
		out = append(out, "Party unreadable: "+err.Error())
	} else {
		out = append(out, fmt.Sprintf("Party (%v):", len(party)))
		for _, p := range party {
			for _, line := range format_pokemon(p) {
				out = append(out, "   "+line)
			}
		}
	}

	boxes, box_failures := readers.Decode_boxes(save, policy)
	failures = append(failures, box_failures...)

	total := len(party)
	for b, box := range boxes {
		if len(box) == 0 {
			continue
		}
		out = append(out, "")
		out = append(out, fmt.Sprintf("Box %v (%v):", b+1, len(box)))
		for _, p := range box {
			for _, line := range format_pokemon(p) {
				out = append(out, "   "+line)
			}
		}
		total += len(box)
	}

	out = append(out, "")
	out = append(out, fmt.Sprintf("Total: %v Pokemon", total))

	// Never silently drop a slot: say which ones failed and why.
	if len(failures) > 0 {
		out = append(out, fmt.Sprintf("Undecodable slots (%v):", len(failures)))
		for _, f := range failures {
			out = append(out, "   "+f.String())
		}
	}

	return out
}

// JSON output in the shape downstream tooling already consumes.
type json_pokemon struct {
	Species_id         int         `json:"species_id"`
	Name               string      `json:"name"`
	Level              int         `json:"level"`
	Ability_index      int         `json:"ability_index"`
	Ability_name       string      `json:"ability_name"`
	Nature             string      `json:"nature"`
	Move_ids           []int       `json:"move_ids"`
	Move_names         []string    `json:"move_names"`
	Held_item_id       int         `json:"held_item_id"`
	Held_item_name     string      `json:"held_item_name"`
	Ivs                types.Stats `json:"ivs"`
	Evs                types.Stats `json:"evs"`
	Nickname           string      `json:"nickname"`
	Gender             string      `json:"gender"`
	Is_egg             bool        `json:"is_egg"`
	Has_hidden_ability bool        `json:"has_hidden_ability"`
}

type json_output struct {
	Party  []json_pokemon   `json:"party"`
	Boxes  [][]json_pokemon `json:"boxes"`
	Total  int              `json:"total_pokemon"`
	Failed []string         `json:"failed_slots,omitempty"`
}

func to_json_pokemon(p *types.Pokemon) json_pokemon {
	move_ids := []int{}
	move_names := []string{}
	for _, id := range p.Move_ids {
		move_ids = append(move_ids, id)
		if id > 0 {
			move_names = append(move_names, tables.Move_name(id))
		}
	}

	return json_pokemon{
		Species_id:         p.Species_id,
		Name:               strings.ToLower(tables.Species_name(p.Species_id)),
		Level:              p.Level,
		Ability_index:      p.Ability_slot,
		Ability_name:       tables.Ability_name(p.Ability_slot, p.Species_id, p.Has_hidden_ability),
		Nature:             tables.Nature_name(p.Nature),
		Move_ids:           move_ids,
		Move_names:         move_names,
		Held_item_id:       p.Held_item_id,
		Held_item_name:     tables.Item_name(p.Held_item_id),
		Ivs:                p.Ivs,
		Evs:                p.Evs,
		Nickname:           p.Nickname,
		Gender:             tables.Gender_name(p.Species_id, p.Personality),
		Is_egg:             p.Is_egg,
		Has_hidden_ability: p.Has_hidden_ability,
	}
}

func export_json(save *readers.Save, policy types.EmptyPolicy) (string, error) {
	party, failures, err := readers.Decode_party(save, policy)
	if err != nil {
		return "", err
	}
	boxes, box_failures := readers.Decode_boxes(save, policy)
	failures = append(failures, box_failures...)

	out := json_output{Party: []json_pokemon{}, Boxes: [][]json_pokemon{}}
	for _, p := range party {
		out.Party = append(out.Party, to_json_pokemon(p))
	}
	for _, box := range boxes {
		jbox := []json_pokemon{}
		for _, p := range box {
			jbox = append(jbox, to_json_pokemon(p))
		}
		out.Boxes = append(out.Boxes, jbox)
	}
	out.Total = len(out.Party)
	for _, box := range out.Boxes {
		out.Total += len(box)
	}
	for _, f := range failures {
		out.Failed = append(out.Failed, f.String())
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func load_save(dir string, filename string) (*readers.Save, error) {
	full_filename := dir + "/" + filename

	if !strings.HasSuffix(strings.ToUpper(filename), ".SAV") {
		return nil, fmt.Errorf("%v: file extension not recognised", full_filename)
	}

	image, err := os.ReadFile(full_filename)
	if err != nil {
		return nil, err
	}

	return readers.Locate(image)
}

func main() {
	// Deal with args

	arg_info := []struct {
		arg     string
		subargs int
		desc    string
	}{
		{"help", 0, "Display this possibly helpful info"},
		{"check", 0, "Sanity check"},
		{"dump", 1, "Dump a save file as text.  Also the default."},
		{"json", 1, "Dump a save file as JSON"},
		{"watch", 0, "Watch the save directory and track dex milestones"},
	}

	main_arg := ""
	subargs := []string{}
	subargs_needed := 0
	skip := false
	for _, arg := range os.Args[1:] {
		if skip {
			skip = false
			continue
		}
		if arg == "--dir" {
			// consumed by Get_savefile_dir, along with its value
			skip = true
			continue
		}
		if main_arg == "" {
			for _, info := range arg_info {
				if info.arg == arg {
					main_arg = arg
					subargs_needed = info.subargs
					break
				}
			}
			if main_arg == "" {
				// No command word: treat the argument as a file to dump
				main_arg = "dump"
				subargs_needed = 1
				subargs = append(subargs, arg)
			}
		} else if len(subargs) < subargs_needed {
			subargs = append(subargs, arg)
		} else {
			fmt.Println("Unexpected extra argument:", arg)
			os.Exit(1)
		}
	}
	if main_arg == "" {
		main_arg = "help"
	}
	if len(subargs) != subargs_needed {
		fmt.Println(fmt.Sprintf("Expected %v extra arguments; got %v", subargs_needed, len(subargs)))
		os.Exit(1)
	}

	dir := utils.Get_savefile_dir()
	policy := utils.Get_empty_policy()

	switch main_arg {
	case "help":
		for _, info := range arg_info {
			fmt.Println(info.arg, "-", info.desc)
		}

	case "check":
		fmt.Println("Target dir is: " + dir)

	case "dump":
		save, err := load_save(dir, subargs[0])
		if err != nil {
			fmt.Println("Failed to load file -", err)
			os.Exit(1)
		}
		fmt.Println()
		for _, line := range dump_save(save, policy) {
			fmt.Println(line)
		}
		fmt.Println()

	case "json":
		save, err := load_save(dir, subargs[0])
		if err != nil {
			fmt.Println("Failed to load file -", err)
			os.Exit(1)
		}
		text, err := export_json(save, policy)
		if err != nil {
			fmt.Println("Failed to export -", err)
			os.Exit(1)
		}
		fmt.Println(text)

	case "watch":
		events := make(chan *dex.Event)
		watcher := dex.New_watcher(dir, policy)
		go func() {
			for event := range events {
				fmt.Println(event.Name)
				fmt.Println(event.Desc)
				fmt.Println("Category:", event.Category)
				fmt.Println()
			}
		}()

		err := watcher.Start_watching(events)
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Println("Watching...", dir)
		fmt.Println()

		// Wait forever!
		<-make(chan bool)
	}

	os.Exit(0)
}
