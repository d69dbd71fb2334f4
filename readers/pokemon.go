package readers

import (
	"fmt"

	"pokedump/tables"
	"pokedump/types"
)

func decode_name(b []byte) string {
	return tables.Decode_text(b)
}

// decrypt_payload recovers the plaintext substructure bytes.  The key is the
// XOR of the two seed values, applied word by word across the whole payload.
func decrypt_payload(slot []byte, key uint32) []byte {
	plain := make([]byte, types.PAYLOAD_SIZE)
	for w := 0; w < types.PAYLOAD_SIZE/4; w += 1 {
		cur := types.OFF_PAYLOAD + 4*w
		word := Read_uint32_le(slot, &cur) ^ key
		plain[4*w] = uint8(word & 0xFF)
		plain[4*w+1] = uint8((word >> 8) & 0xFF)
		plain[4*w+2] = uint8((word >> 16) & 0xFF)
		plain[4*w+3] = uint8(word >> 24)
	}
	return plain
}

// payload_checksum is the wrapping 16-bit word sum the game stores in the
// header.  It is computed over the *decrypted* payload, which makes it a
// solid garbage detector: junk bytes decrypt to junk and the sum misses.
func payload_checksum(plain []byte) int {
	sum := 0
	cur := 0
	for i := 0; i < types.PAYLOAD_SIZE/2; i++ {
		sum = (sum + Read_uint16_le(plain, &cur)) & 0xFFFF
	}
	return sum
}

// Decode_pokemon decodes one raw record slot into a normalized record.
// All-or-nothing: on any failure the slot yields an error and no record,
// never a half-filled one.
//
// The species id for display comes from the decrypted Growth substructure;
// the header has no species field, only seeds and identity.  Level comes
// from the unencrypted tail, which is the authoritative copy in this layout.
func Decode_pokemon(slot []byte) (*types.Pokemon, error) {
	if len(slot) < types.RECORD_SIZE {
		return nil, &types.DecodeError{Kind: types.DECODE_CORRUPT, Detail: fmt.Sprintf("slot is %v bytes, want %v", len(slot), types.RECORD_SIZE)}
	}

	cur := types.OFF_PERSONALITY
	personality := Read_uint32_le(slot, &cur)
	trainer_id := Read_uint32_le(slot, &cur)

	cur = types.OFF_CHECKSUM
	stored_checksum := Read_uint16_le(slot, &cur)

	plain := decrypt_payload(slot, personality^trainer_id)

	// Validate before trusting a single field
	checksum := payload_checksum(plain)
	if checksum != stored_checksum {
		return nil, &types.DecodeError{
			Kind:   types.DECODE_CHECKSUM,
			Detail: fmt.Sprintf("stored %04x, computed %04x", stored_checksum, checksum),
		}
	}

	// Undo the per-record permutation
	order := tables.Substruct_order[personality%types.ORDER_COUNT]
	subs := [tables.SUB_COUNT][]byte{}
	for pos, which := range order {
		subs[which] = plain[pos*types.SUBSTRUCT_SIZE : (pos+1)*types.SUBSTRUCT_SIZE]
	}

	out := types.Pokemon{
		Personality: personality,
		Trainer_id:  trainer_id,
		Nickname:    decode_name(slot[types.OFF_NICKNAME : types.OFF_NICKNAME+types.NICKNAME_LEN]),
		Level:       int(slot[types.OFF_LEVEL]),
		// Everything the seeds determine
		Nature:       int(personality % types.NATURES),
		Ability_slot: int(personality & 1),
	}

	growth := subs[tables.SUB_GROWTH]
	cur = 0
	out.Species_id = Read_uint16_le(growth, &cur)
	out.Held_item_id = Read_uint16_le(growth, &cur)
	out.Experience = int(Read_uint32_le(growth, &cur))
	Advance(&cur, 1) // pp bonuses
	out.Friendship = int(Read_uint8(growth, &cur))

	attacks := subs[tables.SUB_ATTACKS]
	cur = 0
	for m := 0; m < types.MOVE_SLOTS; m++ {
		out.Move_ids[m] = Read_uint16_le(attacks, &cur)
	}
	for m := 0; m < types.MOVE_SLOTS; m++ {
		out.Move_pp[m] = int(Read_uint8(attacks, &cur))
	}

	condition := subs[tables.SUB_CONDITION]
	cur = 0
	out.Evs.Hp = int(Read_uint8(condition, &cur))
	out.Evs.Attack = int(Read_uint8(condition, &cur))
	out.Evs.Defense = int(Read_uint8(condition, &cur))
	out.Evs.Speed = int(Read_uint8(condition, &cur))
	out.Evs.Sp_attack = int(Read_uint8(condition, &cur))
	out.Evs.Sp_defense = int(Read_uint8(condition, &cur))
	// remaining 6 bytes are contest conditions, which nothing downstream wants

	misc := subs[tables.SUB_MISC]
	cur = 0
	out.Pokerus = int(Read_uint8(misc, &cur))
	out.Met_location = int(Read_uint8(misc, &cur))
	Advance(&cur, 2) // origins word
	iv_word := Read_uint32_le(misc, &cur)

	ivs := [types.STAT_COUNT]int{}
	for i := range ivs {
		ivs[i] = int((iv_word >> (types.IV_BITS * i)) & types.IV_MASK)
	}
	out.Ivs = types.Stats{Hp: ivs[0], Attack: ivs[1], Defense: ivs[2], Speed: ivs[3], Sp_attack: ivs[4], Sp_defense: ivs[5]}
	out.Is_egg = iv_word&(1<<types.EGG_BIT) != 0
	out.Has_hidden_ability = iv_word&(1<<types.HIDDEN_BIT) != 0

	// Range checks.  The masking above makes a bad IV structurally
	// impossible; if this ever fires, suspect the permutation table.
	for _, iv := range ivs {
		if iv > types.MAX_IV {
			return nil, &types.DecodeError{Kind: types.DECODE_CORRUPT, Detail: fmt.Sprintf("IV %v out of range", iv)}
		}
	}
	if out.Level > types.MAX_LEVEL {
		return nil, &types.DecodeError{Kind: types.DECODE_CORRUPT, Detail: fmt.Sprintf("level %v out of range", out.Level)}
	}

	return &out, nil
}

// decode_slots decodes a run of slots, skipping empty ones and isolating
// per-slot failures.  Output order is slot order with the gaps closed up.
func decode_slots(slots [][]byte, policy types.EmptyPolicy) ([]*types.Pokemon, []types.SlotFailure) {
	out := []*types.Pokemon{}
	failures := []types.SlotFailure{}

	for i, slot := range slots {
		if Is_empty(slot, policy) {
			continue
		}
		pokemon, err := Decode_pokemon(slot)
		if err != nil {
			failures = append(failures, types.SlotFailure{Index: i, Err: err})
			continue
		}
		out = append(out, pokemon)
	}

	return out, failures
}

// Decode_party decodes the occupied party slots, preserving slot order.
func Decode_party(save *Save, policy types.EmptyPolicy) ([]*types.Pokemon, []types.SlotFailure, error) {
	slots, err := save.Party_slots()
	if err != nil {
		return nil, nil, err
	}
	party, failures := decode_slots(slots, policy)
	return party, failures, nil
}

// Decode_storage chunks a flat run of box slots into boxes of 30 and
// decodes the occupied ones.  A box is complete every 30 slots *consumed* -
// emptiness affects whether a slot yields a record, never where the box
// boundary falls.  A trailing partial box is kept only if it produced
// records, so a short run like 65 slots comes out as 30/30/5.
func Decode_storage(slots [][]byte, policy types.EmptyPolicy) ([][]*types.Pokemon, []types.SlotFailure) {
	boxes := [][]*types.Pokemon{}
	failures := []types.SlotFailure{}
	current := []*types.Pokemon{}

	for i, slot := range slots {
		if !Is_empty(slot, policy) {
			pokemon, err := Decode_pokemon(slot)
			if err != nil {
				failures = append(failures, types.SlotFailure{Index: i, Err: err})
			} else {
				current = append(current, pokemon)
			}
		}

		if (i+1)%types.BOX_SLOTS == 0 {
			boxes = append(boxes, current)
			current = []*types.Pokemon{}
		}
	}
	if len(current) > 0 {
		boxes = append(boxes, current)
	}

	return boxes, failures
}

// Decode_boxes decodes the full box storage of a located save.
func Decode_boxes(save *Save, policy types.EmptyPolicy) ([][]*types.Pokemon, []types.SlotFailure) {
	return Decode_storage(save.Box_slots(), policy)
}
