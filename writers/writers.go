package writers

// Byte write primitives plus the synthetic record encoder.
// The encoder is the decoder's mirror - same key derivation, same
// permutation table, same checksum - and exists so tests and fixture
// generators can round-trip records.  Nothing here writes save images.

import (
	"pokedump/tables"
	"pokedump/types"
)

func Put_uint8(b []byte, cur *int, v uint8) {
	b[*cur] = v
	*cur += 1
}

func Put_uint16_le(b []byte, cur *int, v int) {
	b[*cur] = uint8(v & 0xFF)
	b[*cur+1] = uint8((v >> 8) & 0xFF)
	*cur += 2
}

func Put_uint32_le(b []byte, cur *int, v uint32) {
	for i := 0; i < 4; i++ {
		b[*cur+i] = uint8((v >> (8 * i)) & 0xFF)
	}
	*cur += 4
}

func Put_bytes(b []byte, cur *int, data []byte) {
	copy(b[*cur:], data)
	*cur += len(data)
}

// build_substructs lays out the four plaintext substructures in canonical
// order (Growth, Attacks, Condition, Misc).
func build_substructs(p *types.Pokemon) [tables.SUB_COUNT][]byte {
	out := [tables.SUB_COUNT][]byte{}
	for i := range out {
		out[i] = make([]byte, types.SUBSTRUCT_SIZE)
	}

	cur := 0
	Put_uint16_le(out[tables.SUB_GROWTH], &cur, p.Species_id)
	Put_uint16_le(out[tables.SUB_GROWTH], &cur, p.Held_item_id)
	Put_uint32_le(out[tables.SUB_GROWTH], &cur, uint32(p.Experience))
	Put_uint8(out[tables.SUB_GROWTH], &cur, 0) // pp bonuses
	Put_uint8(out[tables.SUB_GROWTH], &cur, uint8(p.Friendship))

	cur = 0
	for m := 0; m < types.MOVE_SLOTS; m++ {
		Put_uint16_le(out[tables.SUB_ATTACKS], &cur, p.Move_ids[m])
	}
	for m := 0; m < types.MOVE_SLOTS; m++ {
		Put_uint8(out[tables.SUB_ATTACKS], &cur, uint8(p.Move_pp[m]))
	}

	cur = 0
	for _, ev := range []int{p.Evs.Hp, p.Evs.Attack, p.Evs.Defense, p.Evs.Speed, p.Evs.Sp_attack, p.Evs.Sp_defense} {
		Put_uint8(out[tables.SUB_CONDITION], &cur, uint8(ev))
	}
	// contest conditions stay zero

	iv_word := uint32(0)
	for i, iv := range []int{p.Ivs.Hp, p.Ivs.Attack, p.Ivs.Defense, p.Ivs.Speed, p.Ivs.Sp_attack, p.Ivs.Sp_defense} {
		iv_word |= uint32(iv&types.IV_MASK) << (types.IV_BITS * i)
	}
	if p.Is_egg {
		iv_word |= 1 << types.EGG_BIT
	}
	if p.Has_hidden_ability {
		iv_word |= 1 << types.HIDDEN_BIT
	}
	cur = 0
	Put_uint8(out[tables.SUB_MISC], &cur, uint8(p.Pokerus))
	Put_uint8(out[tables.SUB_MISC], &cur, uint8(p.Met_location))
	Put_uint16_le(out[tables.SUB_MISC], &cur, 0) // origins
	Put_uint32_le(out[tables.SUB_MISC], &cur, iv_word)
	// ribbons stay zero

	return out
}

// Encode_pokemon emits the 100-byte record for p: header, permuted and
// encrypted payload with a valid checksum, and the unencrypted tail.
// Nature and the ability slot are not taken from p - like everything else
// the seeds determine, they follow from p.Personality.
func Encode_pokemon(p *types.Pokemon) []byte {
	out := make([]byte, types.RECORD_SIZE)

	cur := types.OFF_PERSONALITY
	Put_uint32_le(out, &cur, p.Personality)
	Put_uint32_le(out, &cur, p.Trainer_id)

	cur = types.OFF_NICKNAME
	Put_bytes(out, &cur, tables.Encode_text(p.Nickname, types.NICKNAME_LEN))
	cur = types.OFF_OT_NAME
	Put_bytes(out, &cur, tables.Encode_text("", types.OT_NAME_LEN))

	// Payload in physical order, then checksum, then encryption.
	subs := build_substructs(p)
	order := tables.Substruct_order[p.Personality%types.ORDER_COUNT]
	plain := make([]byte, 0, types.PAYLOAD_SIZE)
	for _, which := range order {
		plain = append(plain, subs[which]...)
	}

	checksum := 0
	cur = 0
	for i := 0; i < types.PAYLOAD_SIZE/2; i++ {
		word := int(plain[cur]) + int(plain[cur+1])<<8
		checksum = (checksum + word) & 0xFFFF
		cur += 2
	}
	cur = types.OFF_CHECKSUM
	Put_uint16_le(out, &cur, checksum)

	key := p.Personality ^ p.Trainer_id
	cur = types.OFF_PAYLOAD
	for w := 0; w < types.PAYLOAD_SIZE/4; w += 1 {
		word := uint32(0)
		for i := 0; i < 4; i++ {
			word |= uint32(plain[4*w+i]) << (8 * i)
		}
		Put_uint32_le(out, &cur, word^key)
	}

	cur = types.OFF_LEVEL
	Put_uint8(out, &cur, uint8(p.Level))
	Put_uint8(out, &cur, uint8(p.Pokerus))

	return out
}
