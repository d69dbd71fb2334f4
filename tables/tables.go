package tables

import (
	"pokedump/types"
	"pokedump/utils"
)

// The four substructures of a record's encrypted payload.
const (
	SUB_GROWTH = iota
	SUB_ATTACKS
	SUB_CONDITION
	SUB_MISC

	SUB_COUNT
)

// Substruct_order maps (personality % 24) to the physical order of the four
// substructures within the payload.  Row i lists which substructure occupies
// each 12-byte quarter, first to last.  The rows are the 24 permutations of
// Growth/Attacks/Condition/Misc in lexicographic order - this is a property
// of the format, not a choice of ours, so don't "tidy" it.
var Substruct_order = [types.ORDER_COUNT][SUB_COUNT]int{
	{SUB_GROWTH, SUB_ATTACKS, SUB_CONDITION, SUB_MISC},
	{SUB_GROWTH, SUB_ATTACKS, SUB_MISC, SUB_CONDITION},
	{SUB_GROWTH, SUB_CONDITION, SUB_ATTACKS, SUB_MISC},
	{SUB_GROWTH, SUB_CONDITION, SUB_MISC, SUB_ATTACKS},
	{SUB_GROWTH, SUB_MISC, SUB_ATTACKS, SUB_CONDITION},
	{SUB_GROWTH, SUB_MISC, SUB_CONDITION, SUB_ATTACKS},
	{SUB_ATTACKS, SUB_GROWTH, SUB_CONDITION, SUB_MISC},
	{SUB_ATTACKS, SUB_GROWTH, SUB_MISC, SUB_CONDITION},
	{SUB_ATTACKS, SUB_CONDITION, SUB_GROWTH, SUB_MISC},
	{SUB_ATTACKS, SUB_CONDITION, SUB_MISC, SUB_GROWTH},
	{SUB_ATTACKS, SUB_MISC, SUB_GROWTH, SUB_CONDITION},
	{SUB_ATTACKS, SUB_MISC, SUB_CONDITION, SUB_GROWTH},
	{SUB_CONDITION, SUB_GROWTH, SUB_ATTACKS, SUB_MISC},
	{SUB_CONDITION, SUB_GROWTH, SUB_MISC, SUB_ATTACKS},
	{SUB_CONDITION, SUB_ATTACKS, SUB_GROWTH, SUB_MISC},
	{SUB_CONDITION, SUB_ATTACKS, SUB_MISC, SUB_GROWTH},
	{SUB_CONDITION, SUB_MISC, SUB_GROWTH, SUB_ATTACKS},
	{SUB_CONDITION, SUB_MISC, SUB_ATTACKS, SUB_GROWTH},
	{SUB_MISC, SUB_GROWTH, SUB_ATTACKS, SUB_CONDITION},
	{SUB_MISC, SUB_GROWTH, SUB_CONDITION, SUB_ATTACKS},
	{SUB_MISC, SUB_ATTACKS, SUB_GROWTH, SUB_CONDITION},
	{SUB_MISC, SUB_ATTACKS, SUB_CONDITION, SUB_GROWTH},
	{SUB_MISC, SUB_CONDITION, SUB_GROWTH, SUB_ATTACKS},
	{SUB_MISC, SUB_CONDITION, SUB_ATTACKS, SUB_GROWTH},
}

// Natures, indexed by personality % 25.
var Natures = [types.NATURES]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

func Nature_name(n int) string {
	if n < 0 || n >= len(Natures) {
		return "Unknown"
	}
	return Natures[n]
}

// In-game text encoding (western).  Not ASCII, not even close.
const TEXT_TERMINATOR = 0xFF

var charset = func() map[uint8]rune {
	m := map[uint8]rune{
		0x00: ' ',
		0xAB: '!', 0xAC: '?', 0xAD: '.', 0xAE: '-',
		0xB0: '…', 0xB1: '“', 0xB2: '”', 0xB3: '‘', 0xB4: '’',
		0xB5: '♂', 0xB6: '♀', 0xB7: '$', 0xB8: ',', 0xB9: '×', 0xBA: '/',
		0xF0: ':',
	}
	for i := 0; i < 10; i++ {
		m[uint8(0xA1+i)] = rune('0' + i)
	}
	for i := 0; i < 26; i++ {
		m[uint8(0xBB+i)] = rune('A' + i)
		m[uint8(0xD5+i)] = rune('a' + i)
	}
	return m
}()

var charset_reverse = func() map[rune]uint8 {
	m := map[rune]uint8{}
	for k, v := range charset {
		m[v] = k
	}
	return m
}()

// Decode_text decodes a fixed-width name field, stopping at the terminator.
// Bytes with no mapping render as '?' - better a visible hole than a wrong
// name.
func Decode_text(b []byte) string {
	out := []rune{}
	for _, c := range b {
		if c == TEXT_TERMINATOR {
			break
		}
		r, ok := charset[c]
		if !ok {
			r = '?'
		}
		out = append(out, r)
	}
	return string(out)
}

// Encode_text renders a string into a fixed-width name field, terminated and
// padded with the terminator byte.  Overlong input is truncated.
func Encode_text(s string, length int) []byte {
	out := make([]byte, length)
	for i := range out {
		out[i] = TEXT_TERMINATOR
	}
	i := 0
	for _, r := range s {
		if i >= length {
			break
		}
		c, ok := charset_reverse[r]
		if !ok {
			c = charset_reverse['?']
		}
		out[i] = c
		i += 1
	}
	return out
}

// Species_abilities maps a species to its {slot 0, slot 1, hidden} ability
// IDs.  0 means "no ability in that slot".  This only covers species that
// have been transcribed; Ability_name degrades politely for the rest.
var Species_abilities = map[int][3]int{
	1: {65, 0, 34}, 2: {65, 0, 34}, 3: {65, 0, 34},
	4: {66, 0, 94}, 5: {66, 0, 94}, 6: {66, 0, 94},
	7: {67, 0, 44}, 8: {67, 0, 44}, 9: {67, 0, 44},
	16: {51, 77, 0}, 17: {51, 77, 0}, 18: {51, 77, 0},
	19: {50, 62, 55}, 20: {50, 62, 55},
	25: {9, 0, 31}, 26: {9, 0, 31},
	37: {18, 0, 70}, 38: {18, 0, 70},
	41: {39, 0, 15}, 42: {39, 0, 15},
	52: {53, 0, 0}, 53: {7, 0, 0},
	58: {22, 18, 0}, 59: {22, 18, 0},
	63: {28, 39, 0}, 64: {28, 39, 0}, 65: {28, 39, 0},
	74: {69, 5, 8}, 75: {69, 5, 8}, 76: {69, 5, 8},
	92: {26, 0, 0}, 93: {26, 0, 0}, 94: {26, 0, 0},
	129: {33, 0, 0}, 130: {22, 0, 0},
	131: {11, 75, 0},
	133: {50, 0, 0},
	143: {17, 47, 0},
	150: {46, 0, 0},
	151: {28, 0, 0},
}

// Ability_name resolves the displayable ability for a record: the hidden
// ability if the flag is set and the species has one, otherwise the ability
// in the record's slot (falling back to slot 0 for single-ability species).
func Ability_name(slot int, species int, hidden bool) string {
	abilities, ok := Species_abilities[species]
	if !ok {
		return "Unknown"
	}

	id := abilities[0]
	if hidden && abilities[2] != 0 {
		id = abilities[2]
	} else if slot == 1 && abilities[1] != 0 {
		id = abilities[1]
	}

	return utils.Safe_lookup(Abilities, id)
}

// Gender thresholds: the gender byte (personality & 0xFF) is compared
// against this; below means female.  255 is genderless, 254 female-only,
// 0 male-only.  Species not listed here use the 50/50 default.
const (
	GENDERLESS  = 255
	FEMALE_ONLY = 254
	MALE_ONLY   = 0

	default_threshold = 127
)

var Gender_thresholds = map[int]uint8{
	// 87.5% male lines
	1: 31, 2: 31, 3: 31, 4: 31, 5: 31, 6: 31, 7: 31, 8: 31, 9: 31,
	133: 31, 134: 31, 135: 31, 136: 31, 143: 31,
	// single-gender species
	29: FEMALE_ONLY, 30: FEMALE_ONLY, 31: FEMALE_ONLY,
	32: MALE_ONLY, 33: MALE_ONLY, 34: MALE_ONLY,
	106: MALE_ONLY, 107: MALE_ONLY, 128: MALE_ONLY,
	113: FEMALE_ONLY, 115: FEMALE_ONLY, 124: FEMALE_ONLY,
	// genderless
	81: GENDERLESS, 82: GENDERLESS, 100: GENDERLESS, 101: GENDERLESS,
	120: GENDERLESS, 121: GENDERLESS, 132: GENDERLESS, 137: GENDERLESS,
	144: GENDERLESS, 145: GENDERLESS, 146: GENDERLESS,
	150: GENDERLESS, 151: GENDERLESS,
}

// Gender_name resolves a record's gender from its personality value.
// Genderless (and untranscribed) species come back as "unknown".
func Gender_name(species int, personality uint32) string {
	threshold, ok := Gender_thresholds[species]
	if !ok {
		threshold = default_threshold
	}

	switch threshold {
	case GENDERLESS:
		return "unknown"
	case FEMALE_ONLY:
		return "female"
	case MALE_ONLY:
		return "male"
	}

	if uint8(personality&0xFF) < threshold {
		return "female"
	}
	return "male"
}

func Species_name(id int) string {
	return utils.Safe_lookup(Species, id)
}

func Move_name(id int) string {
	return utils.Safe_lookup(Moves, id)
}

// Item_name resolves a held item.  0 is "nothing held", which is normal, not
// unknown.
func Item_name(id int) string {
	if id == 0 {
		return "(none)"
	}
	return utils.Safe_lookup(Items, id)
}
