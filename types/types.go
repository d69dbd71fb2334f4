package types

import (
	"fmt"
)

// Save image geometry.
//
// The image holds two redundant save slots (A and B); the game alternates
// between them on every save, stamping each with an incrementing save index.
// Each slot is 14 sections of 0x1000 bytes; only the first 0xF80 bytes of a
// section are data, the rest is padding plus a footer.
// After both slots sits the expanded storage area, which has no section
// structure of its own - it is overflow space for box storage.
const (
	SECTION_SIZE      = 0x1000
	SECTION_DATA_SIZE = 0xF80
	SECTIONS_PER_SLOT = 14

	SLOT_SIZE     = SECTION_SIZE * SECTIONS_PER_SLOT // 0xE000
	SLOT_A_OFFSET = 0
	SLOT_B_OFFSET = SLOT_SIZE

	EXPANDED_OFFSET = 2 * SLOT_SIZE // 0x1C000
	EXPANDED_SIZE   = 0x4000

	MIN_IMAGE_SIZE = EXPANDED_OFFSET + EXPANDED_SIZE // 0x20000
)

// Section footer, relative to the start of the section.
const (
	FOOTER_ID         = 0xFF4 // uint16
	FOOTER_CHECKSUM   = 0xFF6 // uint16 (not verified here; the per-record checksum is what matters)
	FOOTER_SIGNATURE  = 0xFF8 // uint32, always SIGNATURE in a written section
	FOOTER_SAVE_INDEX = 0xFFC // uint32

	SIGNATURE = 0x08012025
)

// Section IDs.  0 is trainer info, 1 holds the party, 5-13 hold box storage.
const (
	SECTION_TRAINER       = 0
	SECTION_TEAM          = 1
	SECTION_STORAGE_FIRST = 5
	SECTION_STORAGE_LAST  = 13
)

// Locations within sections.
const (
	TRAINER_NAME_OFFSET = 0x0000 // 7 bytes + terminator
	TRAINER_NAME_LEN    = 7
	TRAINER_ID_OFFSET   = 0x000A // uint32: public id in the low half, secret id in the high half

	PARTY_COUNT_OFFSET = 0x0034 // uint32
	PARTY_OFFSET       = 0x0038
	PARTY_SLOTS        = 6
)

// Box storage: the data areas of sections 5-13 followed by the expanded area,
// treated as one flat run of record slots.  Box boundaries fall every 30
// slots whether or not the slots are occupied.
const (
	BOX_SLOTS     = 30
	BOX_COUNT     = 14
	STORAGE_SLOTS = BOX_COUNT * BOX_SLOTS
)

// One record, party or box - same length, same layout.
//
// 0x00-0x1F is the unencrypted header, 0x20-0x4F is the encrypted payload
// (four 12-byte substructures, order and key derived from the two seed values
// in the header), 0x50 onwards is unencrypted battle state.  Of the tail only
// the level byte matters to us; the stats after it are recomputed by the game
// on load anyway.
const (
	RECORD_SIZE = 100

	OFF_PERSONALITY = 0x00 // uint32
	OFF_TRAINER_ID  = 0x04 // uint32
	OFF_NICKNAME    = 0x08
	NICKNAME_LEN    = 10
	OFF_LANGUAGE    = 0x12 // uint16
	OFF_OT_NAME     = 0x14
	OT_NAME_LEN     = 7
	OFF_MARKINGS    = 0x1B
	OFF_CHECKSUM    = 0x1C // uint16, wrapping sum over the decrypted payload words
	OFF_PAYLOAD     = 0x20
	PAYLOAD_SIZE    = 48
	SUBSTRUCT_SIZE  = 12
	OFF_STATUS      = 0x50 // uint32
	OFF_LEVEL       = 0x54
	OFF_POKERUS     = 0x55
)

// Packed IV word inside the Misc substructure, and assorted format limits.
const (
	IV_BITS     = 5
	IV_MASK     = 0x1F
	EGG_BIT     = 30
	HIDDEN_BIT  = 31
	MOVE_SLOTS  = 4
	STAT_COUNT  = 6
	NATURES     = 25
	MAX_LEVEL   = 100
	MAX_IV      = 31
	MAX_EV      = 252
	ORDER_COUNT = 24 // possible substructure orderings
)

// Block is a window into the save image - an offset and a length, not a copy.
type Block struct {
	Offset int
	Length int
}

func (b Block) End() int {
	return b.Offset + b.Length
}

// Bytes returns the windowed slice of the image.  Still not a copy.
func (b Block) Bytes(image []byte) []byte {
	return image[b.Offset:b.End()]
}

// Stats is one six-component stat block - used for both IVs and EVs.
type Stats struct {
	Hp         int `json:"hp"`
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Speed      int `json:"speed"`
	Sp_attack  int `json:"special_attack"`
	Sp_defense int `json:"special_defense"`
}

// Pokemon is one fully-decoded record.  Everything is copied out of the raw
// buffer; holding one of these does not keep the image alive.
type Pokemon struct {
	Species_id int
	Nickname   string
	Is_egg     bool

	Level      int
	Experience int
	Friendship int

	// The two seed values, kept for traceability.  Between them they drive
	// the payload encryption, the substructure order, the nature and the
	// ability slot, so a confusing record can be re-derived by hand.
	Personality uint32
	Trainer_id  uint32

	Nature             int
	Ability_slot       int // 0 or 1
	Has_hidden_ability bool

	Held_item_id int
	Move_ids     [MOVE_SLOTS]int
	Move_pp      [MOVE_SLOTS]int

	Ivs Stats
	Evs Stats

	Pokerus      int
	Met_location int
}

// Gender_value is the byte the game compares against a species' gender
// threshold.  Resolving it to an actual gender needs the species table, which
// is the caller's business, not ours.
func (p *Pokemon) Gender_value() uint8 {
	return uint8(p.Personality & 0xFF)
}

// CorruptImage means no structurally valid save slot could be located.
// Nothing is decodable; there is no point retrying against the same bytes.
type CorruptImage struct {
	Reason string
}

func (e *CorruptImage) Error() string {
	return "corrupt save image: " + e.Reason
}

type DecodeFail int

const (
	DECODE_CHECKSUM DecodeFail = iota
	DECODE_CORRUPT
)

func (df DecodeFail) String() string {
	return []string{"checksum mismatch", "corrupt record"}[df]
}

// DecodeError is a per-record failure.  The batch carries on without the
// slot; these are diagnostics, not fatalities.
type DecodeError struct {
	Kind   DecodeFail
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// SlotFailure records which slot of a batch failed and why.
type SlotFailure struct {
	Index int
	Err   error
}

func (sf SlotFailure) String() string {
	return fmt.Sprintf("slot %v: %v", sf.Index, sf.Err)
}

// EmptyPolicy selects the slot-emptiness heuristic.  The format does not
// guarantee one; see Is_empty in the readers package.
type EmptyPolicy int

const (
	// Empty iff every byte of the slot is zero.  Anything non-zero gets
	// decoded, and a garbage slot then fails its checksum.  The default.
	EMPTY_ALL_ZERO EmptyPolicy = iota
	// Empty iff both the personality value and the stored checksum are zero.
	EMPTY_PID_ZERO
)

func Empty_policy(name string) (EmptyPolicy, error) {
	switch name {
	case "", "all_zero":
		return EMPTY_ALL_ZERO, nil
	case "pid_zero":
		return EMPTY_PID_ZERO, nil
	}
	return EMPTY_ALL_ZERO, fmt.Errorf("unknown empty_policy %q", name)
}
