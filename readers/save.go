package readers

import (
	"fmt"

	"pokedump/types"
)

// Save is the located view of one raw image: which of the two redundant
// slots is current, where its sections sit, and the expanded storage area.
// It never copies or mutates the image; everything is windows until a
// record is actually decoded.
type Save struct {
	image    []byte
	Active   types.Block
	Expanded types.Block

	// Save counter of the winning slot.
	Save_index uint32

	sections map[int]types.Block // section id -> data area
}

// locate_slot scans the 14 sections of the slot at base.  A section counts
// only if its footer carries the magic signature and a plausible id.  The
// returned index is the highest save counter seen among valid sections
// (they agree in a healthy save).
func locate_slot(image []byte, base int) (uint32, map[int]types.Block, bool) {
	index := uint32(0)
	sections := map[int]types.Block{}

	for s := 0; s < types.SECTIONS_PER_SLOT; s++ {
		start := base + s*types.SECTION_SIZE

		cur := start + types.FOOTER_SIGNATURE
		if Read_uint32_le(image, &cur) != types.SIGNATURE {
			continue
		}

		cur = start + types.FOOTER_ID
		id := Read_uint16_le(image, &cur)
		if id >= types.SECTIONS_PER_SLOT {
			// Signature present but id nonsense - treat the section as dead.
			continue
		}

		cur = start + types.FOOTER_SAVE_INDEX
		saved := Read_uint32_le(image, &cur)
		if saved > index {
			index = saved
		}

		sections[id] = types.Block{Offset: start, Length: types.SECTION_DATA_SIZE}
	}

	return index, sections, len(sections) > 0
}

// Locate identifies the active save slot and the expanded storage block.
// Selection is deterministic: the slot with the higher save counter wins,
// B on a tie (the game writes B second).  No structurally valid slot at
// all is fatal - there is nothing to decode and retrying the same bytes
// would be pointless.
func Locate(image []byte) (*Save, error) {
	if len(image) < types.MIN_IMAGE_SIZE {
		return nil, &types.CorruptImage{Reason: fmt.Sprintf("image is %v bytes, need at least %v", len(image), types.MIN_IMAGE_SIZE)}
	}

	index_a, sections_a, ok_a := locate_slot(image, types.SLOT_A_OFFSET)
	index_b, sections_b, ok_b := locate_slot(image, types.SLOT_B_OFFSET)

	if !ok_a && !ok_b {
		return nil, &types.CorruptImage{Reason: "no section in either slot has a valid signature"}
	}

	out := Save{
		image:    image,
		Expanded: types.Block{Offset: types.EXPANDED_OFFSET, Length: types.EXPANDED_SIZE},
	}

	if ok_a && (!ok_b || index_a > index_b) {
		out.Active = types.Block{Offset: types.SLOT_A_OFFSET, Length: types.SLOT_SIZE}
		out.Save_index = index_a
		out.sections = sections_a
	} else {
		out.Active = types.Block{Offset: types.SLOT_B_OFFSET, Length: types.SLOT_SIZE}
		out.Save_index = index_b
		out.sections = sections_b
	}

	return &out, nil
}

// Section returns the data area of the active slot's section with the given
// id, or nil if the slot never wrote one.
func (s *Save) Section(id int) []byte {
	block, ok := s.sections[id]
	if !ok {
		return nil
	}
	return block.Bytes(s.image)
}

// Trainer_name reads the player name from the trainer-info section.
func (s *Save) Trainer_name() string {
	data := s.Section(types.SECTION_TRAINER)
	if data == nil {
		return ""
	}
	return decode_name(data[types.TRAINER_NAME_OFFSET : types.TRAINER_NAME_OFFSET+types.TRAINER_NAME_LEN+1])
}

// Trainer_id reads the full 32-bit trainer id (public id in the low half).
func (s *Save) Trainer_id() uint32 {
	data := s.Section(types.SECTION_TRAINER)
	if data == nil {
		return 0
	}
	cur := types.TRAINER_ID_OFFSET
	return Read_uint32_le(data, &cur)
}

// Party_count reads the stored party headcount.  It is advisory - slot
// emptiness decides what actually gets decoded - but useful as a
// cross-check in diagnostics.
func (s *Save) Party_count() int {
	data := s.Section(types.SECTION_TEAM)
	if data == nil {
		return 0
	}
	cur := types.PARTY_COUNT_OFFSET
	return int(Read_uint32_le(data, &cur))
}

// Party_slots slices the six fixed party record windows, in slot order.
// Empty slots are included; skipping them is the decode stage's business,
// not the extractor's.
func (s *Save) Party_slots() ([][]byte, error) {
	data := s.Section(types.SECTION_TEAM)
	if data == nil {
		return nil, &types.CorruptImage{Reason: "active slot has no team section"}
	}

	out := [][]byte{}
	cur := types.PARTY_OFFSET
	for i := 0; i < types.PARTY_SLOTS; i++ {
		out = append(out, Read_bytes(data, &cur, types.RECORD_SIZE))
	}
	return out, nil
}

// Box_slots returns all 420 box record slots, flattened in box order.
// Storage runs through the data areas of sections 5-13 and spills into the
// expanded block, and records straddle section boundaries, so this is the
// one place the extractor has to copy rather than window.  A storage
// section the slot never wrote contributes zero bytes, i.e. empty slots -
// partial storage is not a reason to refuse the rest of the save.
func (s *Save) Box_slots() [][]byte {
	storage := make([]byte, 0, types.STORAGE_SLOTS*types.RECORD_SIZE)
	for id := types.SECTION_STORAGE_FIRST; id <= types.SECTION_STORAGE_LAST; id++ {
		data := s.Section(id)
		if data == nil {
			data = make([]byte, types.SECTION_DATA_SIZE)
		}
		storage = append(storage, data...)
	}
	storage = append(storage, s.Expanded.Bytes(s.image)...)

	out := [][]byte{}
	cur := 0
	for i := 0; i < types.STORAGE_SLOTS; i++ {
		out = append(out, Read_bytes(storage, &cur, types.RECORD_SIZE))
	}
	return out
}

// Is_empty applies the configured emptiness heuristic to one slot.
// Neither answer is authoritative - the format doesn't mark empty slots -
// which is why the policy is a parameter and why a wrong "occupied" verdict
// is harmless: the checksum rejects the garbage downstream.
func Is_empty(slot []byte, policy types.EmptyPolicy) bool {
	switch policy {
	case types.EMPTY_PID_ZERO:
		cur := types.OFF_PERSONALITY
		pid := Read_uint32_le(slot, &cur)
		cur = types.OFF_CHECKSUM
		checksum := Read_uint16_le(slot, &cur)
		return pid == 0 && checksum == 0

	default: // EMPTY_ALL_ZERO
		for _, b := range slot {
			if b != 0 {
				return false
			}
		}
		return true
	}
}
