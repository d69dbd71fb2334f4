package readers

import (
	"errors"
	"testing"

	"pokedump/tables"
	"pokedump/types"
	"pokedump/writers"
)

// write_footer stamps one section's footer.
func write_footer(image []byte, section_start int, id int, save_index uint32) {
	cur := section_start + types.FOOTER_ID
	writers.Put_uint16_le(image, &cur, id)
	cur = section_start + types.FOOTER_SIGNATURE
	writers.Put_uint32_le(image, &cur, types.SIGNATURE)
	cur = section_start + types.FOOTER_SAVE_INDEX
	writers.Put_uint32_le(image, &cur, save_index)
}

// build_slot stamps all 14 sections of one slot, physically rotated the way
// the game leaves them after a few saves (section id != physical position).
// Returns the physical start of each section id.
func build_slot(image []byte, base int, save_index uint32) map[int]int {
	starts := map[int]int{}
	for pos := 0; pos < types.SECTIONS_PER_SLOT; pos++ {
		id := (pos + 3) % types.SECTIONS_PER_SLOT
		start := base + pos*types.SECTION_SIZE
		write_footer(image, start, id, save_index)
		starts[id] = start
	}
	return starts
}

// build_image makes a minimal valid save with slot A and B counters as
// given.  Party and storage slots land in whichever slot has the higher
// counter.
func build_image(index_a uint32, index_b uint32, party [][]byte, storage [][]byte) []byte {
	image := make([]byte, types.MIN_IMAGE_SIZE)
	starts_a := build_slot(image, types.SLOT_A_OFFSET, index_a)
	starts_b := build_slot(image, types.SLOT_B_OFFSET, index_b)

	starts := starts_a
	if index_b > index_a {
		starts = starts_b
	}

	// trainer info
	cur := starts[types.SECTION_TRAINER] + types.TRAINER_NAME_OFFSET
	writers.Put_bytes(image, &cur, tables.Encode_text("RED", types.TRAINER_NAME_LEN+1))
	cur = starts[types.SECTION_TRAINER] + types.TRAINER_ID_OFFSET
	writers.Put_uint32_le(image, &cur, 0xBEEF3039)

	// party
	cur = starts[types.SECTION_TEAM] + types.PARTY_COUNT_OFFSET
	count := 0
	for _, slot := range party {
		if !Is_empty(slot, types.EMPTY_ALL_ZERO) {
			count += 1
		}
	}
	writers.Put_uint32_le(image, &cur, uint32(count))
	cur = starts[types.SECTION_TEAM] + types.PARTY_OFFSET
	for _, slot := range party {
		writers.Put_bytes(image, &cur, slot)
	}

	// storage: flatten, then spread across the storage sections and the
	// expanded block exactly the way Box_slots reads them back
	flat := []byte{}
	for _, slot := range storage {
		flat = append(flat, slot...)
	}
	for id := types.SECTION_STORAGE_FIRST; id <= types.SECTION_STORAGE_LAST && len(flat) > 0; id += 1 {
		n := min(len(flat), types.SECTION_DATA_SIZE)
		cur = starts[id]
		writers.Put_bytes(image, &cur, flat[:n])
		flat = flat[n:]
	}
	if len(flat) > 0 {
		cur = types.EXPANDED_OFFSET
		writers.Put_bytes(image, &cur, flat)
	}

	return image
}

func record(species int, personality uint32) []byte {
	p := test_pokemon(personality, 0x00C0FFEE)
	p.Species_id = species
	return writers.Encode_pokemon(p)
}

func empty_record() []byte {
	return make([]byte, types.RECORD_SIZE)
}

func Test_Locate_PicksHigherCounter(t *testing.T) {
	cases := []struct {
		index_a, index_b uint32
		want_offset      int
	}{
		{5, 9, types.SLOT_B_OFFSET},
		{10, 9, types.SLOT_A_OFFSET},
		{7, 7, types.SLOT_B_OFFSET}, // tie: B was written second
	}

	for _, c := range cases {
		save, err := Locate(build_image(c.index_a, c.index_b, nil, nil))
		if err != nil {
			t.Fatalf("a=%v b=%v: %v", c.index_a, c.index_b, err)
		}
		if save.Active.Offset != c.want_offset {
			t.Errorf("a=%v b=%v: active at 0x%X, want 0x%X", c.index_a, c.index_b, save.Active.Offset, c.want_offset)
		}
	}
}

func Test_Locate_Deterministic(t *testing.T) {
	image := build_image(3, 8, nil, nil)
	first, err := Locate(image)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Locate(image)
	if err != nil {
		t.Fatal(err)
	}
	if first.Active != second.Active || first.Save_index != second.Save_index {
		t.Error("same bytes located differently on the second pass")
	}
}

func Test_Locate_Corrupt(t *testing.T) {
	corrupt := &types.CorruptImage{}

	_, err := Locate(make([]byte, types.MIN_IMAGE_SIZE))
	if !errors.As(err, &corrupt) {
		t.Errorf("all-zero image: got %v, want CorruptImage", err)
	}

	_, err = Locate(make([]byte, 100))
	if !errors.As(err, &corrupt) {
		t.Errorf("short image: got %v, want CorruptImage", err)
	}
}

func Test_Trainer_Info(t *testing.T) {
	save, err := Locate(build_image(1, 2, nil, nil))
	if err != nil {
		t.Fatal(err)
	}
	if save.Trainer_name() != "RED" {
		t.Errorf("trainer name %q, want RED", save.Trainer_name())
	}
	if save.Trainer_id()&0xFFFF != 0x3039 {
		t.Errorf("public id %04x, want 3039", save.Trainer_id()&0xFFFF)
	}
}

func Test_Party_OrderPreserved(t *testing.T) {
	party := [][]byte{
		empty_record(),
		record(25, 0x1111),
		empty_record(),
		record(6, 0x2222),
		record(131, 0x3333),
		empty_record(),
	}
	save, err := Locate(build_image(1, 2, party, nil))
	if err != nil {
		t.Fatal(err)
	}

	decoded, failures, err := Decode_party(save, types.EMPTY_ALL_ZERO)
	if err != nil {
		t.Fatal(err)
	}
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}

	want := []int{25, 6, 131}
	if len(decoded) != len(want) {
		t.Fatalf("party size %v, want %v", len(decoded), len(want))
	}
	for i, species := range want {
		if decoded[i].Species_id != species {
			t.Errorf("party[%v] species %v, want %v", i, decoded[i].Species_id, species)
		}
	}
	if save.Party_count() != 3 {
		t.Errorf("stored party count %v, want 3", save.Party_count())
	}
}

func Test_Party_NeverExceedsSix(t *testing.T) {
	party := [][]byte{}
	for i := 0; i < types.PARTY_SLOTS; i++ {
		party = append(party, record(1+i, uint32(0x100*i+1)))
	}
	save, err := Locate(build_image(2, 1, party, nil))
	if err != nil {
		t.Fatal(err)
	}

	decoded, _, err := Decode_party(save, types.EMPTY_ALL_ZERO)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) > types.PARTY_SLOTS {
		t.Errorf("party size %v exceeds %v", len(decoded), types.PARTY_SLOTS)
	}
}

// 65 populated slots split as 30/30/5: the chunk boundary is a function of
// slots consumed, not records found.
func Test_Storage_Chunking(t *testing.T) {
	slots := [][]byte{}
	for i := 0; i < 65; i++ {
		slots = append(slots, record(1+i%151, uint32(i)+1))
	}

	boxes, failures := Decode_storage(slots, types.EMPTY_ALL_ZERO)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}

	want := []int{30, 30, 5}
	if len(boxes) != len(want) {
		t.Fatalf("%v boxes, want %v", len(boxes), len(want))
	}
	for i, size := range want {
		if len(boxes[i]) != size {
			t.Errorf("box %v has %v records, want %v", i, len(boxes[i]), size)
		}
	}
}

func Test_Storage_Chunking_WithGaps(t *testing.T) {
	// 35 slots, the first 5 empty: the first box still closes at slot 30,
	// holding the 25 records that follow the gap.
	slots := [][]byte{}
	for i := 0; i < 5; i++ {
		slots = append(slots, empty_record())
	}
	for i := 0; i < 30; i++ {
		slots = append(slots, record(1+i, uint32(i)+1))
	}

	boxes, _ := Decode_storage(slots, types.EMPTY_ALL_ZERO)
	if len(boxes) != 2 {
		t.Fatalf("%v boxes, want 2", len(boxes))
	}
	if len(boxes[0]) != 25 {
		t.Errorf("box 0 has %v records, want 25", len(boxes[0]))
	}
	if len(boxes[1]) != 5 {
		t.Errorf("box 1 has %v records, want 5", len(boxes[1]))
	}
}

// Records land in the right boxes when read back through the sectioned
// storage area, including ones that straddle a section boundary.
func Test_Boxes_FromImage(t *testing.T) {
	storage := [][]byte{}
	for i := 0; i < types.STORAGE_SLOTS; i++ {
		storage = append(storage, empty_record())
	}
	storage[0] = record(25, 0xAAA1)
	storage[39] = record(39, 0xAAA2)   // 39*100=3900: straddles the section 5/6 boundary at 3968
	storage[400] = record(131, 0xAAA3) // past 9*0xF80 bytes, so it lives in the expanded block

	save, err := Locate(build_image(4, 3, nil, storage))
	if err != nil {
		t.Fatal(err)
	}

	boxes, failures := Decode_boxes(save, types.EMPTY_ALL_ZERO)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if len(boxes) != types.BOX_COUNT {
		t.Fatalf("%v boxes, want %v", len(boxes), types.BOX_COUNT)
	}

	if len(boxes[0]) != 1 || boxes[0][0].Species_id != 25 {
		t.Errorf("box 0: %+v", boxes[0])
	}
	if len(boxes[1]) != 1 || boxes[1][0].Species_id != 39 {
		t.Errorf("box 1 (straddling record): %+v", boxes[1])
	}
	if len(boxes[13]) != 1 || boxes[13][0].Species_id != 131 {
		t.Errorf("box 13 (expanded block record): %+v", boxes[13])
	}
}

// A corrupted slot is reported and skipped; everything else decodes.
func Test_Batch_FailureIsolation(t *testing.T) {
	bad := record(94, 0xBBB1)
	bad[types.OFF_PAYLOAD+7] ^= 0xFF

	slots := [][]byte{record(1, 0xCCC1), bad, record(4, 0xCCC2)}
	decoded, failures := Decode_storage(slots, types.EMPTY_ALL_ZERO)

	if len(failures) != 1 || failures[0].Index != 1 {
		t.Fatalf("failures %v, want exactly slot 1", failures)
	}
	if len(decoded) != 1 || len(decoded[0]) != 2 {
		t.Fatalf("decoded %v, want one box of 2", decoded)
	}
	if decoded[0][0].Species_id != 1 || decoded[0][1].Species_id != 4 {
		t.Errorf("surviving records wrong: %+v", decoded[0])
	}
}
