package readers

import (
	"errors"
	"reflect"
	"testing"

	"pokedump/types"
	"pokedump/writers"
)

// test_pokemon builds a fully-specified record.  Derived fields (nature,
// ability slot) are filled in from the personality value so that a decoded
// copy can be compared with DeepEqual.
func test_pokemon(personality uint32, trainer_id uint32) *types.Pokemon {
	return &types.Pokemon{
		Species_id: 6,
		Nickname:   "SMAUG",
		Level:      36,
		Experience: 51000,
		Friendship: 120,

		Personality:  personality,
		Trainer_id:   trainer_id,
		Nature:       int(personality % types.NATURES),
		Ability_slot: int(personality & 1),

		Held_item_id: 200,
		Move_ids:     [types.MOVE_SLOTS]int{53, 19, 163, 0},
		Move_pp:      [types.MOVE_SLOTS]int{15, 15, 20, 0},

		Ivs: types.Stats{Hp: 31, Attack: 30, Defense: 0, Speed: 29, Sp_attack: 1, Sp_defense: 26},
		Evs: types.Stats{Hp: 85, Attack: 252, Defense: 0, Speed: 90, Sp_attack: 4, Sp_defense: 6},

		Pokerus:      0,
		Met_location: 88,
	}
}

func Test_RoundTrip(t *testing.T) {
	original := test_pokemon(0xC0FFEE12, 0x00112233)
	decoded, err := Decode_pokemon(writers.Encode_pokemon(original))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mangled the record:\n got %+v\nwant %+v", decoded, original)
	}
}

// Every one of the 24 substructure orderings is its own scenario - a wrong
// permutation row produces a record that decodes "successfully" into
// nonsense, so each row gets checked field-for-field.
func Test_RoundTrip_AllOrderings(t *testing.T) {
	for i := 0; i < types.ORDER_COUNT; i++ {
		// personality % 24 == i, with enough variety above the modulus to
		// vary the key and the nature as well
		personality := uint32(i) + types.ORDER_COUNT*uint32(7919*i+1)
		original := test_pokemon(personality, 0xDEAD0000+uint32(i))

		decoded, err := Decode_pokemon(writers.Encode_pokemon(original))
		if err != nil {
			t.Errorf("ordering %v: decode failed: %v", i, err)
			continue
		}
		if !reflect.DeepEqual(original, decoded) {
			t.Errorf("ordering %v: record mangled:\n got %+v\nwant %+v", i, decoded, original)
		}
	}
}

func Test_RoundTrip_Flags(t *testing.T) {
	original := test_pokemon(0x12345678, 0x9ABCDEF0)
	original.Is_egg = true
	original.Has_hidden_ability = true
	original.Pokerus = 3

	decoded, err := Decode_pokemon(writers.Encode_pokemon(original))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !decoded.Is_egg {
		t.Error("egg flag lost")
	}
	if !decoded.Has_hidden_ability {
		t.Error("hidden-ability flag lost")
	}
	if decoded.Pokerus != 3 {
		t.Errorf("pokerus %v, want 3", decoded.Pokerus)
	}
}

func Test_Nickname_Trimming(t *testing.T) {
	original := test_pokemon(0x01020304, 0x05060708)
	original.Nickname = "Mo"

	decoded, err := Decode_pokemon(writers.Encode_pokemon(original))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Nickname != "Mo" {
		t.Errorf("nickname %q, want %q", decoded.Nickname, "Mo")
	}
}

func Test_IV_Range(t *testing.T) {
	for _, personality := range []uint32{0, 1, 24, 0xFFFFFFFF, 0x80000001} {
		original := test_pokemon(personality, ^personality)
		decoded, err := Decode_pokemon(writers.Encode_pokemon(original))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		for _, iv := range []int{decoded.Ivs.Hp, decoded.Ivs.Attack, decoded.Ivs.Defense,
			decoded.Ivs.Speed, decoded.Ivs.Sp_attack, decoded.Ivs.Sp_defense} {
			if iv < 0 || iv > types.MAX_IV {
				t.Errorf("personality %08x: IV %v out of range", personality, iv)
			}
		}
	}
}

// Flipping any single byte of the encrypted payload must surface as a
// checksum failure - never as a quietly wrong record.
func Test_Checksum_Rejection(t *testing.T) {
	valid := writers.Encode_pokemon(test_pokemon(0xFEEDF00D, 0x0BADCAFE))

	for i := types.OFF_PAYLOAD; i < types.OFF_PAYLOAD+types.PAYLOAD_SIZE; i += 1 {
		mutated := append([]byte{}, valid...)
		mutated[i] ^= 0x40

		_, err := Decode_pokemon(mutated)
		if err == nil {
			t.Fatalf("byte %v: corruption decoded without complaint", i)
		}
		decode_err := &types.DecodeError{}
		if !errors.As(err, &decode_err) || decode_err.Kind != types.DECODE_CHECKSUM {
			t.Errorf("byte %v: got %v, want a checksum failure", i, err)
		}
	}
}

func Test_Level_OutOfRange(t *testing.T) {
	original := test_pokemon(0x13572468, 0x11111111)
	original.Level = 120

	_, err := Decode_pokemon(writers.Encode_pokemon(original))
	decode_err := &types.DecodeError{}
	if !errors.As(err, &decode_err) || decode_err.Kind != types.DECODE_CORRUPT {
		t.Errorf("got %v, want a corrupt-record failure", err)
	}
}

func Test_Short_Slot(t *testing.T) {
	_, err := Decode_pokemon(make([]byte, 10))
	decode_err := &types.DecodeError{}
	if !errors.As(err, &decode_err) || decode_err.Kind != types.DECODE_CORRUPT {
		t.Errorf("got %v, want a corrupt-record failure", err)
	}
}

func Test_Empty_Slot_Skipped(t *testing.T) {
	empty := make([]byte, types.RECORD_SIZE)

	for _, policy := range []types.EmptyPolicy{types.EMPTY_ALL_ZERO, types.EMPTY_PID_ZERO} {
		if !Is_empty(empty, policy) {
			t.Errorf("policy %v: all-zero slot not considered empty", policy)
		}

		records, failures := decode_slots([][]byte{empty}, policy)
		if len(records) != 0 || len(failures) != 0 {
			t.Errorf("policy %v: empty slot produced records %v / failures %v", policy, records, failures)
		}
	}
}

// The two policies are allowed to disagree - that's why there are two.  A
// slot that is zero except for a stray byte outside the header is a decode
// candidate under ALL_ZERO and empty under PID_ZERO.
func Test_Empty_Policy_Disagreement(t *testing.T) {
	slot := make([]byte, types.RECORD_SIZE)
	slot[types.OFF_PAYLOAD+5] = 1

	if Is_empty(slot, types.EMPTY_ALL_ZERO) {
		t.Error("ALL_ZERO: slot with a non-zero byte considered empty")
	}
	if !Is_empty(slot, types.EMPTY_PID_ZERO) {
		t.Error("PID_ZERO: slot with zero seeds and checksum not considered empty")
	}

	// ...and under ALL_ZERO the garbage is then caught by the checksum.
	_, failures := decode_slots([][]byte{slot}, types.EMPTY_ALL_ZERO)
	if len(failures) != 1 {
		t.Errorf("expected the garbage slot to fail decoding, got %v failures", len(failures))
	}
}
