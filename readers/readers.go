package readers

// Byte-level read primitives.
// Everything works on a byte slice plus a cursor; the cursor is advanced past
// whatever was read.  The save format is little-endian throughout.

func Read_uint8(b []byte, cur *int) uint8 {
	out := b[*cur]
	*cur += 1
	return out
}

func Read_uint16_le(b []byte, cur *int) int {
	out := 0
	for i := 0; i < 2; i++ {
		out += int(b[*cur+i]) << (8 * i)
	}
	*cur += 2
	return out
}

func Read_uint32_le(b []byte, cur *int) uint32 {
	out := uint32(0)
	for i := 0; i < 4; i++ {
		out += uint32(b[*cur+i]) << (8 * i)
	}
	*cur += 4
	return out
}

// Read_bytes slices out n bytes.  It is a window, not a copy.
func Read_bytes(b []byte, cur *int, n int) []byte {
	out := b[*cur : *cur+n]
	*cur += n
	return out
}

func Advance(cur *int, n int) {
	*cur += n
}
