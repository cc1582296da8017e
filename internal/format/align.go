package format

// Alignment rules for the structure block. Node names and property values
// use different padding arithmetic; both come straight from the on-disk
// format and must not be unified.

// NameAdvance returns how far a scanner moves past a node name of length n:
// the name bytes, the NUL terminator, and padding up to the next 4-byte
// boundary. At least one byte beyond the name is always consumed, even when
// n is already a multiple of 4.
//
// Example:
//
//	NameAdvance(0) = 4
//	NameAdvance(3) = 4
//	NameAdvance(4) = 8
func NameAdvance(n int) int {
	return n + TokenAlignment - n%TokenAlignment
}

// ValueAdvance returns how far a scanner moves past a property value of
// length n: the value bytes plus padding up to the next 4-byte boundary.
// Values whose length is already a multiple of 4 consume no padding.
//
// Example:
//
//	ValueAdvance(0) = 0
//	ValueAdvance(3) = 4
//	ValueAdvance(4) = 4
func ValueAdvance(n int) int {
	return n + (TokenAlignment-n%TokenAlignment)%TokenAlignment
}
