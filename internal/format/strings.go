package format

import "bytes"

// LookupString resolves a NUL-terminated string at off within the strings
// block. Returns ok = false when off is outside the block or the string
// runs past its end unterminated.
func LookupString(block []byte, off uint32) (string, bool) {
	if int64(off) >= int64(len(block)) {
		return "", false
	}
	rest := block[off:]
	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		return "", false
	}
	return string(rest[:i]), true
}
