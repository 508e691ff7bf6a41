package core

// CountNoteOns counts the bytes that look like a note-on status followed two
// bytes later by a non-zero velocity. It does not parse the file, so running
// status and data bytes can skew the result.
func CountNoteOns(data []byte) int {
	count := 0
	for i := 0; i < len(data)-2; i++ {
		if data[i]&0xF0 == 0x90 && data[i+2] > 0 {
			count++
		}
	}
	return count
}
