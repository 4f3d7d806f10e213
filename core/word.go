package core

// AssembleWord builds a 16-bit value from its high and low bytes.
func AssembleWord(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// HighByte returns the most significant byte of a word.
func HighByte(value uint16) uint8 {
	return uint8(value >> 8)
}

// LowByte returns the least significant byte of a word.
func LowByte(value uint16) uint8 {
	return uint8(value)
}

// SplitWord returns the high and low bytes of a word.
func SplitWord(value uint16) (high, low uint8) {
	return HighByte(value), LowByte(value)
}
