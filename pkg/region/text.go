package region

import "strings"

const (
	asciiBase   = 0x3f
	brailleBase = 0x2800
)

// EncodeASCII serializes r as three printable characters per run, holding
// the low five, middle five and high six bits of each run offset by '?'.
func EncodeASCII(r Region) string {
	var b strings.Builder
	b.Grow(len(r) * 3)
	for _, v := range r {
		b.WriteByte(byte(v&31) + asciiBase)
		b.WriteByte(byte(v>>5&31) + asciiBase)
		b.WriteByte(byte(v>>10&63) + asciiBase)
	}
	return b.String()
}

// DecodeASCII parses the output of EncodeASCII. Malformed input yields Empty
// and a warning on the package logger.
func DecodeASCII(s string) Region {
	if len(s) == 0 {
		return Empty
	}
	if len(s)%3 != 0 {
		Logger().Warn("region: ascii length is not a multiple of 3", "len", len(s))
		return Empty
	}
	out := make(Region, len(s)/3)
	for i := range out {
		lo, mid, hi := int(s[i*3])-asciiBase, int(s[i*3+1])-asciiBase, int(s[i*3+2])-asciiBase
		if lo < 0 || lo > 31 || mid < 0 || mid > 31 || hi < 0 || hi > 63 {
			Logger().Warn("region: ascii character out of range", "offset", i*3)
			return Empty
		}
		out[i] = uint16(lo | mid<<5 | hi<<10)
	}
	return checked(out)
}

// EncodeBraille serializes r as two runes per run from the braille block,
// low byte first.
func EncodeBraille(r Region) string {
	runes := make([]rune, 0, len(r)*2)
	for _, v := range r {
		runes = append(runes, brailleBase+rune(v&0xff), brailleBase+rune(v>>8))
	}
	return string(runes)
}

// DecodeBraille parses the output of EncodeBraille. Malformed input yields
// Empty and a warning on the package logger.
func DecodeBraille(s string) Region {
	runes := []rune(s)
	if len(runes) == 0 {
		return Empty
	}
	if len(runes)%2 != 0 {
		Logger().Warn("region: braille length is not a multiple of 2", "len", len(runes))
		return Empty
	}
	out := make(Region, len(runes)/2)
	for i := range out {
		lo, hi := runes[i*2]-brailleBase, runes[i*2+1]-brailleBase
		if lo < 0 || lo > 0xff || hi < 0 || hi > 0xff {
			Logger().Warn("region: braille rune out of range", "offset", i*2)
			return Empty
		}
		out[i] = uint16(lo) | uint16(hi)<<8
	}
	return checked(out)
}

// checked rejects decoded runs that cover more than the whole curve.
func checked(r Region) Region {
	if r.span() > 1<<16 {
		Logger().Warn("region: decoded runs exceed the curve", "span", r.span())
		return Empty
	}
	return r
}
