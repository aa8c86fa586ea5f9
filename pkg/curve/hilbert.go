// Package curve builds and queries the space-filling traversals used to
// linearize 2D grids: a 256x256 Hilbert curve, an 8x8x8 Hilbert curve and a
// closed 16x16 Moore curve.
//
// The bit-twiddling conversions follow
// http://and-what-happened.blogspot.com/2011/08/fast-2d-and-3d-hilbert-curves-and.html
package curve

import "math/bits"

const depth = 8

// Encode returns the distance along the 256x256 Hilbert curve to (x, y)
// without consulting the lookup tables. Only the low 8 bits of each axis are used.
func Encode(x, y int) uint16 {
	var hilbert uint32
	remap := uint32(0xb4)
	for block := depth - 1; block >= 0; block-- {
		mcode := uint32(x>>block)&1 | (uint32(y>>block)&1)<<1
		hcode := (remap >> (mcode << 1)) & 3
		remap ^= 0x82000028 >> (hcode << 3)
		hilbert = hilbert<<2 + hcode
	}
	return uint16(hilbert)
}

// Decode returns the coordinates at distance h along the 256x256 Hilbert curve
// without consulting the lookup tables.
func Decode(h uint16) (x, y int) {
	remap := uint32(0xb4)
	for block := 2*depth - 2; block >= 0; block -= 2 {
		hcode := uint32(h>>block) & 3
		mcode := (remap >> (hcode << 1)) & 3
		remap ^= 0x330000cc >> (hcode << 3)
		x = x<<1 + int(mcode&1)
		y = y<<1 + int(mcode>>1)
	}
	return x, y
}

// MortonToHilbert converts a 16-bit Morton code (x in the least significant
// bit) into a distance along the 256x256 Hilbert curve.
func MortonToHilbert(morton uint16) uint16 {
	var hilbert uint32
	remap := uint32(0xb4)
	for block := 2*depth - 2; block >= 0; block -= 2 {
		mcode := uint32(morton>>block) & 3
		hcode := (remap >> (mcode << 1)) & 3
		remap ^= 0x82000028 >> (hcode << 3)
		hilbert = hilbert<<2 + hcode
	}
	return uint16(hilbert)
}

// HilbertToMorton converts a Hilbert distance into the Morton code of the same cell.
func HilbertToMorton(h uint16) uint16 {
	var morton uint32
	remap := uint32(0xb4)
	for block := 2*depth - 2; block >= 0; block -= 2 {
		hcode := uint32(h>>block) & 3
		mcode := (remap >> (hcode << 1)) & 3
		remap ^= 0x330000cc >> (hcode << 3)
		morton = morton<<2 + mcode
	}
	return uint16(morton)
}

// MortonEncode interleaves two 8-bit values, x in the least significant bit.
func MortonEncode(x, y int) uint16 {
	a, b := uint32(x)&0xff, uint32(y)&0xff
	a = (a | a<<4) & 0x0f0f
	b = (b | b<<4) & 0x0f0f
	a = (a | a<<2) & 0x3333
	b = (b | b<<2) & 0x3333
	a = (a | a<<1) & 0x5555
	b = (b | b<<1) & 0x5555
	return uint16(a | b<<1)
}

// MortonDecode splits a 16-bit Morton code back into its two 8-bit axes.
func MortonDecode(morton uint16) (x, y int) {
	a, b := uint32(morton), uint32(morton)>>1
	a &= 0x5555
	b &= 0x5555
	a = (a | a>>1) & 0x3333
	b = (b | b>>1) & 0x3333
	a = (a | a>>2) & 0x0f0f
	b = (b | b>>2) & 0x0f0f
	a = (a | a>>4) & 0x00ff
	b = (b | b>>4) & 0x00ff
	return int(a), int(b)
}

// MortonEncode16 interleaves two 16-bit values into a 32-bit Morton code.
func MortonEncode16(x, y uint16) uint32 {
	a, b := uint32(x), uint32(y)
	a = (a | a<<8) & 0x00ff00ff
	b = (b | b<<8) & 0x00ff00ff
	a = (a | a<<4) & 0x0f0f0f0f
	b = (b | b<<4) & 0x0f0f0f0f
	a = (a | a<<2) & 0x33333333
	b = (b | b<<2) & 0x33333333
	a = (a | a<<1) & 0x55555555
	b = (b | b<<1) & 0x55555555
	return a | b<<1
}

// MortonDecode16 splits a 32-bit Morton code into its two 16-bit axes.
func MortonDecode16(morton uint32) (x, y uint16) {
	a, b := morton&0x55555555, (morton>>1)&0x55555555
	a = (a | a>>1) & 0x33333333
	b = (b | b>>1) & 0x33333333
	a = (a | a>>2) & 0x0f0f0f0f
	b = (b | b>>2) & 0x0f0f0f0f
	a = (a | a>>4) & 0x00ff00ff
	b = (b | b>>4) & 0x00ff00ff
	a = (a | a>>8) & 0x0000ffff
	b = (b | b>>8) & 0x0000ffff
	return uint16(a), uint16(b)
}

// MortonEncode3 interleaves three 3-bit values, x in the least significant bit.
func MortonEncode3(x, y, z int) uint32 {
	var m uint32
	for i := 0; i < 3; i++ {
		m |= (uint32(x>>i)&1)<<(3*i) |
			(uint32(y>>i)&1)<<(3*i+1) |
			(uint32(z>>i)&1)<<(3*i+2)
	}
	return m
}

// mortonToHilbert3 maps a 9-bit 3D Morton code onto the 8x8x8 Hilbert curve.
func mortonToHilbert3(morton uint32) uint32 {
	hilbert := morton
	block := uint32(6)
	hcode := (hilbert >> block) & 7
	var shift, signs uint32
	for block > 0 {
		block -= 3
		hcode <<= 2
		mcode := (uint32(0x20212021) >> hcode) & 3
		shift = (0x48 >> (7 - shift - mcode)) & 3
		signs = (signs | signs<<3) >> mcode
		signs = (signs ^ 0x53560300>>hcode) & 7
		mcode = (hilbert >> block) & 7
		hcode = mcode
		hcode = ((hcode | hcode<<3) >> shift) & 7
		hcode ^= signs
		hilbert ^= (mcode ^ hcode) << block
	}
	hilbert ^= (hilbert >> 1) & 0x92492492
	hilbert ^= (hilbert & 0x92492492) >> 1
	return hilbert
}

// GrayEncode returns the reflected binary Gray code of n.
func GrayEncode(n uint32) uint32 { return n ^ n>>1 }

// GrayDecode inverts GrayEncode.
func GrayDecode(n uint32) uint32 {
	p := n
	for n >>= 1; n != 0; n >>= 1 {
		p ^= n
	}
	return p
}

// GrayRank packs the bits of i selected by mask, top n bits first, into a
// dense rank.
func GrayRank(n int, mask, i uint32) uint32 {
	var r uint32
	for k := n - 1; k >= 0; k-- {
		if mask>>k&1 == 1 {
			r = r<<1 | i>>k&1
		}
	}
	return r
}

// GrayRankInverse rebuilds the n-bit i whose masked bits spell rank and
// whose Gray code matches alt on the bits outside mask.
func GrayRankInverse(n int, mask, alt, rank uint32) uint32 {
	var i uint32
	j := bits.OnesCount32(mask) - 1
	for k := n - 1; k >= 0; k-- {
		if mask>>k&1 == 1 {
			i |= (rank >> j & 1) << k
			j--
		} else {
			i |= (alt>>k ^ i>>(k+1)) & 1 << k
		}
	}
	return i
}
