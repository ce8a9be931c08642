package z8000

// Registers holds the Z8002 general-register file: sixteen 16-bit word
// registers R0..R15, simultaneously addressable as 8 byte-register pairs
// (RH0/RL0..RH7/RL7, registers 0-7 only), 8 long register pairs RR0, RR2,
// ..., RR14, and 4 quad register groups RQ0, RQ4, RQ8, RQ12.
//
// The backing store is a single 32-byte buffer laid out big-endian
// canonical: word n occupies buf[2n:2n+2] with the high byte at buf[2n].
// Every view is derived from this one buffer, so a write through any view
// is immediately visible through all overlapping views, on any host
// endianness (the buffer's layout is fixed by this type, not by the host's
// native word representation).
type Registers struct {
	buf [32]byte
}

// RW returns the 16-bit value of word register n (0-15).
func (r *Registers) RW(n int) uint16 {
	return uint16(r.buf[2*n])<<8 | uint16(r.buf[2*n+1])
}

// SetRW writes the 16-bit value of word register n (0-15).
func (r *Registers) SetRW(n int, v uint16) {
	r.buf[2*n] = byte(v >> 8)
	r.buf[2*n+1] = byte(v)
}

// RB returns the byte register at index n (0-15): RH0,RL0,RH1,RL1,...,RH7,RL7.
// Only word registers 0-7 have byte aliases; n must be in [0,15].
func (r *Registers) RB(n int) uint8 {
	return r.buf[n]
}

// SetRB writes the byte register at index n (0-15).
func (r *Registers) SetRB(n int, v uint8) {
	r.buf[n] = v
}

// RR returns the 32-bit long value of register pair n:n+1 (n even, 0-14),
// with RW(n) as the high word.
func (r *Registers) RR(n int) uint32 {
	return uint32(r.RW(n))<<16 | uint32(r.RW(n+1))
}

// SetRR writes the 32-bit long value of register pair n:n+1 (n even, 0-14).
func (r *Registers) SetRR(n int, v uint32) {
	r.SetRW(n, uint16(v>>16))
	r.SetRW(n+1, uint16(v))
}

// RQ returns the 64-bit quad value of the four consecutive word registers
// starting at n (n in {0,4,8,12}), with RW(n) as the highest word.
func (r *Registers) RQ(n int) uint64 {
	return uint64(r.RR(n))<<32 | uint64(r.RR(n+2))
}

// SetRQ writes the 64-bit quad value of the four consecutive word
// registers starting at n (n in {0,4,8,12}).
func (r *Registers) SetRQ(n int, v uint64) {
	r.SetRR(n, uint32(v>>32))
	r.SetRR(n+2, uint32(v))
}
