package z8000

import "testing"

// testBus is a flat 64KB memory backing program (and data) space;
// standard and special I/O each get their own 64K-entry port array so
// tests can distinguish traffic to either.
type testBus struct {
	mem      [65536]byte
	io       [65536]byte
	specIO   [65536]byte
}

func (b *testBus) ReadByte(addr uint16) uint8 { return b.mem[addr] }
func (b *testBus) WriteByte(addr uint16, val uint8) { b.mem[addr] = val }

func (b *testBus) ReadWord(addr uint16) uint16 {
	return uint16(b.mem[addr])<<8 | uint16(b.mem[addr+1])
}

func (b *testBus) WriteWord(addr uint16, val uint16) {
	b.mem[addr] = byte(val >> 8)
	b.mem[addr+1] = byte(val)
}

func (b *testBus) ReadLong(addr uint16) uint32 {
	return uint32(b.ReadWord(addr))<<16 | uint32(b.ReadWord(addr+2))
}

func (b *testBus) WriteLong(addr uint16, val uint32) {
	b.WriteWord(addr, uint16(val>>16))
	b.WriteWord(addr+2, uint16(val))
}

func (b *testBus) IOReadByte(port uint16) uint8          { return b.io[port] }
func (b *testBus) IOWriteByte(port uint16, val uint8)    { b.io[port] = val }
func (b *testBus) IOReadWord(port uint16) uint16 {
	return uint16(b.io[port])<<8 | uint16(b.io[port+1])
}
func (b *testBus) IOWriteWord(port uint16, val uint16) {
	b.io[port] = byte(val >> 8)
	b.io[port+1] = byte(val)
}

func (b *testBus) SpecialIOReadByte(port uint16) uint8       { return b.specIO[port] }
func (b *testBus) SpecialIOWriteByte(port uint16, val uint8) { b.specIO[port] = val }
func (b *testBus) SpecialIOReadWord(port uint16) uint16 {
	return uint16(b.specIO[port])<<8 | uint16(b.specIO[port+1])
}
func (b *testBus) SpecialIOWriteWord(port uint16, val uint16) {
	b.specIO[port] = byte(val >> 8)
	b.specIO[port+1] = byte(val)
}

// writeWord stores a big-endian word into test memory.
func writeWord(bus *testBus, addr uint16, val uint16) {
	bus.mem[addr] = byte(val >> 8)
	bus.mem[addr+1] = byte(val)
}

// loadProgram writes successive words into test memory starting at addr.
func loadProgram(bus *testBus, addr uint16, words ...uint16) {
	for i, w := range words {
		writeWord(bus, addr+uint16(2*i), w)
	}
}

// newTestCPU builds a CPU over a fresh testBus with a reset vector that
// boots straight into normal mode at loadAt, and returns both.
func newTestCPU(t *testing.T, loadAt uint16) (*CPU, *testBus) {
	t.Helper()
	bus := &testBus{}
	writeWord(bus, 2, 0x0000)   // reset FCW: normal mode, no flags
	writeWord(bus, 4, loadAt) // reset PC
	return New(bus), bus
}
