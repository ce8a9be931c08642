package z8000

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 1 + 32 + 2 + 2 + 2 + 2 + 8 + 2 + 2 + 1 + 1

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the full CPU state into buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small.
// The Bus is not included; the caller restores memory separately.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("z8000: serialize buffer too small")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	copy(buf[off:], c.Regs.buf[:])
	off += 32

	be.PutUint16(buf[off:], c.PC)
	off += 2
	be.PutUint16(buf[off:], c.FCW)
	off += 2
	be.PutUint16(buf[off:], c.PSAP)
	off += 2
	be.PutUint16(buf[off:], c.Refresh)
	off += 2

	be.PutUint64(buf[off:], c.cycles)
	off += 8

	be.PutUint16(buf[off:], c.ir)
	off += 2
	be.PutUint16(buf[off:], c.instrPC)
	off += 2

	var flags uint8
	if c.halted {
		flags |= 1 << 0
	}
	if c.stopReq {
		flags |= 1 << 1
	}
	if c.nmiPending {
		flags |= 1 << 2
	}
	if c.nviLine {
		flags |= 1 << 3
	}
	if c.viLine {
		flags |= 1 << 4
	}
	if c.blockContinue {
		flags |= 1 << 5
	}
	if c.mi {
		flags |= 1 << 6
	}
	buf[off] = flags
	off++

	buf[off] = c.viVector
	return nil
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small or
// the version does not match. The bus and cycleBus fields are left
// unchanged; the caller must construct the CPU with New first.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("z8000: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("z8000: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	copy(c.Regs.buf[:], buf[off:off+32])
	off += 32

	c.PC = be.Uint16(buf[off:])
	off += 2
	c.FCW = be.Uint16(buf[off:])
	off += 2
	c.PSAP = be.Uint16(buf[off:])
	off += 2
	c.Refresh = be.Uint16(buf[off:])
	off += 2

	c.cycles = be.Uint64(buf[off:])
	off += 8

	c.ir = be.Uint16(buf[off:])
	off += 2
	c.instrPC = be.Uint16(buf[off:])
	off += 2

	flags := buf[off]
	off++
	c.halted = flags&(1<<0) != 0
	c.stopReq = flags&(1<<1) != 0
	c.nmiPending = flags&(1<<2) != 0
	c.nviLine = flags&(1<<3) != 0
	c.viLine = flags&(1<<4) != 0
	c.blockContinue = flags&(1<<5) != 0
	c.mi = flags&(1<<6) != 0

	c.viVector = buf[off]
	return nil
}
