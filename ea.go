package z8000

// operandKind tags how an Operand's value is produced, replacing
// source-level function pointers with a small tagged sum type that every
// handler consumes uniformly regardless of addressing mode.
type operandKind uint8

const (
	opReg operandKind = iota
	opImm
	opMem
)

// Operand is a resolved addressing-mode result: a register index, an
// immediate value, or a data-space effective address.
type Operand struct {
	kind operandKind
	reg  uint8
	imm  uint32
	addr uint16
}

// Addr returns the resolved memory address. Only meaningful for opMem
// operands (used by LDA).
func (o Operand) Addr() uint16 {
	return o.addr
}

// read returns the operand's value at the given width.
func (o Operand) read(c *CPU, sz Size) uint32 {
	switch o.kind {
	case opReg:
		switch sz {
		case Byte:
			return uint32(c.Regs.RB(int(o.reg)))
		case Long:
			return c.Regs.RR(int(o.reg))
		default:
			return uint32(c.Regs.RW(int(o.reg)))
		}
	case opImm:
		return o.imm & sz.Mask()
	case opMem:
		return c.readSizedData(sz, o.addr)
	}
	return 0
}

// write stores val into the operand at the given width. Writing to an
// immediate operand is a no-op (never exercised by a well-formed
// descriptor).
func (o Operand) write(c *CPU, sz Size, val uint32) {
	switch o.kind {
	case opReg:
		switch sz {
		case Byte:
			c.Regs.SetRB(int(o.reg), uint8(val))
		case Long:
			c.Regs.SetRR(int(o.reg), val)
		default:
			c.Regs.SetRW(int(o.reg), uint16(val))
		}
	case opMem:
		c.writeSizedData(sz, o.addr, val)
	}
}

// resolveR resolves the R (register) addressing mode: the operand lives
// directly in register reg.
func (c *CPU) resolveR(reg uint8) Operand {
	return Operand{kind: opReg, reg: reg}
}

// resolveIM resolves the IM (immediate) addressing mode: the operand is
// the next word (or, for Byte, the low byte of the next word).
func (c *CPU) resolveIM(sz Size) Operand {
	switch sz {
	case Byte:
		return Operand{kind: opImm, imm: uint32(c.fetchPCByte())}
	case Long:
		return Operand{kind: opImm, imm: c.fetchPCLong()}
	default:
		return Operand{kind: opImm, imm: uint32(c.fetchPC())}
	}
}

// resolveIR resolves the IR (register indirect) addressing mode: the
// register holds the effective address. Register 0 is illegal in this
// context — the architecture reserves R0 to mean "no register".
func (c *CPU) resolveIR(reg uint8) Operand {
	if reg == 0 {
		c.extendedInstructionTrap()
		return Operand{}
	}
	return Operand{kind: opMem, addr: c.Regs.RW(int(reg))}
}

// resolveDA resolves the DA (direct address) addressing mode: the next
// word is the effective address.
func (c *CPU) resolveDA() Operand {
	addr := c.fetchPC()
	return Operand{kind: opMem, addr: addr}
}

// resolveX resolves the X (indexed) addressing mode: the next word plus
// the value of register reg is the effective address.
func (c *CPU) resolveX(reg uint8) Operand {
	if reg == 0 {
		c.extendedInstructionTrap()
		return Operand{}
	}
	disp := c.fetchPC()
	return Operand{kind: opMem, addr: disp + c.Regs.RW(int(reg))}
}

// resolveBA resolves the BA (base address) addressing mode: register reg
// plus a signed displacement (the next word) is the effective address.
func (c *CPU) resolveBA(reg uint8) Operand {
	if reg == 0 {
		c.extendedInstructionTrap()
		return Operand{}
	}
	disp := int16(c.fetchPC())
	return Operand{kind: opMem, addr: uint16(int32(c.Regs.RW(int(reg))) + int32(disp))}
}

// resolveBX resolves the BX (base index) addressing mode: register reg
// plus another register (named in the low nibble of the next word) is
// the effective address.
func (c *CPU) resolveBX(reg uint8) Operand {
	if reg == 0 {
		c.extendedInstructionTrap()
		return Operand{}
	}
	ext := c.fetchPC()
	ix := uint8(ext & 0xF)
	if ix == 0 {
		c.extendedInstructionTrap()
		return Operand{}
	}
	return Operand{kind: opMem, addr: c.Regs.RW(int(reg)) + c.Regs.RW(int(ix))}
}

// checkLongReg traps with an extended-instruction fault if reg is odd;
// long-register operands must name an even register index — the decoder
// enforces evenness, so an odd long-register index traps.
func (c *CPU) checkLongReg(reg uint8) bool {
	if reg&1 != 0 {
		c.extendedInstructionTrap()
		return false
	}
	return true
}
