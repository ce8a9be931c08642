package z8000

// Logical family: AND, OR, XOR, TEST (word and byte forms). All clear
// C and V for word operands; byte operands additionally report parity
// in P/V (see logicalFlags in flags.go).
func registerLogicOps() {
	registerAND()
	registerOR()
	registerXOR()
	registerTEST()
}

func (c *CPU) doAnd(dst Operand, src uint32, sz Size) {
	a := dst.read(c, sz)
	result := a & src & sz.Mask()
	dst.write(c, sz, result)
	c.setCond(logicalFlags(result, sz))
}

func (c *CPU) doOr(dst Operand, src uint32, sz Size) {
	a := dst.read(c, sz)
	result := (a | src) & sz.Mask()
	dst.write(c, sz, result)
	c.setCond(logicalFlags(result, sz))
}

func (c *CPU) doXor(dst Operand, src uint32, sz Size) {
	a := dst.read(c, sz)
	result := (a ^ src) & sz.Mask()
	dst.write(c, sz, result)
	c.setCond(logicalFlags(result, sz))
}

func registerAND() {
	addOp(0xFFF0, 0x4400, func(c *CPU) { // AND Rd,#imm16
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.doAnd(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 7
	})
	addOp(0xFF00, 0x4500, func(c *CPU) { // AND Rd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doAnd(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 7
	})
	addOp(0xFFF0, 0x4600, func(c *CPU) { // AND Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.doAnd(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 8
	})
	addOp(0xFF00, 0x8500, func(c *CPU) { // AND Rd,Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.doAnd(c.resolveR(uint8(dst)), uint32(c.Regs.RW(int(src))), Word)
		c.cycles += 4
	})
	addOp(0xFF00, 0x4700, func(c *CPU) { // ANDB Rd,#imm8
		dst := c.ir & 0xF
		op := c.resolveIM(Byte)
		c.doAnd(c.resolveR(uint8(dst)), op.read(c, Byte), Byte)
		c.cycles += 7
	})
}

func registerOR() {
	addOp(0xFFF0, 0x4800, func(c *CPU) { // OR Rd,#imm16
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.doOr(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 7
	})
	addOp(0xFF00, 0x4900, func(c *CPU) { // OR Rd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doOr(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 7
	})
	addOp(0xFFF0, 0x4A00, func(c *CPU) { // OR Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.doOr(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 8
	})
	addOp(0xFF00, 0x8600, func(c *CPU) { // OR Rd,Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.doOr(c.resolveR(uint8(dst)), uint32(c.Regs.RW(int(src))), Word)
		c.cycles += 4
	})
	addOp(0xFF00, 0x4B00, func(c *CPU) { // ORB Rd,#imm8
		dst := c.ir & 0xF
		op := c.resolveIM(Byte)
		c.doOr(c.resolveR(uint8(dst)), op.read(c, Byte), Byte)
		c.cycles += 7
	})
}

func registerXOR() {
	addOp(0xFFF0, 0x4C00, func(c *CPU) { // XOR Rd,#imm16
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.doXor(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 7
	})
	addOp(0xFF00, 0x4D00, func(c *CPU) { // XOR Rd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doXor(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 7
	})
	addOp(0xFFF0, 0x4E00, func(c *CPU) { // XOR Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.doXor(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 8
	})
	addOp(0xFF00, 0x8700, func(c *CPU) { // XOR Rd,Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.doXor(c.resolveR(uint8(dst)), uint32(c.Regs.RW(int(src))), Word)
		c.cycles += 4
	})
	addOp(0xFF00, 0x4F00, func(c *CPU) { // XORB Rd,#imm8
		dst := c.ir & 0xF
		op := c.resolveIM(Byte)
		c.doXor(c.resolveR(uint8(dst)), op.read(c, Byte), Byte)
		c.cycles += 7
	})
}

// TEST reports flags for the operand's own value without modifying it.
func registerTEST() {
	addOp(0xFFF0, 0x5E00, func(c *CPU) { // TEST Rd (word)
		dst := c.ir & 0xF
		v := uint32(c.Regs.RW(int(dst)))
		c.setCond(logicalFlags(v, Word))
		c.cycles += 4
	})
	addOp(0xFFF0, 0x5F00, func(c *CPU) { // TESTB Rd (byte)
		dst := c.ir & 0xF
		v := uint32(c.Regs.RB(int(dst)))
		c.setCond(logicalFlags(v, Byte))
		c.cycles += 4
	})
	addOp(0xFFF0, 0x1B00, func(c *CPU) { // TESTL RRd (long)
		dst := c.ir & 0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		v := c.Regs.RR(int(dst))
		var bits uint16
		if v == 0 {
			bits |= flagZ
		}
		if v&0x80000000 != 0 {
			bits |= flagS
		}
		c.setCond(bits)
		c.cycles += 7
	})
}
