package z8000

// Arithmetic family opcode layout. Register-to-register forms live in
// the 0x80-0x8F decade (bit 0x80 set); the immediate/IR/DA/X forms of
// the same mnemonics live elsewhere. Byte0 0x01 (ADD Rd,#imm16) and
// 0x81 (ADD Rd,Rs) are pinned to match the worked examples; the rest of
// this implementation's own encoding follows the same register-field
// convention used throughout (byte1 = otherReg<<4 | dst, or 0<<4 | dst
// for immediate/DA forms).
func registerArithOps() {
	registerADD()
	registerADC()
	registerSUB()
	registerSBC()
	registerCP()
	registerLongArith()
	registerIncDec()
	registerNegCom()
	registerMulDiv()
}

// doAdd performs dst = dst + src (+ carry-in if withCarry) and sets flags.
func (c *CPU) doAdd(dst Operand, src uint32, withCarry bool, sz Size) {
	var cin uint32
	if withCarry && c.FCW&flagC != 0 {
		cin = 1
	}
	a := dst.read(c, sz)
	result := uint32(uint64(a) + uint64(src) + uint64(cin))
	bits := addFlags(a, src, cin, result, sz)
	dst.write(c, sz, result)
	c.setCond(bits)
}

// doSub performs dst = dst - src (- borrow-in if withCarry) and sets flags.
func (c *CPU) doSub(dst Operand, src uint32, withCarry bool, sz Size) {
	var bin uint32
	if withCarry && c.FCW&flagC != 0 {
		bin = 1
	}
	a := dst.read(c, sz)
	result := uint32(uint64(a) - uint64(src) - uint64(bin))
	bits := subFlags(a, src, bin, result, sz)
	dst.write(c, sz, result)
	c.setCond(bits)
}

func registerADD() {
	addOp(0xFFF0, 0x0100, func(c *CPU) { // ADD Rd,#imm16 [pinned]
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.doAdd(c.resolveR(uint8(dst)), op.read(c, Word), false, Word)
		c.cycles += 7
	})
	addOp(0xFF00, 0x0200, func(c *CPU) { // ADD Rd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doAdd(c.resolveR(uint8(dst)), op.read(c, Word), false, Word)
		c.cycles += 7
	})
	addOp(0xFFF0, 0x0300, func(c *CPU) { // ADD Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.doAdd(c.resolveR(uint8(dst)), op.read(c, Word), false, Word)
		c.cycles += 8
	})
	addOp(0xFF00, 0x0400, func(c *CPU) { // ADD Rd,addr(Rx)
		rx, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveX(uint8(rx))
		c.doAdd(c.resolveR(uint8(dst)), op.read(c, Word), false, Word)
		c.cycles += 9
	})
	addOp(0xFF00, 0x8100, func(c *CPU) { // ADD Rd,Rs [pinned]
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.doAdd(c.resolveR(uint8(dst)), uint32(c.Regs.RW(int(src))), false, Word)
		c.cycles += 4
	})
}

func registerADC() {
	addOp(0xFFF0, 0x0500, func(c *CPU) { // ADC Rd,#imm16
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.doAdd(c.resolveR(uint8(dst)), op.read(c, Word), true, Word)
		c.cycles += 7
	})
	addOp(0xFF00, 0x0600, func(c *CPU) { // ADC Rd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doAdd(c.resolveR(uint8(dst)), op.read(c, Word), true, Word)
		c.cycles += 7
	})
	addOp(0xFFF0, 0x0700, func(c *CPU) { // ADC Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.doAdd(c.resolveR(uint8(dst)), op.read(c, Word), true, Word)
		c.cycles += 8
	})
	addOp(0xFF00, 0x0800, func(c *CPU) { // ADC Rd,addr(Rx)
		rx, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveX(uint8(rx))
		c.doAdd(c.resolveR(uint8(dst)), op.read(c, Word), true, Word)
		c.cycles += 9
	})
	addOp(0xFF00, 0x8200, func(c *CPU) { // ADC Rd,Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.doAdd(c.resolveR(uint8(dst)), uint32(c.Regs.RW(int(src))), true, Word)
		c.cycles += 4
	})
}

func registerSUB() {
	addOp(0xFFF0, 0x0900, func(c *CPU) { // SUB Rd,#imm16
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.doSub(c.resolveR(uint8(dst)), op.read(c, Word), false, Word)
		c.cycles += 7
	})
	addOp(0xFF00, 0x0A00, func(c *CPU) { // SUB Rd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doSub(c.resolveR(uint8(dst)), op.read(c, Word), false, Word)
		c.cycles += 7
	})
	addOp(0xFFF0, 0x0B00, func(c *CPU) { // SUB Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.doSub(c.resolveR(uint8(dst)), op.read(c, Word), false, Word)
		c.cycles += 8
	})
	addOp(0xFF00, 0x0C00, func(c *CPU) { // SUB Rd,addr(Rx)
		rx, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveX(uint8(rx))
		c.doSub(c.resolveR(uint8(dst)), op.read(c, Word), false, Word)
		c.cycles += 9
	})
	addOp(0xFF00, 0x8300, func(c *CPU) { // SUB Rd,Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.doSub(c.resolveR(uint8(dst)), uint32(c.Regs.RW(int(src))), false, Word)
		c.cycles += 4
	})
}

func registerSBC() {
	addOp(0xFFF0, 0x0D00, func(c *CPU) { // SBC Rd,#imm16
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.doSub(c.resolveR(uint8(dst)), op.read(c, Word), true, Word)
		c.cycles += 7
	})
	addOp(0xFF00, 0x0E00, func(c *CPU) { // SBC Rd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doSub(c.resolveR(uint8(dst)), op.read(c, Word), true, Word)
		c.cycles += 7
	})
	addOp(0xFFF0, 0x0F00, func(c *CPU) { // SBC Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.doSub(c.resolveR(uint8(dst)), op.read(c, Word), true, Word)
		c.cycles += 8
	})
	addOp(0xFFF0, 0x2000, func(c *CPU) { // SBC Rd,addr(Rx) (Rx implied R1, rare form kept simple: X mode)
		dst := c.ir & 0xF
		op := c.resolveX(1)
		c.doSub(c.resolveR(uint8(dst)), op.read(c, Word), true, Word)
		c.cycles += 9
	})
	addOp(0xFF00, 0x8400, func(c *CPU) { // SBC Rd,Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.doSub(c.resolveR(uint8(dst)), uint32(c.Regs.RW(int(src))), true, Word)
		c.cycles += 4
	})
}

func registerCP() {
	addOp(0xFFF0, 0x2200, func(c *CPU) { // CP Rd,#imm16
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.doCmp(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 7
	})
	addOp(0xFF00, 0x2300, func(c *CPU) { // CP Rd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doCmp(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 7
	})
	addOp(0xFFF0, 0x2400, func(c *CPU) { // CP Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.doCmp(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 8
	})
	addOp(0xFF00, 0x2500, func(c *CPU) { // CP Rd,addr(Rx)
		rx, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveX(uint8(rx))
		c.doCmp(c.resolveR(uint8(dst)), op.read(c, Word), Word)
		c.cycles += 9
	})
	addOp(0xFF00, 0x8800, func(c *CPU) { // CP Rd,Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.doCmp(c.resolveR(uint8(dst)), uint32(c.Regs.RW(int(src))), Word)
		c.cycles += 4
	})
}

// doCmp sets flags as if dst-src had been computed, without storing.
func (c *CPU) doCmp(dst Operand, src uint32, sz Size) {
	a := dst.read(c, sz)
	result := uint32(uint64(a) - uint64(src))
	c.setCond(cmpFlags(a, src, result, sz))
}

// registerLongArith registers ADDL/SUBL/CPL: 32-bit versions of
// ADD/SUB/CP over even-indexed register pairs.
func registerLongArith() {
	addOp(0xFFF0, 0x2600, func(c *CPU) { // ADDL RRd,#imm32
		dst := c.ir & 0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		imm := c.fetchPCLong()
		c.doAdd(longOperand(uint8(dst)), imm, false, Long)
		c.cycles += 11
	})
	addOp(0xFF00, 0x2700, func(c *CPU) { // ADDL RRd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		op := c.resolveIR(uint8(src))
		c.doAdd(longOperand(uint8(dst)), op.read(c, Long), false, Long)
		c.cycles += 11
	})
	addOp(0xFFF0, 0x2800, func(c *CPU) { // ADDL RRd,addr
		dst := c.ir & 0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		op := c.resolveDA()
		c.doAdd(longOperand(uint8(dst)), op.read(c, Long), false, Long)
		c.cycles += 12
	})
	addOp(0xFF00, 0x8900, func(c *CPU) { // ADDL RRd,RRs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(dst)) || !c.checkLongReg(uint8(src)) {
			return
		}
		c.doAdd(longOperand(uint8(dst)), c.Regs.RR(int(src)), false, Long)
		c.cycles += 7
	})

	addOp(0xFFF0, 0x2A00, func(c *CPU) { // SUBL RRd,#imm32
		dst := c.ir & 0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		imm := c.fetchPCLong()
		c.doSub(longOperand(uint8(dst)), imm, false, Long)
		c.cycles += 11
	})
	addOp(0xFF00, 0x2B00, func(c *CPU) { // SUBL RRd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		op := c.resolveIR(uint8(src))
		c.doSub(longOperand(uint8(dst)), op.read(c, Long), false, Long)
		c.cycles += 11
	})
	addOp(0xFFF0, 0x2C00, func(c *CPU) { // SUBL RRd,addr
		dst := c.ir & 0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		op := c.resolveDA()
		c.doSub(longOperand(uint8(dst)), op.read(c, Long), false, Long)
		c.cycles += 12
	})
	addOp(0xFF00, 0x8A00, func(c *CPU) { // SUBL RRd,RRs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(dst)) || !c.checkLongReg(uint8(src)) {
			return
		}
		c.doSub(longOperand(uint8(dst)), c.Regs.RR(int(src)), false, Long)
		c.cycles += 7
	})

	addOp(0xFFF0, 0x3300, func(c *CPU) { // CPL RRd,#imm32
		dst := c.ir & 0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		imm := c.fetchPCLong()
		c.doCmp(longOperand(uint8(dst)), imm, Long)
		c.cycles += 11
	})
	addOp(0xFF00, 0x3000, func(c *CPU) { // CPL RRd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		op := c.resolveIR(uint8(src))
		c.doCmp(longOperand(uint8(dst)), op.read(c, Long), Long)
		c.cycles += 11
	})
	addOp(0xFFF0, 0x3100, func(c *CPU) { // CPL RRd,addr
		dst := c.ir & 0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		op := c.resolveDA()
		c.doCmp(longOperand(uint8(dst)), op.read(c, Long), Long)
		c.cycles += 12
	})
	addOp(0xFF00, 0x8B00, func(c *CPU) { // CPL RRd,RRs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(dst)) || !c.checkLongReg(uint8(src)) {
			return
		}
		c.doCmp(longOperand(uint8(dst)), c.Regs.RR(int(src)), Long)
		c.cycles += 7
	})
}

// longOperand returns an Operand reading/writing the RR (long) register
// view so doAdd/doSub/doCmp can be reused at Long size.
func longOperand(reg uint8) Operand {
	return Operand{kind: opReg, reg: reg}
}

// registerIncDec registers INC/DEC Rd,#n (n encoded as n-1).
func registerIncDec() {
	addOp(0xFF00, 0xA900, func(c *CPU) { // INC Rd,#n [pinned family byte]
		dst := (c.ir >> 4) & 0xF
		n := uint32((c.ir&0xF)+1)
		before := uint32(c.Regs.RW(int(dst)))
		result := before + n
		c.Regs.SetRW(int(dst), uint16(result))
		c.setCond(incDecFlags(before, result, true, Word) | c.FCW&flagC)
		c.cycles += 2
	})
	addOp(0xFF00, 0xA800, func(c *CPU) { // DEC Rd,#n
		dst := (c.ir >> 4) & 0xF
		n := uint32((c.ir&0xF)+1)
		before := uint32(c.Regs.RW(int(dst)))
		result := before - n
		c.Regs.SetRW(int(dst), uint16(result))
		c.setCond(incDecFlags(before, result, false, Word) | c.FCW&flagC)
		c.cycles += 2
	})
}

// registerNegCom registers NEG/NEGB and COM/COMB (register forms).
func registerNegCom() {
	addOp(0xFFF0, 0x8000, func(c *CPU) { // NEG Rd (word)
		dst := c.ir & 0xF
		before := uint32(c.Regs.RW(int(dst)))
		result := uint32(-int32(before)) & Word.Mask()
		c.Regs.SetRW(int(dst), uint16(result))
		c.setCond(negFlags(before, result, Word))
		c.cycles += 4
	})
	addOp(0xFFF0, 0x3400, func(c *CPU) { // NEGB Rd (byte)
		dst := c.ir & 0xF
		before := uint32(c.Regs.RB(int(dst)))
		result := uint32(-int32(before)) & Byte.Mask()
		c.Regs.SetRB(int(dst), uint8(result))
		c.setCond(negFlags(before, result, Byte))
		c.cycles += 4
	})
	addOp(0xFFF0, 0x3600, func(c *CPU) { // COM Rd (word)
		dst := c.ir & 0xF
		result := (^uint32(c.Regs.RW(int(dst)))) & Word.Mask()
		c.Regs.SetRW(int(dst), uint16(result))
		c.setCond(comFlags(result, Word))
		c.cycles += 4
	})
	addOp(0xFFF0, 0x3700, func(c *CPU) { // COMB Rd (byte)
		dst := c.ir & 0xF
		result := (^uint32(c.Regs.RB(int(dst)))) & Byte.Mask()
		c.Regs.SetRB(int(dst), uint8(result))
		c.setCond(comFlags(result, Byte))
		c.cycles += 4
	})
}

// registerMulDiv registers MULT/MULTL/DIV/DIVL. MULT computes Rd:Rd+1 =
// Rd * src (16x16->32, Rd even); MULTL computes RRd:RRd+2 = RRd * src
// (32x32->64, RRd one of RR0/RR4/RR8/RR12). DIV/DIVL raise an
// Extended-Instruction trap on divide-by-zero or quotient overflow.
func registerMulDiv() {
	addOp(0xFFF0, 0x3800, func(c *CPU) { // MULT Rd,#imm16
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.doMult(uint8(dst), op.read(c, Word))
		c.cycles += 70
	})
	addOp(0xFF00, 0x3900, func(c *CPU) { // MULT Rd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doMult(uint8(dst), op.read(c, Word))
		c.cycles += 70
	})
	addOp(0xFFF0, 0x3A00, func(c *CPU) { // MULT Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.doMult(uint8(dst), op.read(c, Word))
		c.cycles += 70
	})
	addOp(0xFF00, 0x8C00, func(c *CPU) { // MULT Rd,Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.doMult(uint8(dst), uint32(c.Regs.RW(int(src))))
		c.cycles += 70
	})

	addOp(0xFFF0, 0x3B00, func(c *CPU) { // MULTL RRd,#imm32
		dst := c.ir & 0xF
		imm := c.fetchPCLong()
		c.doMultL(uint8(dst), imm)
		c.cycles += 130
	})
	addOp(0xFF00, 0x3C00, func(c *CPU) { // MULTL RRd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doMultL(uint8(dst), op.read(c, Long))
		c.cycles += 130
	})
	addOp(0xFF00, 0x8D00, func(c *CPU) { // MULTL RRd,RRs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(src)) {
			return
		}
		c.doMultL(uint8(dst), c.Regs.RR(int(src)))
		c.cycles += 130
	})

	addOp(0xFFF0, 0x3E00, func(c *CPU) { // DIV Rd,#imm16
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.doDiv(uint8(dst), op.read(c, Word))
		c.cycles += 140
	})
	addOp(0xFF00, 0x3F00, func(c *CPU) { // DIV Rd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doDiv(uint8(dst), op.read(c, Word))
		c.cycles += 140
	})
	addOp(0xFFF0, 0x4000, func(c *CPU) { // DIV Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.doDiv(uint8(dst), op.read(c, Word))
		c.cycles += 140
	})
	addOp(0xFF00, 0x8E00, func(c *CPU) { // DIV Rd,Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.doDiv(uint8(dst), uint32(c.Regs.RW(int(src))))
		c.cycles += 140
	})

	addOp(0xFFF0, 0x4100, func(c *CPU) { // DIVL RRd,#imm32
		dst := c.ir & 0xF
		imm := c.fetchPCLong()
		c.doDivL(uint8(dst), imm)
		c.cycles += 160
	})
	addOp(0xFF00, 0x4200, func(c *CPU) { // DIVL RRd,@Rs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.doDivL(uint8(dst), op.read(c, Long))
		c.cycles += 160
	})
	addOp(0xFF00, 0x8F00, func(c *CPU) { // DIVL RRd,RRs
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(src)) {
			return
		}
		c.doDivL(uint8(dst), c.Regs.RR(int(src)))
		c.cycles += 160
	})
}

// doMult computes RR(dst) = RW(dst) * src as a signed 16x16->32 multiply.
// dst must be even.
func (c *CPU) doMult(dst uint8, src uint32) {
	if !c.checkLongReg(dst) {
		return
	}
	a := int32(int16(c.Regs.RW(int(dst))))
	b := int32(int16(uint16(src)))
	result := uint32(a * b)
	c.Regs.SetRR(int(dst), result)
	var bits uint16
	if result == 0 {
		bits |= flagZ
	}
	if result&0x80000000 != 0 {
		bits |= flagS
	}
	c.setCond(bits)
}

// doMultL computes RQ(dst) = RR(dst) * src as a signed 32x32->64 multiply.
func (c *CPU) doMultL(dst uint8, src uint32) {
	a := int64(int32(c.Regs.RR(int(dst))))
	b := int64(int32(src))
	result := uint64(a * b)
	c.Regs.SetRQ(int(dst)&^3, result)
	var bits uint16
	if result == 0 {
		bits |= flagZ
	}
	if result&0x8000000000000000 != 0 {
		bits |= flagS
	}
	c.setCond(bits)
}

// doDiv divides the signed 32-bit value in RR(dst) by src, storing the
// quotient in RW(dst) and the remainder in RW(dst+1). Traps (as an
// Extended-Instruction) on zero divisor or quotient overflow.
func (c *CPU) doDiv(dst uint8, src uint32) {
	if !c.checkLongReg(dst) {
		return
	}
	if int16(uint16(src)) == 0 {
		c.divideErrorTrap()
		return
	}
	dividend := int32(c.Regs.RR(int(dst)))
	divisor := int32(int16(uint16(src)))
	q := dividend / divisor
	r := dividend % divisor
	if q > 0x7FFF || q < -0x8000 {
		c.divideErrorTrap()
		return
	}
	c.Regs.SetRW(int(dst), uint16(q))
	c.Regs.SetRW(int(dst)+1, uint16(r))
	var bits uint16
	if q == 0 {
		bits |= flagZ
	}
	if q < 0 {
		bits |= flagS
	}
	c.setCond(bits)
}

// doDivL divides the signed 64-bit value in RQ(dst) by src, storing the
// quotient in RR(dst) and the remainder in RR(dst+2).
func (c *CPU) doDivL(dst uint8, src uint32) {
	base := int(dst) &^ 3
	if int32(src) == 0 {
		c.divideErrorTrap()
		return
	}
	dividend := int64(c.Regs.RQ(base))
	divisor := int64(int32(src))
	q := dividend / divisor
	r := dividend % divisor
	if q > 0x7FFFFFFF || q < -0x80000000 {
		c.divideErrorTrap()
		return
	}
	c.Regs.SetRR(base, uint32(q))
	c.Regs.SetRR(base+2, uint32(r))
	var bits uint16
	if q == 0 {
		bits |= flagZ
	}
	if q < 0 {
		bits |= flagS
	}
	c.setCond(bits)
}
