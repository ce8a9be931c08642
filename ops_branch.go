package z8000

// Control-transfer family: JP, JR, CALL, CALR, RET, DJNZ. Every
// conditional form's low nibble carries the condition code evaluated
// via evalCondition.
func registerBranchOps() {
	addOp(0xFFF0, 0xD000, func(c *CPU) { // JP cc,addr
		cc := uint8(c.ir & 0xF)
		addr := c.fetchPC()
		if c.evalCondition(cc) {
			c.PC = addr
		}
		c.cycles += 7
	})
	addOp(0xFFFF, 0xD100, func(c *CPU) { // CALL addr
		addr := c.fetchPC()
		c.pushWord(c.PC)
		c.PC = addr
		c.cycles += 10
	})
	addOp(0xFFF0, 0xD200, func(c *CPU) { // CALL @Rd
		reg := uint8(c.ir & 0xF)
		if reg == 0 {
			c.extendedInstructionTrap()
			return
		}
		addr := c.Regs.RW(int(reg))
		c.pushWord(c.PC)
		c.PC = addr
		c.cycles += 9
	})
	addOp(0xFFF0, 0xD300, func(c *CPU) { // RET cc
		cc := uint8(c.ir & 0xF)
		if c.evalCondition(cc) {
			c.PC = c.popWord()
		}
		c.cycles += 10
	})
	addOp(0xFFF0, 0xD400, func(c *CPU) { // DJNZ Rd,disp
		reg := uint8(c.ir & 0xF)
		disp := int8(c.fetchPCByte())
		v := c.Regs.RW(int(reg)) - 1
		c.Regs.SetRW(int(reg), v)
		if v != 0 {
			c.PC = uint16(int32(c.PC) + int32(disp))
		}
		c.cycles += 11
	})
	addOp(0xFFF0, 0xD500, func(c *CPU) { // JR cc,disp
		cc := uint8(c.ir & 0xF)
		disp := int8(c.fetchPCByte())
		if c.evalCondition(cc) {
			c.PC = uint16(int32(c.PC) + int32(disp))
		}
		c.cycles += 6
	})
	addOp(0xFFFF, 0xD600, func(c *CPU) { // CALR disp
		disp := int16(c.fetchPC())
		c.pushWord(c.PC)
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.cycles += 10
	})
}
