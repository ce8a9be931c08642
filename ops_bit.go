package z8000

// Bit family: BIT, SET, RES, each in an immediate-bit-number form and a
// register-selected-bit form. Bit position b selects bit b of the
// operand, b=0 the least significant. BIT only affects Z (set when the
// tested bit is 0); SET/RES leave all flags unaffected.
func registerBitOps() {
	registerBIT()
	registerSETRES()
}

func bitTest(v uint32, bit uint) bool {
	return v&(1<<bit) != 0
}

func registerBIT() {
	addOp(0xFFF0, 0x7000, func(c *CPU) { // BIT Rd,#bit (word)
		dst := c.ir & 0xF
		ext := c.fetchPC()
		bit := uint(ext & 0xF)
		v := uint32(c.Regs.RW(int(dst)))
		c.setBitZ(!bitTest(v, bit))
		c.cycles += 7
	})
	addOp(0xFFF0, 0x7100, func(c *CPU) { // BITB Rd,#bit (byte)
		dst := c.ir & 0xF
		ext := c.fetchPC()
		bit := uint(ext & 0x7)
		v := uint32(c.Regs.RB(int(dst)))
		c.setBitZ(!bitTest(v, bit))
		c.cycles += 7
	})
	addOp(0xFF00, 0x7200, func(c *CPU) { // BIT Rd,Rb (word, register bit number)
		rb, dst := (c.ir>>4)&0xF, c.ir&0xF
		bit := uint(c.Regs.RW(int(rb)) & 0xF)
		v := uint32(c.Regs.RW(int(dst)))
		c.setBitZ(!bitTest(v, bit))
		c.cycles += 7
	})
	addOp(0xFF00, 0x7300, func(c *CPU) { // BITB Rd,Rb (byte, register bit number)
		rb, dst := (c.ir>>4)&0xF, c.ir&0xF
		bit := uint(c.Regs.RW(int(rb)) & 0x7)
		v := uint32(c.Regs.RB(int(dst)))
		c.setBitZ(!bitTest(v, bit))
		c.cycles += 7
	})
}

// setBitZ sets Z to the (already-inverted) tested-bit sense, leaving
// every other condition bit untouched.
func (c *CPU) setBitZ(bitClear bool) {
	if bitClear {
		c.FCW |= flagZ
	} else {
		c.FCW &^= flagZ
	}
}

func registerSETRES() {
	addOp(0xFFF0, 0x7400, func(c *CPU) { // SET Rd,#bit (word)
		dst := c.ir & 0xF
		ext := c.fetchPC()
		bit := uint(ext & 0xF)
		v := uint32(c.Regs.RW(int(dst))) | (1 << bit)
		c.Regs.SetRW(int(dst), uint16(v))
		c.cycles += 7
	})
	addOp(0xFFF0, 0x7500, func(c *CPU) { // SETB Rd,#bit (byte)
		dst := c.ir & 0xF
		ext := c.fetchPC()
		bit := uint(ext & 0x7)
		v := uint32(c.Regs.RB(int(dst))) | (1 << bit)
		c.Regs.SetRB(int(dst), uint8(v))
		c.cycles += 7
	})
	addOp(0xFFF0, 0x7600, func(c *CPU) { // RES Rd,#bit (word)
		dst := c.ir & 0xF
		ext := c.fetchPC()
		bit := uint(ext & 0xF)
		v := uint32(c.Regs.RW(int(dst))) &^ (1 << bit)
		c.Regs.SetRW(int(dst), uint16(v))
		c.cycles += 7
	})
	addOp(0xFFF0, 0x7700, func(c *CPU) { // RESB Rd,#bit (byte)
		dst := c.ir & 0xF
		ext := c.fetchPC()
		bit := uint(ext & 0x7)
		v := uint32(c.Regs.RB(int(dst))) &^ (1 << bit)
		c.Regs.SetRB(int(dst), uint8(v))
		c.cycles += 7
	})
	addOp(0xFF00, 0x7800, func(c *CPU) { // SET Rd,Rb (word, register bit number)
		rb, dst := (c.ir>>4)&0xF, c.ir&0xF
		bit := uint(c.Regs.RW(int(rb)) & 0xF)
		v := uint32(c.Regs.RW(int(dst))) | (1 << bit)
		c.Regs.SetRW(int(dst), uint16(v))
		c.cycles += 7
	})
	addOp(0xFF00, 0x7900, func(c *CPU) { // RES Rd,Rb (word, register bit number)
		rb, dst := (c.ir>>4)&0xF, c.ir&0xF
		bit := uint(c.Regs.RW(int(rb)) & 0xF)
		v := uint32(c.Regs.RW(int(dst))) &^ (1 << bit)
		c.Regs.SetRW(int(dst), uint16(v))
		c.cycles += 7
	})
}
