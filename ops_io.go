package z8000

// I/O family: IN/OUT (standard I/O space) in a direct-port and a
// register-indirect-port form, and SIN/SOUT (Special I/O space) in the
// register-indirect-port form only; each in word and byte width. None of
// these affect condition flags. Every form here
// is a fixed opcode word followed by an extension word whose nibbles
// carry the register fields, since a single free nibble in the opcode
// itself cannot hold both a data register and a port register.
func registerIOOps() {
	addOp(0xFFFF, 0xE0A0, func(c *CPU) { // IN Rd,@Rp (word, port in Rp)
		if !c.requireSystem() {
			return
		}
		ext := c.fetchPC()
		rd, rp := uint8((ext>>4)&0xF), uint8(ext&0xF)
		port := c.Regs.RW(int(rp))
		c.Regs.SetRW(int(rd), c.bus.IOReadWord(port))
		c.cycles += 10
	})
	addOp(0xFFFF, 0xE0A1, func(c *CPU) { // INB Rd,@Rp (byte, port in Rp)
		if !c.requireSystem() {
			return
		}
		ext := c.fetchPC()
		rd, rp := uint8((ext>>4)&0xF), uint8(ext&0xF)
		port := c.Regs.RW(int(rp))
		c.Regs.SetRB(int(rd), c.bus.IOReadByte(port))
		c.cycles += 10
	})
	addOp(0xFFFF, 0xE0A2, func(c *CPU) { // OUT @Rp,Rs (word, port in Rp)
		if !c.requireSystem() {
			return
		}
		ext := c.fetchPC()
		rp, rs := uint8((ext>>4)&0xF), uint8(ext&0xF)
		port := c.Regs.RW(int(rp))
		c.bus.IOWriteWord(port, c.Regs.RW(int(rs)))
		c.cycles += 10
	})
	addOp(0xFFFF, 0xE0A3, func(c *CPU) { // OUTB @Rp,Rs (byte, port in Rp)
		if !c.requireSystem() {
			return
		}
		ext := c.fetchPC()
		rp, rs := uint8((ext>>4)&0xF), uint8(ext&0xF)
		port := c.Regs.RW(int(rp))
		c.bus.IOWriteByte(port, c.Regs.RB(int(rs)))
		c.cycles += 10
	})
	addOp(0xFFFF, 0xE0A4, func(c *CPU) { // IN Rd,#port (word, direct port)
		if !c.requireSystem() {
			return
		}
		port := c.fetchPC()
		ext := c.fetchPC()
		rd := uint8(ext & 0xF)
		c.Regs.SetRW(int(rd), c.bus.IOReadWord(port))
		c.cycles += 10
	})
	addOp(0xFFFF, 0xE0A5, func(c *CPU) { // OUT #port,Rs (word, direct port)
		if !c.requireSystem() {
			return
		}
		port := c.fetchPC()
		ext := c.fetchPC()
		rs := uint8(ext & 0xF)
		c.bus.IOWriteWord(port, c.Regs.RW(int(rs)))
		c.cycles += 10
	})
	addOp(0xFFFF, 0xE0A6, func(c *CPU) { // INB Rd,#port (byte, direct port)
		if !c.requireSystem() {
			return
		}
		port := c.fetchPC()
		ext := c.fetchPC()
		rd := uint8(ext & 0xF)
		c.Regs.SetRB(int(rd), c.bus.IOReadByte(port))
		c.cycles += 10
	})
	addOp(0xFFFF, 0xE0A7, func(c *CPU) { // OUTB #port,Rs (byte, direct port)
		if !c.requireSystem() {
			return
		}
		port := c.fetchPC()
		ext := c.fetchPC()
		rs := uint8(ext & 0xF)
		c.bus.IOWriteByte(port, c.Regs.RB(int(rs)))
		c.cycles += 10
	})

	addOp(0xFFFF, 0xE0F0, func(c *CPU) { // SIN Rd,@Rp (word, Special I/O, port in Rp)
		if !c.requireSystem() {
			return
		}
		ext := c.fetchPC()
		rd, rp := uint8((ext>>4)&0xF), uint8(ext&0xF)
		port := c.Regs.RW(int(rp))
		c.Regs.SetRW(int(rd), c.bus.SpecialIOReadWord(port))
		c.cycles += 10
	})
	addOp(0xFFFF, 0xE0F1, func(c *CPU) { // SOUT @Rp,Rs (word, Special I/O)
		if !c.requireSystem() {
			return
		}
		ext := c.fetchPC()
		rp, rs := uint8((ext>>4)&0xF), uint8(ext&0xF)
		port := c.Regs.RW(int(rp))
		c.bus.SpecialIOWriteWord(port, c.Regs.RW(int(rs)))
		c.cycles += 10
	})
	addOp(0xFFFF, 0xE0F2, func(c *CPU) { // SINB Rd,@Rp (byte, Special I/O)
		if !c.requireSystem() {
			return
		}
		ext := c.fetchPC()
		rd, rp := uint8((ext>>4)&0xF), uint8(ext&0xF)
		port := c.Regs.RW(int(rp))
		c.Regs.SetRB(int(rd), c.bus.SpecialIOReadByte(port))
		c.cycles += 10
	})
	addOp(0xFFFF, 0xE0F3, func(c *CPU) { // SOUTB @Rp,Rs (byte, Special I/O)
		if !c.requireSystem() {
			return
		}
		ext := c.fetchPC()
		rp, rs := uint8((ext>>4)&0xF), uint8(ext&0xF)
		port := c.Regs.RW(int(rp))
		c.bus.SpecialIOWriteByte(port, c.Regs.RB(int(rs)))
		c.cycles += 10
	})
}
