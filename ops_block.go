package z8000

// Block instruction family: LDI/LDIR/LDD/LDDR (transfer), CPI/CPIR/
// CPD/CPDR (compare), INI/INIR/IND/INDR and OUTI/OTIR/OUTD/OTDR (I/O),
// each in word and byte width. Every instruction reads a 3-register
// extension word (srcOrPort<<12 | dstOrCmp<<8 | count<<4) and processes
// exactly one element per call; the "R" (repeating) mnemonics call
// continueBlock to re-enter the same instruction on the next Step until
// their terminating condition is met, rather than looping inside the
// handler, so interrupts can still be taken between elements.
func registerBlockOps() {
	registerLD_IR()
	registerCP_IR()
	registerIO_IR()
}

func blockRegs(c *CPU) (a, b, cnt, cc uint8) {
	ext := c.fetchPC()
	return uint8((ext >> 12) & 0xF), uint8((ext >> 8) & 0xF), uint8((ext >> 4) & 0xF), uint8(ext & 0xF)
}

func registerLD_IR() {
	ld := func(sz Size, step int32, repeat bool) opHandler {
		return func(c *CPU) {
			src, dst, cnt, _ := blockRegs(c)
			srcAddr := c.Regs.RW(int(src))
			dstAddr := c.Regs.RW(int(dst))
			val := c.readSizedData(sz, srcAddr)
			c.writeSizedData(sz, dstAddr, val)
			c.Regs.SetRW(int(src), uint16(int32(srcAddr)+step))
			c.Regs.SetRW(int(dst), uint16(int32(dstAddr)+step))
			count := c.Regs.RW(int(cnt)) - 1
			c.Regs.SetRW(int(cnt), count)

			var bits uint16
			if count == 0 {
				bits |= flagPV
			}
			c.setCond(bits)

			if repeat && count != 0 {
				c.continueBlock()
			}
			c.cycles += 8
		}
	}
	addOp(0xFFFF, 0xE100, ld(Word, 2, false))  // LDI
	addOp(0xFFFF, 0xE101, ld(Word, 2, true))   // LDIR
	addOp(0xFFFF, 0xE102, ld(Word, -2, false)) // LDD
	addOp(0xFFFF, 0xE103, ld(Word, -2, true))  // LDDR
	addOp(0xFFFF, 0xE104, ld(Byte, 1, false))  // LDIB
	addOp(0xFFFF, 0xE105, ld(Byte, 1, true))   // LDIRB
	addOp(0xFFFF, 0xE106, ld(Byte, -1, false)) // LDDB
	addOp(0xFFFF, 0xE107, ld(Byte, -1, true))  // LDDRB
}

func registerCP_IR() {
	cp := func(sz Size, step int32, repeat bool) opHandler {
		return func(c *CPU) {
			src, cmp, cnt, cc := blockRegs(c)
			srcAddr := c.Regs.RW(int(src))
			memVal := c.readSizedData(sz, srcAddr)
			cmpVal := uint32(c.Regs.RW(int(cmp)))
			if sz == Byte {
				cmpVal = uint32(c.Regs.RB(int(cmp)))
			}
			result := memVal - cmpVal
			bits := cmpFlags(memVal, cmpVal, result, sz)

			c.Regs.SetRW(int(src), uint16(int32(srcAddr)+step))
			count := c.Regs.RW(int(cnt)) - 1
			c.Regs.SetRW(int(cnt), count)

			bits &^= flagPV
			if count == 0 {
				bits |= flagPV
			}
			c.setCond(bits)

			matched := c.evalCondition(cc)
			more := count != 0 && !matched
			if repeat && more {
				c.continueBlock()
			}
			c.cycles += 8
		}
	}
	addOp(0xFFFF, 0xE108, cp(Word, 2, false))  // CPI
	addOp(0xFFFF, 0xE109, cp(Word, 2, true))   // CPIR
	addOp(0xFFFF, 0xE10A, cp(Word, -2, false)) // CPD
	addOp(0xFFFF, 0xE10B, cp(Word, -2, true))  // CPDR
	addOp(0xFFFF, 0xE10C, cp(Byte, 1, false))  // CPIB
	addOp(0xFFFF, 0xE10D, cp(Byte, 1, true))   // CPIRB
	addOp(0xFFFF, 0xE10E, cp(Byte, -1, false)) // CPDB
	addOp(0xFFFF, 0xE10F, cp(Byte, -1, true))  // CPDRB
}

func registerIO_IR() {
	in := func(sz Size, step int32, repeat bool) opHandler {
		return func(c *CPU) {
			portReg, dst, cnt, _ := blockRegs(c)
			port := c.Regs.RW(int(portReg))
			dstAddr := c.Regs.RW(int(dst))
			if sz == Byte {
				c.writeSizedData(Byte, dstAddr, uint32(c.bus.IOReadByte(port)))
			} else {
				c.writeSizedData(Word, dstAddr, uint32(c.bus.IOReadWord(port)))
			}
			c.Regs.SetRW(int(dst), uint16(int32(dstAddr)+step))
			count := c.Regs.RW(int(cnt)) - 1
			c.Regs.SetRW(int(cnt), count)

			var bits uint16
			if count == 0 {
				bits |= flagZ
			}
			c.setCond(bits)

			if repeat && count != 0 {
				c.continueBlock()
			}
			c.cycles += 10
		}
	}
	addOp(0xFFFF, 0xE110, in(Word, 2, false))  // INI
	addOp(0xFFFF, 0xE111, in(Word, 2, true))   // INIR
	addOp(0xFFFF, 0xE112, in(Word, -2, false)) // IND
	addOp(0xFFFF, 0xE113, in(Word, -2, true))  // INDR
	addOp(0xFFFF, 0xE114, in(Byte, 1, false))  // INIB
	addOp(0xFFFF, 0xE115, in(Byte, 1, true))   // INIRB
	addOp(0xFFFF, 0xE116, in(Byte, -1, false)) // INDB
	addOp(0xFFFF, 0xE117, in(Byte, -1, true))  // INDRB

	out := func(sz Size, step int32, repeat bool) opHandler {
		return func(c *CPU) {
			portReg, src, cnt, _ := blockRegs(c)
			port := c.Regs.RW(int(portReg))
			srcAddr := c.Regs.RW(int(src))
			if sz == Byte {
				c.bus.IOWriteByte(port, uint8(c.readSizedData(Byte, srcAddr)))
			} else {
				c.bus.IOWriteWord(port, uint16(c.readSizedData(Word, srcAddr)))
			}
			c.Regs.SetRW(int(src), uint16(int32(srcAddr)+step))
			count := c.Regs.RW(int(cnt)) - 1
			c.Regs.SetRW(int(cnt), count)

			var bits uint16
			if count == 0 {
				bits |= flagZ
			}
			c.setCond(bits)

			if repeat && count != 0 {
				c.continueBlock()
			}
			c.cycles += 10
		}
	}
	addOp(0xFFFF, 0xE118, out(Word, 2, false))  // OUTI
	addOp(0xFFFF, 0xE119, out(Word, 2, true))   // OTIR
	addOp(0xFFFF, 0xE11A, out(Word, -2, false)) // OUTD
	addOp(0xFFFF, 0xE11B, out(Word, -2, true))  // OTDR
	addOp(0xFFFF, 0xE11C, out(Byte, 1, false))  // OUTIB
	addOp(0xFFFF, 0xE11D, out(Byte, 1, true))   // OTIRB
	addOp(0xFFFF, 0xE11E, out(Byte, -1, false)) // OUTDB
	addOp(0xFFFF, 0xE11F, out(Byte, -1, true))  // OTDRB
}
