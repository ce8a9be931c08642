package z8000

// Data-movement family opcode layout. None of LD/LDB/LDL/LDA/LDK/LDR
// affect condition flags. Opcode byte0 (the high byte of the
// instruction word) selects mnemonic+size+mode; byte1 packs the
// register fields not already consumed by the addressing-mode resolver.
// The exact byte assignments are this implementation's own encoding,
// chosen to match the worked examples wherever one pins a concrete byte
// sequence (LD Rd,#imm and the register-register ADD/INC forms used
// there).
func registerMoveOps() {
	registerLDWord()
	registerLDByte()
	registerLDLong()
	registerLDA()
	registerLDK()
	registerLDR()
	registerPushPop()
}

// --- LD (word) ---

func registerLDWord() {
	// 0x10 LD Rd,@Rs ; byte1 = src<<4 | dst
	addOp(0xFF00, 0x1000, func(c *CPU) {
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.Regs.SetRW(int(dst), uint16(op.read(c, Word)))
		c.cycles += 7
	})
	// 0x11 LD @Rd,Rs ; byte1 = dst<<4 | src
	addOp(0xFF00, 0x1100, func(c *CPU) {
		dst, src := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(dst))
		op.write(c, Word, uint32(c.Regs.RW(int(src))))
		c.cycles += 7
	})
	// 0x12 LD Rd,addr (DA) ; byte1 = dst
	addOp(0xFFF0, 0x1200, func(c *CPU) {
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.Regs.SetRW(int(dst), uint16(op.read(c, Word)))
		c.cycles += 8
	})
	// 0x13 LD addr,Rs (DA store) ; byte1 = src
	addOp(0xFFF0, 0x1300, func(c *CPU) {
		src := c.ir & 0xF
		op := c.resolveDA()
		op.write(c, Word, uint32(c.Regs.RW(int(src))))
		c.cycles += 8
	})
	// 0x14 LD Rd,addr(Rx) (X) ; byte1 = Rx<<4 | dst
	addOp(0xFF00, 0x1400, func(c *CPU) {
		rx, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveX(uint8(rx))
		c.Regs.SetRW(int(dst), uint16(op.read(c, Word)))
		c.cycles += 9
	})
	// 0x15 LD addr(Rx),Rs (X store) ; byte1 = Rx<<4 | src
	addOp(0xFF00, 0x1500, func(c *CPU) {
		rx, src := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveX(uint8(rx))
		op.write(c, Word, uint32(c.Regs.RW(int(src))))
		c.cycles += 9
	})
	// 0x16 LD Rd,disp(Rs) (BA) ; byte1 = Rs<<4 | dst
	addOp(0xFF00, 0x1600, func(c *CPU) {
		rs, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveBA(uint8(rs))
		c.Regs.SetRW(int(dst), uint16(op.read(c, Word)))
		c.cycles += 9
	})
	// 0x17 LD disp(Rs),Rd (BA store) ; byte1 = Rs<<4 | src
	addOp(0xFF00, 0x1700, func(c *CPU) {
		rs, src := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveBA(uint8(rs))
		op.write(c, Word, uint32(c.Regs.RW(int(src))))
		c.cycles += 9
	})
	// 0x18 LD Rd,Rs(Rx) (BX) ; byte1 = Rs<<4 | dst, ext low nibble = Rx
	addOp(0xFF00, 0x1800, func(c *CPU) {
		rs, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveBX(uint8(rs))
		c.Regs.SetRW(int(dst), uint16(op.read(c, Word)))
		c.cycles += 10
	})
	// 0x19 LD Rs(Rx),Rd (BX store) ; byte1 = Rs<<4 | src
	addOp(0xFF00, 0x1900, func(c *CPU) {
		rs, src := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveBX(uint8(rs))
		op.write(c, Word, uint32(c.Regs.RW(int(src))))
		c.cycles += 10
	})
	// 0x1A LD Rd,Rs (register-register) ; byte1 = src<<4 | dst
	addOp(0xFF00, 0x1A00, func(c *CPU) {
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.Regs.SetRW(int(dst), c.Regs.RW(int(src)))
		c.cycles += 2
	})
	// 0x21 LD Rd,#imm16 ; byte1 = 0000 | dst
	addOp(0xFFF0, 0x2100, func(c *CPU) {
		dst := c.ir & 0xF
		op := c.resolveIM(Word)
		c.Regs.SetRW(int(dst), uint16(op.read(c, Word)))
		c.cycles += 7
	})
}

// --- LDB (byte) ---

func registerLDByte() {
	// 0xCnii: compact single-word immediate form.
	// byte0 high nibble = 0xC, low nibble = dst register; byte1 = imm8.
	addOp(0xF000, 0xC000, func(c *CPU) {
		dst := (c.ir >> 8) & 0xF
		imm := uint8(c.ir & 0xFF)
		c.Regs.SetRB(int(dst), imm)
		c.cycles += 7
	})
	addOp(0xFF00, 0x5000, func(c *CPU) {
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(src))
		c.Regs.SetRB(int(dst), uint8(op.read(c, Byte)))
		c.cycles += 7
	})
	addOp(0xFF00, 0x5100, func(c *CPU) {
		dst, src := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveIR(uint8(dst))
		op.write(c, Byte, uint32(c.Regs.RB(int(src))))
		c.cycles += 7
	})
	addOp(0xFFF0, 0x5200, func(c *CPU) {
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.Regs.SetRB(int(dst), uint8(op.read(c, Byte)))
		c.cycles += 8
	})
	addOp(0xFFF0, 0x5300, func(c *CPU) {
		src := c.ir & 0xF
		op := c.resolveDA()
		op.write(c, Byte, uint32(c.Regs.RB(int(src))))
		c.cycles += 8
	})
	addOp(0xFF00, 0x5400, func(c *CPU) {
		rx, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveX(uint8(rx))
		c.Regs.SetRB(int(dst), uint8(op.read(c, Byte)))
		c.cycles += 9
	})
	addOp(0xFF00, 0x5500, func(c *CPU) {
		rx, src := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveX(uint8(rx))
		op.write(c, Byte, uint32(c.Regs.RB(int(src))))
		c.cycles += 9
	})
	// 0x5A LDB Rd,Rs (register-register byte move)
	addOp(0xFF00, 0x5A00, func(c *CPU) {
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		c.Regs.SetRB(int(dst), c.Regs.RB(int(src)))
		c.cycles += 2
	})
}

// --- LDL (long) ---

func registerLDLong() {
	addOp(0xFF00, 0x6000, func(c *CPU) {
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		op := c.resolveIR(uint8(src))
		c.Regs.SetRR(int(dst), op.read(c, Long))
		c.cycles += 11
	})
	addOp(0xFF00, 0x6100, func(c *CPU) {
		dst, src := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(src)) {
			return
		}
		op := c.resolveIR(uint8(dst))
		op.write(c, Long, c.Regs.RR(int(src)))
		c.cycles += 11
	})
	addOp(0xFFF0, 0x6200, func(c *CPU) {
		dst := c.ir & 0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		op := c.resolveDA()
		c.Regs.SetRR(int(dst), op.read(c, Long))
		c.cycles += 12
	})
	addOp(0xFFF0, 0x6300, func(c *CPU) {
		src := c.ir & 0xF
		if !c.checkLongReg(uint8(src)) {
			return
		}
		op := c.resolveDA()
		op.write(c, Long, c.Regs.RR(int(src)))
		c.cycles += 12
	})
	addOp(0xFF00, 0x6A00, func(c *CPU) {
		src, dst := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(dst)) || !c.checkLongReg(uint8(src)) {
			return
		}
		c.Regs.SetRR(int(dst), c.Regs.RR(int(src)))
		c.cycles += 4
	})
	addOp(0xFFF0, 0x6B00, func(c *CPU) {
		dst := c.ir & 0xF
		if !c.checkLongReg(uint8(dst)) {
			return
		}
		imm := c.fetchPCLong()
		c.Regs.SetRR(int(dst), imm)
		c.cycles += 12
	})
}

// --- LDA: load effective address, no memory read ---

func registerLDA() {
	addOp(0xFFF0, 0x1C00, func(c *CPU) { // LDA Rd,addr
		dst := c.ir & 0xF
		op := c.resolveDA()
		c.Regs.SetRW(int(dst), op.Addr())
		c.cycles += 7
	})
	addOp(0xFF00, 0x1D00, func(c *CPU) { // LDA Rd,addr(Rx)
		rx, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveX(uint8(rx))
		c.Regs.SetRW(int(dst), op.Addr())
		c.cycles += 8
	})
	addOp(0xFF00, 0x1E00, func(c *CPU) { // LDA Rd,disp(Rs)
		rs, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveBA(uint8(rs))
		c.Regs.SetRW(int(dst), op.Addr())
		c.cycles += 8
	})
	addOp(0xFF00, 0x1F00, func(c *CPU) { // LDA Rd,Rs(Rx)
		rs, dst := (c.ir>>4)&0xF, c.ir&0xF
		op := c.resolveBX(uint8(rs))
		c.Regs.SetRW(int(dst), op.Addr())
		c.cycles += 9
	})
}

// --- LDK: 4-bit immediate 0..15 ---

func registerLDK() {
	addOp(0xFF00, 0xB000, func(c *CPU) {
		dst := (c.ir >> 4) & 0xF
		imm := c.ir & 0xF
		c.Regs.SetRW(int(dst), imm)
		c.cycles += 2
	})
}

// --- LDR: PC-relative load/store ---

func registerLDR() {
	addOp(0xFFF0, 0x2D00, func(c *CPU) { // LDR Rd,addr (PC-relative load)
		dst := c.ir & 0xF
		disp := int16(c.fetchPC())
		addr := uint16(int32(c.PC) + int32(disp))
		val := c.progReadWord(addr)
		c.Regs.SetRW(int(dst), val)
		c.cycles += 9
	})
	addOp(0xFFF0, 0x2E00, func(c *CPU) { // LDR addr,Rs (PC-relative store)
		src := c.ir & 0xF
		disp := int16(c.fetchPC())
		addr := uint16(int32(c.PC) + int32(disp))
		c.progWriteWord(addr, c.Regs.RW(int(src)))
		c.cycles += 9
	})
}

// --- PUSH/POP/PUSHL/POPL ---

func registerPushPop() {
	// 0x90 PUSH @Rd,Rs: pre-decrement Rd by the operand size, store Rs there.
	addOp(0xFF00, 0x9000, func(c *CPU) {
		rd, rs := (c.ir>>4)&0xF, c.ir&0xF
		addr := c.Regs.RW(int(rd)) - 2
		c.Regs.SetRW(int(rd), addr)
		c.progWriteWord(addr, c.Regs.RW(int(rs)))
		c.cycles += 8
	})
	// 0x91 POP Rd,@Rs: load from Rs, then post-increment Rs by 2.
	addOp(0xFF00, 0x9100, func(c *CPU) {
		rs, rd := (c.ir>>4)&0xF, c.ir&0xF
		addr := c.Regs.RW(int(rs))
		val := c.progReadWord(addr)
		c.Regs.SetRW(int(rs), addr+2)
		c.Regs.SetRW(int(rd), val)
		c.cycles += 8
	})
	addOp(0xFF00, 0x9200, func(c *CPU) { // PUSHL @Rd,RRs
		rd, rrs := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(rrs)) {
			return
		}
		addr := c.Regs.RW(int(rd)) - 4
		c.Regs.SetRW(int(rd), addr)
		c.progWriteLong(addr, c.Regs.RR(int(rrs)))
		c.cycles += 12
	})
	addOp(0xFF00, 0x9300, func(c *CPU) { // POPL RRd,@Rs
		rs, rrd := (c.ir>>4)&0xF, c.ir&0xF
		if !c.checkLongReg(uint8(rrd)) {
			return
		}
		addr := c.Regs.RW(int(rs))
		val := c.progReadLong(addr)
		c.Regs.SetRW(int(rs), addr+4)
		c.Regs.SetRR(int(rrd), val)
		c.cycles += 12
	})
}
