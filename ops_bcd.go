package z8000

// registerBcdOps wires the decimal-adjust instruction. DAB corrects the
// packed-BCD byte left behind by a preceding ADD/ADC/SUB/SBC so that
// each nibble again holds a valid decimal digit.
func registerBcdOps() {
	addOp(0xFFF0, 0x3500, func(c *CPU) { // DAB Rd
		rd := uint8(c.ir & 0xF)
		v := c.Regs.RB(int(rd))
		result, carry := dabAdjust(v, c.FCW&flagC != 0, c.FCW&flagH != 0, c.FCW&flagDA != 0)
		c.Regs.SetRB(int(rd), result)

		bits := c.FCW & flagDA // DAB never changes the direction flag it consults
		if result == 0 {
			bits |= flagZ
		}
		if result&0x80 != 0 {
			bits |= flagS
		}
		if parity(result) {
			bits |= flagPV
		}
		if carry {
			bits |= flagC
		}
		c.setCond(bits)

		c.cycles += 8
	})
}

// dabAdjust applies the Z8000 decimal-adjust correction table: da
// selects whether the byte last resulted from an addition (false) or a
// subtraction (true), and the returned carry replaces the caller's C.
func dabAdjust(v uint8, carryIn, halfIn, da bool) (result uint8, carryOut bool) {
	hi := v >> 4
	lo := v & 0xF

	if !da {
		switch {
		case !carryIn && !halfIn && hi <= 9 && lo <= 9:
			return v, false
		case !carryIn && halfIn && hi <= 9 && lo <= 8:
			return v + 0x06, false
		case !carryIn && !halfIn && hi <= 8 && lo >= 0xA:
			return v + 0x06, false
		case !carryIn && !halfIn && hi >= 0xA && lo <= 9:
			return v + 0x60, true
		case !carryIn && !halfIn && hi >= 0x9 && lo >= 0xA:
			return v + 0x66, true
		case !carryIn && halfIn && hi >= 0xA && lo <= 8:
			return v + 0x66, true
		case carryIn && !halfIn && lo <= 9:
			return v + 0x60, true
		case carryIn && halfIn && lo <= 8:
			return v + 0x66, true
		default:
			return v, carryIn
		}
	}

	switch {
	case !carryIn && !halfIn:
		return v, false
	case !carryIn && halfIn:
		return v - 0x06, false
	case carryIn && !halfIn:
		return v - 0x60, true
	default: // carryIn && halfIn
		return v - 0x66, true
	}
}
