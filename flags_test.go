package z8000

import "testing"

func TestAddFlagsCarryAndOverflow(t *testing.T) {
	// 0xFFFF + 0x0001 = 0x0000 (word): carry out, zero result, no signed overflow.
	bits := addFlags(0xFFFF, 0x0001, 0, 0x0000, Word)
	if bits&flagC == 0 {
		t.Error("expected C set")
	}
	if bits&flagZ == 0 {
		t.Error("expected Z set")
	}
	if bits&flagPV != 0 {
		t.Error("expected V clear")
	}
}

func TestAddFlagsSignedOverflow(t *testing.T) {
	// 0x7FFF + 0x0001 = 0x8000 (word): two positives producing a negative.
	bits := addFlags(0x7FFF, 0x0001, 0, 0x8000, Word)
	if bits&flagPV == 0 {
		t.Error("expected V set on signed overflow")
	}
	if bits&flagS == 0 {
		t.Error("expected S set")
	}
	if bits&flagC != 0 {
		t.Error("expected C clear")
	}
}

func TestSubFlagsBorrow(t *testing.T) {
	// 0x0000 - 0x0001 = 0xFFFF (word): borrow required.
	bits := subFlags(0x0000, 0x0001, 0, 0xFFFF, Word)
	if bits&flagC == 0 {
		t.Error("expected C (borrow) set")
	}
	if bits&flagZ != 0 {
		t.Error("expected Z clear")
	}
	if bits&flagDA == 0 {
		t.Error("expected DA set on any subtraction")
	}
}

func TestCmpFlagsDoesNotSetHOrDA(t *testing.T) {
	bits := cmpFlags(5, 5, 0, Word)
	if bits&flagH != 0 || bits&flagDA != 0 {
		t.Errorf("cmpFlags bits = %#04x, want H and DA clear", bits)
	}
	if bits&flagZ == 0 {
		t.Error("expected Z set for equal operands")
	}
}

func TestLogicalFlagsByteParity(t *testing.T) {
	bits := logicalFlags(0x03, Byte) // 0000_0011: two set bits, even parity
	if bits&flagPV == 0 {
		t.Error("expected P/V set for even parity byte result")
	}

	bits = logicalFlags(0x01, Byte) // odd parity
	if bits&flagPV != 0 {
		t.Error("expected P/V clear for odd parity byte result")
	}
}

func TestLogicalFlagsWordNeverSetsParity(t *testing.T) {
	bits := logicalFlags(0x0003, Word)
	if bits&flagPV != 0 {
		t.Error("expected word logical ops to never set P/V")
	}
}

func TestIncDecFlagsOverflow(t *testing.T) {
	bits := incDecFlags(0x7FFF, 0x8000, true, Word)
	if bits&flagPV == 0 {
		t.Error("expected V set when INC overflows the positive range")
	}

	bits = incDecFlags(0x8000, 0x7FFF, false, Word)
	if bits&flagPV == 0 {
		t.Error("expected V set when DEC overflows the negative range")
	}
}

func TestNegFlagsZeroOperand(t *testing.T) {
	bits := negFlags(0, 0, Word)
	if bits&flagC != 0 {
		t.Error("expected C clear when negating zero")
	}
	if bits&flagZ == 0 {
		t.Error("expected Z set when negating zero")
	}
}

func TestNegFlagsMostNegative(t *testing.T) {
	bits := negFlags(0x8000, 0x8000, Word)
	if bits&flagPV == 0 {
		t.Error("expected V set when negating the most-negative word value")
	}
}

func TestSetCondPreservesModeBits(t *testing.T) {
	c := &CPU{FCW: flagSYS | flagVIE}
	c.setCond(flagZ | flagC)
	if c.FCW&flagSYS == 0 || c.FCW&flagVIE == 0 {
		t.Errorf("setCond clobbered mode bits: FCW=%#04x", c.FCW)
	}
	if c.FCW&flagZ == 0 || c.FCW&flagC == 0 {
		t.Errorf("setCond did not apply condition bits: FCW=%#04x", c.FCW)
	}
}
