package z8000

import "testing"

func TestResetLoadsVector(t *testing.T) {
	bus := &testBus{}
	writeWord(bus, 2, 0x1234) // reset FCW
	writeWord(bus, 4, 0x8000) // reset PC
	cpu := New(bus)

	if cpu.FCW != 0x1234 {
		t.Errorf("FCW = %#04x, want 0x1234", cpu.FCW)
	}
	if cpu.PC != 0x8000 {
		t.Errorf("PC = %#04x, want 0x8000", cpu.PC)
	}
}

func TestStepNOP(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x1000)
	loadProgram(bus, 0x1000, 0x0000)

	cycles := cpu.Step()
	if cpu.PC != 0x1002 {
		t.Errorf("PC = %#04x, want 0x1002", cpu.PC)
	}
	if cycles != 3 {
		t.Errorf("cycles = %d, want 3", cycles)
	}
}

func TestStepHALT(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x1000)
	loadProgram(bus, 0x1000, 0x0001)
	cpu.FCW |= flagSYS // HALT is privileged

	cpu.Step()
	if !cpu.Halted() {
		t.Fatal("expected CPU to be halted after HALT")
	}

	before := cpu.Cycles()
	cpu.Step()
	if cpu.Cycles() == before {
		t.Error("expected cycle counter to keep advancing while halted")
	}
}

func TestAddRegReg(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x1000)
	loadProgram(bus, 0x1000, 0x8101) // ADD R1,R0 (src=R0 in bits 4-7, dst=R1 in bits 0-3)
	cpu.Regs.SetRW(0, 5)
	cpu.Regs.SetRW(1, 10)

	cpu.Step()
	if got := cpu.Regs.RW(1); got != 15 {
		t.Errorf("R1 = %d, want 15", got)
	}
	if cpu.FCW&flagZ != 0 {
		t.Error("expected Z clear for a nonzero sum")
	}
}

func TestAddSetsZeroFlag(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x1000)
	loadProgram(bus, 0x1000, 0x8101)
	cpu.Regs.SetRW(0, 0)
	cpu.Regs.SetRW(1, 0)

	cpu.Step()
	if cpu.FCW&flagZ == 0 {
		t.Error("expected Z set for a zero sum")
	}
}

func TestLDImmediate(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x1000)
	loadProgram(bus, 0x1000, 0x2103, 0xBEEF) // LD R3,#0xBEEF
	cpu.Step()
	if got := cpu.Regs.RW(3); got != 0xBEEF {
		t.Errorf("R3 = %#04x, want 0xbeef", got)
	}
}

func TestJRAlways(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x1000)
	// JR T,#4: opcode 0xD500 | cc(T=8) in low nibble, disp in the low byte of the next word.
	loadProgram(bus, 0x1000, 0xD508, 0x0004)
	cpu.Step()
	if cpu.PC != 0x1004+4 {
		t.Errorf("PC = %#04x, want %#04x", cpu.PC, 0x1004+4)
	}
}

func TestDJNZLoop(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x1000)
	// DJNZ R2,-2: decrements R2, branches back while nonzero.
	loadProgram(bus, 0x1000, 0xD402, 0xFE)
	cpu.Regs.SetRW(2, 3)

	for i := 0; i < 3; i++ {
		cpu.PC = 0x1000
		cpu.Step()
	}
	if got := cpu.Regs.RW(2); got != 0 {
		t.Errorf("R2 = %d, want 0 after 3 iterations", got)
	}
}

func TestPrivilegedInstructionTrapsFromNormalMode(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x1000)
	writeWord(bus, 2+4*2, 0x0000) // privileged-trap FCW
	writeWord(bus, 4+4*2, 0x9000) // privileged-trap PC
	loadProgram(bus, 0x1000, 0xE080) // RESET, privileged

	cpu.Step()
	if cpu.PC != 0x9000 {
		t.Errorf("PC = %#04x, want 0x9000 (privileged trap vector)", cpu.PC)
	}
	if !cpu.system() {
		t.Error("expected system mode after trap entry")
	}
}

func TestNMIEntersTrap(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x1000)
	writeWord(bus, 2+4*5, 0x0000) // NMI trap FCW
	writeWord(bus, 4+4*5, 0xA000) // NMI trap PC
	loadProgram(bus, 0x1000, 0x0000)

	cpu.SetInputLine(LineNMI, Assert)
	cpu.Step() // enters the NMI trap, then executes the NOP at the vector

	if cpu.PC != 0xA002 {
		t.Errorf("PC = %#04x, want 0xa002 (NOP at NMI vector 0xa000 executed)", cpu.PC)
	}
}

func TestVectoredInterruptRequiresVIE(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x1000)
	loadProgram(bus, 0x1000, 0x0000)

	cpu.SetInputLine(LineVI, Assert)
	cpu.Step() // VIE clear: no trap, plain NOP executes
	if cpu.PC != 0x1002 {
		t.Errorf("PC = %#04x, want 0x1002 (VI ignored with VIE clear)", cpu.PC)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x1000)
	cpu.Regs.SetRW(5, 0xBEEF)
	cpu.PC = 0x4242
	cpu.FCW = 0x00E0

	buf := make([]byte, cpu.SerializeSize())
	if err := cpu.Serialize(buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	restored := &CPU{bus: &testBus{}}
	if err := restored.Deserialize(buf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if restored.PC != cpu.PC || restored.FCW != cpu.FCW {
		t.Errorf("restored PC/FCW = %#04x/%#04x, want %#04x/%#04x", restored.PC, restored.FCW, cpu.PC, cpu.FCW)
	}
	if restored.Regs.RW(5) != 0xBEEF {
		t.Errorf("restored R5 = %#04x, want 0xbeef", restored.Regs.RW(5))
	}
}
