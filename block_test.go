package z8000

import "testing"

func TestLDIRCopiesBlock(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x2000)
	// LDIR: src=R1, dst=R2, count=R3 (word transfer).
	loadProgram(bus, 0x2000, 0xE101, 0x1230)
	cpu.Regs.SetRW(1, 0x5000)
	cpu.Regs.SetRW(2, 0x6000)
	cpu.Regs.SetRW(3, 3)
	for i, v := range []uint16{0xAAAA, 0xBBBB, 0xCCCC} {
		writeWord(bus, 0x5000+uint16(2*i), v)
	}

	for cpu.Regs.RW(3) != 0 {
		cpu.PC = 0x2000
		cpu.Step()
	}

	for i, want := range []uint16{0xAAAA, 0xBBBB, 0xCCCC} {
		if got := bus.ReadWord(0x6000 + uint16(2*i)); got != want {
			t.Errorf("dst word %d = %#04x, want %#04x", i, got, want)
		}
	}
	if cpu.Regs.RW(1) != 0x5006 || cpu.Regs.RW(2) != 0x6006 {
		t.Errorf("pointers = %#04x/%#04x, want 0x5006/0x6006", cpu.Regs.RW(1), cpu.Regs.RW(2))
	}
}

func TestLDISingleStepDoesNotRepeat(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x2000)
	// LDI (non-repeating): one element per Step, no rewind.
	loadProgram(bus, 0x2000, 0xE100, 0x1230)
	cpu.Regs.SetRW(1, 0x5000)
	cpu.Regs.SetRW(2, 0x6000)
	cpu.Regs.SetRW(3, 5)
	writeWord(bus, 0x5000, 0x1234)

	cpu.Step()

	if cpu.PC != 0x2004 {
		t.Errorf("PC = %#04x, want 0x2004 (LDI must not rewind)", cpu.PC)
	}
	if got := bus.ReadWord(0x6000); got != 0x1234 {
		t.Errorf("dst = %#04x, want 0x1234", got)
	}
	if cpu.Regs.RW(3) != 4 {
		t.Errorf("count = %d, want 4", cpu.Regs.RW(3))
	}
}

func TestCPIRStopsOnMatch(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x2000)
	// CPIR: src=R1, cmp=R2, count=R3, cc=EQ.
	loadProgram(bus, 0x2000, 0xE109, 0x1236)
	cpu.Regs.SetRW(1, 0x5000)
	cpu.Regs.SetRW(2, 0x42)
	cpu.Regs.SetRW(3, 10)
	writeWord(bus, 0x5000, 0x10)
	writeWord(bus, 0x5002, 0x42)
	writeWord(bus, 0x5004, 0x99)

	for i := 0; i < 10; i++ {
		cpu.PC = 0x2000
		cpu.Step()
		if cpu.FCW&flagZ != 0 {
			break
		}
	}

	if cpu.FCW&flagZ == 0 {
		t.Fatal("expected Z set once a matching element was found")
	}
	if cpu.Regs.RW(1) != 0x5004 {
		t.Errorf("src pointer = %#04x, want 0x5004 (stopped after the match)", cpu.Regs.RW(1))
	}
	if cpu.PC != 0x2004 {
		t.Errorf("PC = %#04x, want 0x2004 (CPIR must not rewind once EQ matches)", cpu.PC)
	}
}
