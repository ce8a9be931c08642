package z8000

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

// dumpState renders the CPU's register file for failure messages; plain
// t.Errorf hex dumps get unreadable once more than a couple of registers
// are involved in one scenario.
func dumpState(c *CPU) string {
	return spew.Sdump(c.Regs)
}

// TestScenarioAccumulate mirrors a short "load two operands, add them,
// stash the result" sequence: LD R0,#7; LD R1,#35; ADD R1,R0.
func TestScenarioAccumulate(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x2000)
	loadProgram(bus, 0x2000,
		0x2100, 0x0007, // LD R0,#7
		0x2101, 0x0023, // LD R1,#35
		0x8101, // ADD R1,R0
	)

	for i := 0; i < 3; i++ {
		cpu.Step()
	}

	assert.Equal(t, uint16(7), cpu.Regs.RW(0), "R0 unchanged by ADD\n%s", dumpState(cpu))
	assert.Equal(t, uint16(42), cpu.Regs.RW(1), "R1 should hold 7+35\n%s", dumpState(cpu))
	assert.Zero(t, cpu.FCW&flagZ, "sum is nonzero, Z should be clear")
}

// TestScenarioCountdownLoop exercises DJNZ driving a fixed-iteration
// countdown entirely through Step, the way a real embedder drives the CPU.
func TestScenarioCountdownLoop(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x2000)
	// R4 starts at 0 and R3 at 5; INC R4,#1 five times, decrementing the
	// loop counter in R3 each pass via DJNZ back to the top.
	loadProgram(bus, 0x2000,
		0xA940, // INC R4,#1 (dst=4, n-1=0 -> n=1)
		0xD403, // DJNZ R3,disp
		0xFFFA, // disp = -6 (back to 0x2000)
	)
	cpu.Regs.SetRW(3, 5)
	cpu.Regs.SetRW(4, 0)

	for i := 0; i < 5; i++ {
		cpu.Step() // INC
		cpu.Step() // DJNZ
	}

	assert.Equal(t, uint16(5), cpu.Regs.RW(4), "R4 should have been incremented 5 times\n%s", dumpState(cpu))
	assert.Equal(t, uint16(0), cpu.Regs.RW(3), "loop counter should reach zero\n%s", dumpState(cpu))
}

// TestScenarioCompareAndBranch exercises CP followed by a conditional JR.
func TestScenarioCompareAndBranch(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x2000)
	loadProgram(bus, 0x2000,
		0x2100, 0x000A, // LD R0,#10
		0x2200, 0x000A, // CP R0,#10
		0xD506, 0x0002, // JR EQ,+2
	)
	for i := 0; i < 3; i++ {
		cpu.Step()
	}

	assert.True(t, cpu.FCW&flagZ != 0, "CP of equal operands should set Z")
	assert.Equal(t, uint16(0x200E), cpu.PC, "equal branch should be taken\n%s", dumpState(cpu))
}
