// Package z8000 implements a Zilog Z8002 (non-segmented Z8000) CPU
// emulator: an instruction-accurate interpreter executing Z8000 machine
// code against a simulated 16-bit address space and three logical I/O
// spaces (program, data, and port).
//
// A Bus the embedder supplies carries all memory and I/O traffic; the
// CPU itself owns only its register file and control state, dispatching
// through a 65536-entry table built once at init time.
package z8000

import "log"

// Registers is defined in regs.go; CPU embeds the programmer-visible
// register file plus the control-word and control-state fields that
// round out the machine's externally visible state.
type CPU struct {
	Regs Registers

	PC      uint16
	FCW     uint16
	PSAP    uint16 // Program Status Area Pointer; base of the trap/interrupt vector table
	Refresh uint16 // refresh register; low bits increment per fetch, high bit enables refresh

	bus      Bus
	cycleBus CycleBus // non-nil when bus implements CycleBus
	cycles   uint64

	ir     uint16 // first word of the instruction currently executing
	instrPC uint16 // PC at the start of the currently executing instruction

	halted  bool // HALT executed; fetch suspended until an interrupt is serviced
	stopReq bool // external Stop() request, honored at the next instruction boundary

	nmiPending bool // edge-triggered, latches until serviced
	nviLine    bool // level-sensitive
	viLine     bool // level-sensitive
	viVector   uint8

	// blockContinue is set by a block-instruction handler that has not
	// yet terminated; Step rewinds PC to instrPC so the next fetch
	// re-executes the same instruction.
	blockContinue bool

	// mi is the memory-initialization line. Reset clears it and
	// Serialize/Deserialize carry it; nothing else sets or reads it, so
	// Reset behaves the same whether or not it was set.
	mi bool
}

// InputLine identifies one of the three interrupt lines a CPU exposes to
// its embedder.
type InputLine int

const (
	LineNMI InputLine = iota
	LineNVI
	LineVI
)

// LineState is the assertion state passed to SetInputLine.
type LineState int

const (
	Clear LineState = iota
	Assert
)

// New creates a CPU wired to the given bus and performs a hardware reset.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.cycleBus, _ = bus.(CycleBus)
	c.Reset()
	return c
}

// Reset performs a hardware reset: sets PSAP to 0, loads FCW and PC from
// the reset vector (PSAP+2 and PSAP+4), and clears pending interrupt
// lines, halt, and the refresh register.
func (c *CPU) Reset() {
	c.cycleBus, _ = c.bus.(CycleBus)
	c.PSAP = 0
	c.FCW = c.progReadWord(c.PSAP + 2)
	c.PC = c.progReadWord(c.PSAP + 4)
	c.Refresh = 0
	c.cycles = 0
	c.halted = false
	c.stopReq = false
	c.nmiPending = false
	c.nviLine = false
	c.viLine = false
	c.blockContinue = false
	c.mi = false
}

// Stop requests that the run loop exit at the next instruction boundary.
// It never interrupts an in-progress instruction or block-instruction
// iteration.
func (c *CPU) Stop() {
	c.stopReq = true
}

// Halted reports whether the CPU is suspended in the HALT state.
func (c *CPU) Halted() bool {
	return c.halted
}

// Cycles returns the total (approximate) cycle count since the last reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// SetInputLine asserts or clears one of the CPU's interrupt lines. NMI is
// edge-sensitive: asserting it latches a pending NMI that persists until
// serviced, regardless of later Clear calls. NVI and VI are
// level-sensitive: their pending state tracks the most recent call and is
// sampled at the next instruction boundary.
func (c *CPU) SetInputLine(line InputLine, state LineState) {
	switch line {
	case LineNMI:
		if state == Assert {
			c.nmiPending = true
		}
	case LineNVI:
		c.nviLine = state == Assert
	case LineVI:
		c.viLine = state == Assert
	}
}

// SetIRQVector latches the 8-bit vector byte accompanying a vectored
// interrupt assertion.
func (c *CPU) SetIRQVector(v uint8) {
	c.viVector = v
}

// Step executes exactly one instruction, or one iteration of a block
// instruction, and returns the number of cycles consumed. If the CPU is
// halted and no interrupt is pending, fetching is suppressed but the
// cycle counter still advances at a nominal rate.
func (c *CPU) Step() int {
	before := c.cycles

	c.checkInterrupts()

	if c.halted {
		c.cycles += 4
		return int(c.cycles - before)
	}

	c.instrPC = c.PC
	c.ir = c.fetchPC()
	c.Refresh = (c.Refresh &^ 0x7F) | ((c.Refresh + 1) & 0x7F)

	desc := opcodeTable[c.ir]
	if desc == nil {
		c.extendedInstructionTrap()
	} else {
		desc(c)
	}

	if c.blockContinue {
		c.blockContinue = false
		c.PC = c.instrPC
	}

	return int(c.cycles - before)
}

// Run executes instructions until the cumulative cycle count since this
// call began reaches budget, the CPU halts with no pending interrupt, or
// Stop has been called. It returns the number of cycles actually
// consumed.
func (c *CPU) Run(budget int) int {
	consumed := 0
	for consumed < budget {
		if c.stopReq {
			c.stopReq = false
			break
		}
		if c.halted && !c.interruptPending() {
			consumed += c.Step()
			break
		}
		consumed += c.Step()
	}
	return consumed
}

// interruptPending reports whether any interrupt line is currently able
// to wake a halted CPU.
func (c *CPU) interruptPending() bool {
	if c.nmiPending {
		return true
	}
	if c.viLine && c.FCW&flagVIE != 0 {
		return true
	}
	if c.nviLine && c.FCW&flagNVIE != 0 {
		return true
	}
	return false
}

// fetchPC reads a 16-bit word at the current PC and advances PC by 2.
func (c *CPU) fetchPC() uint16 {
	val := c.progReadWord(c.PC)
	c.PC += 2
	return val
}

// fetchPCByte reads the next instruction-stream word and returns its low
// byte, advancing PC by 2. Z8000 byte immediates and extension fields
// occupy the low byte of a 16-bit instruction-stream slot.
func (c *CPU) fetchPCByte() uint8 {
	return uint8(c.fetchPC())
}

// fetchPCLong reads a 32-bit long (two words, high word first) at the
// current PC and advances PC by 4.
func (c *CPU) fetchPCLong() uint32 {
	hi := c.fetchPC()
	lo := c.fetchPC()
	return uint32(hi)<<16 | uint32(lo)
}

// pushWord pre-decrements R15 (SP) by 2 and writes val at the new SP.
func (c *CPU) pushWord(val uint16) {
	sp := c.Regs.RW(15) - 2
	c.Regs.SetRW(15, sp)
	c.progWriteWord(sp, val)
}

// popWord reads the word at SP and post-increments R15 (SP) by 2.
func (c *CPU) popWord() uint16 {
	sp := c.Regs.RW(15)
	val := c.progReadWord(sp)
	c.Regs.SetRW(15, sp+2)
	return val
}

// pushLong pre-decrements R15 (SP) by 4 and writes val at the new SP.
func (c *CPU) pushLong(val uint32) {
	sp := c.Regs.RW(15) - 4
	c.Regs.SetRW(15, sp)
	c.progWriteLong(sp, val)
}

// popLong reads the long at SP and post-increments R15 (SP) by 4.
func (c *CPU) popLong() uint32 {
	sp := c.Regs.RW(15)
	val := c.progReadLong(sp)
	c.Regs.SetRW(15, sp+4)
	return val
}

// continueBlock marks the currently executing instruction as not yet
// terminated; Step will rewind PC to the instruction's own address so the
// next fetch re-executes it.
func (c *CPU) continueBlock() {
	c.blockContinue = true
}

// logFault writes a one-line diagnostic for an internal trap. No error
// is ever returned to the embedder for these faults: they are recorded
// here only for diagnostics and redirected through the vector table by
// trap().
func (c *CPU) logFault(kind string) {
	log.Printf("[z8000] %s at PC=%04x IR=%04x FCW=%04x", kind, c.instrPC, c.ir, c.FCW)
}
