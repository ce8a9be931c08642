package z8000

// opHandler is the handler signature for a single Z8000 instruction. The
// first word of the instruction is already in c.ir when called; the
// handler is responsible for fetching any further extension words it
// needs.
type opHandler func(*CPU)

// opDescriptor is one entry of the compact opcode descriptor list: a
// 16-bit mask/match pair plus the handler that serves every opcode word
// matching it. Bits clear in mask are "don't care" — typically the bit
// positions that encode operand register indices, sizes, or small
// immediates, left for the handler itself to pull out of c.ir.
type opDescriptor struct {
	mask, match uint16
	handler     opHandler
}

// opcodeTable is the 65,536-entry dispatch table built once from
// opDescriptors by buildDispatchTable. A nil entry traps as an
// Extended-Instruction: unassigned opcode words are illegal.
var opcodeTable [65536]opHandler

var opDescriptors []opDescriptor

// addOp registers one descriptor. Registration order matters only as a
// deterministic tie-breaker when two descriptors of equal specificity
// (equal popcount(mask)) both match the same opcode word: the
// earlier-registered one wins. In practice the instruction families
// registered below never overlap at equal specificity; the tie-break
// exists to make that property checkable rather than to paper over a
// real ambiguity.
func addOp(mask, match uint16, h opHandler) {
	opDescriptors = append(opDescriptors, opDescriptor{mask: mask, match: match, handler: h})
}

// popcount16 counts set bits, used to rank descriptor specificity.
func popcount16(v uint16) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

// buildDispatchTable populates opcodeTable from opDescriptors. For every
// 16-bit opcode word, the descriptor whose mask/match matches is chosen;
// when more than one descriptor matches, the more specific one (more
// one-bits in its mask) wins.
func buildDispatchTable() {
	specificity := make([]int, 65536)
	for _, d := range opDescriptors {
		bits := popcount16(d.mask)
		for v := 0; v < 65536; v++ {
			if uint16(v)&d.mask != d.match {
				continue
			}
			if opcodeTable[v] == nil || bits > specificity[v] {
				opcodeTable[v] = d.handler
				specificity[v] = bits
			}
		}
	}
}

func init() {
	registerMoveOps()
	registerArithOps()
	registerBcdOps()
	registerLogicOps()
	registerBitOps()
	registerShiftOps()
	registerBranchOps()
	registerCtrlOps()
	registerIOOps()
	registerBlockOps()
	buildDispatchTable()
}
