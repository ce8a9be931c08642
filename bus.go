package z8000

// AccessKind names the purpose of a bus access: instruction fetch, data,
// or stack. The CPU does not pass an AccessKind to the Bus and does not
// report one through any method; stack traffic goes to the Program
// methods like any other program-space access.
type AccessKind int

const (
	AccessInstruction AccessKind = iota
	AccessData
	AccessStack
)

// Bus is the memory and port collaborator a CPU is constructed with.
// All multi-byte accesses are big-endian: the high byte/word lives at the
// lower address. Odd addresses on word/long accesses are not rejected by
// the CPU; they are passed through to the Bus, which may implement its own
// alignment policy.
//
// Program and Data are logically separate spaces so an embedder can bank
// code away from data; most simple systems alias Data onto Program by
// implementing both with the same backing store. Program space also
// carries the stack traffic in the non-segmented Z8002 model this core
// implements: the segmented Z8001's separate stack segment does not
// exist here, so stack accesses are routed to Program.
type Bus interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, val uint8)
	ReadWord(addr uint16) uint16
	WriteWord(addr uint16, val uint16)
	ReadLong(addr uint16) uint32
	WriteLong(addr uint16, val uint32)

	IOReadByte(port uint16) uint8
	IOWriteByte(port uint16, val uint8)
	IOReadWord(port uint16) uint16
	IOWriteWord(port uint16, val uint16)

	SpecialIOReadByte(port uint16) uint8
	SpecialIOWriteByte(port uint16, val uint8)
	SpecialIOReadWord(port uint16) uint16
	SpecialIOWriteWord(port uint16, val uint16)
}

// DataBus is optionally implemented by a Bus that wants a data space
// distinct from program space. When absent, data accesses are routed to
// the same Program methods.
type DataBus interface {
	Bus
	DataReadByte(addr uint16) uint8
	DataWriteByte(addr uint16, val uint8)
	DataReadWord(addr uint16) uint16
	DataWriteWord(addr uint16, val uint16)
	DataReadLong(addr uint16) uint32
	DataWriteLong(addr uint16, val uint32)
}

// CycleBus is optionally implemented by a Bus that needs the current
// cycle count alongside an access, e.g. for device timing. The CPU
// detects it once via a type assertion and prefers it over the plain
// Bus methods.
type CycleBus interface {
	Bus
	ReadByteCycle(cycle uint64, addr uint16) uint8
	WriteByteCycle(cycle uint64, addr uint16, val uint8)
	ReadWordCycle(cycle uint64, addr uint16) uint16
	WriteWordCycle(cycle uint64, addr uint16, val uint16)
}

// progRead*/progWrite*/dataRead*/dataWrite* resolve to the bus, preferring
// CycleBus-stamped accesses and DataBus-routed data accesses when the
// supplied Bus implements them.

func (c *CPU) progReadByte(addr uint16) uint8 {
	if c.cycleBus != nil {
		return c.cycleBus.ReadByteCycle(c.cycles, addr)
	}
	return c.bus.ReadByte(addr)
}

func (c *CPU) progWriteByte(addr uint16, val uint8) {
	if c.cycleBus != nil {
		c.cycleBus.WriteByteCycle(c.cycles, addr, val)
		return
	}
	c.bus.WriteByte(addr, val)
}

func (c *CPU) progReadWord(addr uint16) uint16 {
	if c.cycleBus != nil {
		return c.cycleBus.ReadWordCycle(c.cycles, addr)
	}
	return c.bus.ReadWord(addr)
}

func (c *CPU) progWriteWord(addr uint16, val uint16) {
	if c.cycleBus != nil {
		c.cycleBus.WriteWordCycle(c.cycles, addr, val)
		return
	}
	c.bus.WriteWord(addr, val)
}

func (c *CPU) progReadLong(addr uint16) uint32 {
	return c.bus.ReadLong(addr)
}

func (c *CPU) progWriteLong(addr uint16, val uint32) {
	c.bus.WriteLong(addr, val)
}

func (c *CPU) dataReadByte(addr uint16) uint8 {
	if db, ok := c.bus.(DataBus); ok {
		return db.DataReadByte(addr)
	}
	return c.progReadByte(addr)
}

func (c *CPU) dataWriteByte(addr uint16, val uint8) {
	if db, ok := c.bus.(DataBus); ok {
		db.DataWriteByte(addr, val)
		return
	}
	c.progWriteByte(addr, val)
}

func (c *CPU) dataReadWord(addr uint16) uint16 {
	if db, ok := c.bus.(DataBus); ok {
		return db.DataReadWord(addr)
	}
	return c.progReadWord(addr)
}

func (c *CPU) dataWriteWord(addr uint16, val uint16) {
	if db, ok := c.bus.(DataBus); ok {
		db.DataWriteWord(addr, val)
		return
	}
	c.progWriteWord(addr, val)
}

func (c *CPU) dataReadLong(addr uint16) uint32 {
	if db, ok := c.bus.(DataBus); ok {
		return db.DataReadLong(addr)
	}
	return c.progReadLong(addr)
}

func (c *CPU) dataWriteLong(addr uint16, val uint32) {
	if db, ok := c.bus.(DataBus); ok {
		db.DataWriteLong(addr, val)
		return
	}
	c.progWriteLong(addr, val)
}

// readSizedData/writeSizedData dispatch on Size for data-space accesses
// made by the operand fetcher and the block instructions.

func (c *CPU) readSizedData(sz Size, addr uint16) uint32 {
	switch sz {
	case Byte:
		return uint32(c.dataReadByte(addr))
	case Long:
		return c.dataReadLong(addr)
	default:
		return uint32(c.dataReadWord(addr))
	}
}

func (c *CPU) writeSizedData(sz Size, addr uint16, val uint32) {
	switch sz {
	case Byte:
		c.dataWriteByte(addr, uint8(val))
	case Long:
		c.dataWriteLong(addr, val)
	default:
		c.dataWriteWord(addr, uint16(val))
	}
}
