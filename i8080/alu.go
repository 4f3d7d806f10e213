package i8080

// Accumulator arithmetic. Every operation computes an 8-bit result with
// explicit carry detection and rederives zero, sign and parity from it.

// add adds value and a carry-in to the accumulator.
func (s *State) add(value uint8, carry bool) uint8 {
	r := &s.Registers
	var cin uint16
	if carry {
		cin = 1
	}

	sum := uint16(r.A) + uint16(value) + cin
	result := uint8(sum)

	r.Flags.Carry = sum > 0xff
	r.Flags.AuxCarry = (uint16(r.A&0x0f) + uint16(value&0x0f) + cin) > 0x0f
	r.Flags.SetZeroSignParity(result)

	return result
}

// sub subtracts value and a borrow from the accumulator. The 8080 adds the
// complement, so aux carry is the nibble carry of that addition and the
// carry flag is the inverted carry out.
func (s *State) sub(value uint8, borrow bool) uint8 {
	r := &s.Registers
	var cin uint16 = 1
	if borrow {
		cin = 0
	}

	sum := uint16(r.A) + uint16(^value) + cin
	result := uint8(sum)

	r.Flags.Carry = sum <= 0xff
	r.Flags.AuxCarry = (uint16(r.A&0x0f) + uint16(^value&0x0f) + cin) > 0x0f
	r.Flags.SetZeroSignParity(result)

	return result
}

func (s *State) Add(value uint8) {
	s.Registers.A = s.add(value, false)
}

func (s *State) Adc(value uint8) {
	s.Registers.A = s.add(value, s.Registers.Flags.Carry)
}

func (s *State) Sub(value uint8) {
	s.Registers.A = s.sub(value, false)
}

func (s *State) Sbb(value uint8) {
	s.Registers.A = s.sub(value, s.Registers.Flags.Carry)
}

// Cmp sets the flags as Sub does but leaves the accumulator unchanged.
func (s *State) Cmp(value uint8) {
	s.sub(value, false)
}

// logical stores a logical result. Carry is always cleared.
func (s *State) logical(result uint8, aux bool) {
	r := &s.Registers
	r.A = result
	r.Flags.Carry = false
	r.Flags.AuxCarry = aux
	r.Flags.SetZeroSignParity(result)
}

func (s *State) And(value uint8) {
	s.logical(s.Registers.A&value, ((s.Registers.A|value)&0x08) != 0)
}

func (s *State) Xor(value uint8) {
	s.logical(s.Registers.A^value, false)
}

func (s *State) Or(value uint8) {
	s.logical(s.Registers.A|value, false)
}

// AluOp is the 3-bit operation selector of the accumulator group.
type AluOp int

const (
	ALU_ADD = AluOp(0) // add
	ALU_ADC = AluOp(1) // adc
	ALU_SUB = AluOp(2) // sub
	ALU_SBB = AluOp(3) // sbb
	ALU_AND = AluOp(4) // ana
	ALU_XOR = AluOp(5) // xra
	ALU_OR  = AluOp(6) // ora
	ALU_CMP = AluOp(7) // cmp
)

var aluNames = [...]string{"add", "adc", "sub", "sbb", "ana", "xra", "ora", "cmp"}

func (op AluOp) String() string {
	if op < 0 || int(op) >= len(aluNames) {
		return f("alu(%v)", int(op))
	}
	return aluNames[op]
}

// Alu applies an accumulator operation to an operand.
func (s *State) Alu(op AluOp, value uint8) {
	switch op {
	case ALU_ADD:
		s.Add(value)
	case ALU_ADC:
		s.Adc(value)
	case ALU_SUB:
		s.Sub(value)
	case ALU_SBB:
		s.Sbb(value)
	case ALU_AND:
		s.And(value)
	case ALU_XOR:
		s.Xor(value)
	case ALU_OR:
		s.Or(value)
	case ALU_CMP:
		s.Cmp(value)
	default:
		panic(ErrAlu(op))
	}
}

// Unary operations. These never change carry.

func inr(fl *Flags, value uint8) (result uint8) {
	result = value + 1
	fl.AuxCarry = (result & 0x0f) == 0
	fl.SetZeroSignParity(result)
	return
}

func dcr(fl *Flags, value uint8) (result uint8) {
	result = value - 1
	fl.AuxCarry = (result & 0x0f) != 0x0f
	fl.SetZeroSignParity(result)
	return
}

// Inr increments a register.
func (s *State) Inr(reg Reg8) {
	s.Registers.Update8(reg, func(value uint8) uint8 {
		return inr(&s.Registers.Flags, value)
	})
}

// Dcr decrements a register.
func (s *State) Dcr(reg Reg8) {
	s.Registers.Update8(reg, func(value uint8) uint8 {
		return dcr(&s.Registers.Flags, value)
	})
}

// InrP increments the memory byte addressed by a pair.
func (s *State) InrP(pair Reg16) {
	s.MovPI8(pair, inr(&s.Registers.Flags, s.GetIndirect8(pair)))
}

// DcrP decrements the memory byte addressed by a pair.
func (s *State) DcrP(pair Reg16) {
	s.MovPI8(pair, dcr(&s.Registers.Flags, s.GetIndirect8(pair)))
}

// Inx increments a register pair. No flags change.
func (s *State) Inx(pair Reg16) {
	s.Registers.Update16(pair, func(value uint16) uint16 { return value + 1 })
}

// Dcx decrements a register pair. No flags change.
func (s *State) Dcx(pair Reg16) {
	s.Registers.Update16(pair, func(value uint16) uint16 { return value - 1 })
}

// 16-bit addition into HL. Only carry changes.

// DadValue adds a 16-bit value to HL.
func (s *State) DadValue(value uint16) {
	sum := uint32(s.Registers.Get16(PAIR_HL)) + uint32(value)
	s.Registers.Flags.Carry = sum > 0xffff
	s.Registers.Set16(PAIR_HL, uint16(sum))
}

// Dad adds a register pair to HL.
func (s *State) Dad(pair Reg16) {
	s.DadValue(s.Registers.Get16(pair))
}

// Daa adjusts the accumulator to packed BCD after an addition, as two
// sequential corrections of the low then the high nibble.
func (s *State) Daa() {
	r := &s.Registers
	carry := r.Flags.Carry
	aux := false

	if (r.A&0x0f) > 9 || r.Flags.AuxCarry {
		aux = (r.A & 0x0f) > 9
		if uint16(r.A)+0x06 > 0xff {
			carry = true
		}
		r.A += 0x06
	}

	if (r.A>>4) > 9 || carry {
		s.Add(0x60)
		carry = carry || r.Flags.Carry
	}

	r.Flags.Carry = carry
	r.Flags.AuxCarry = aux
	r.Flags.SetZeroSignParity(r.A)
}

// Accumulator rotates. Only carry changes.

// Rlc rotates left, bit 7 to both bit 0 and carry.
func (s *State) Rlc() {
	a := s.Registers.A
	s.Registers.A = a<<1 | a>>7
	s.Registers.Flags.Carry = (a & 0x80) != 0
}

// Rrc rotates right, bit 0 to both bit 7 and carry.
func (s *State) Rrc() {
	a := s.Registers.A
	s.Registers.A = a>>1 | a<<7
	s.Registers.Flags.Carry = (a & 0x01) != 0
}

// Ral rotates left through carry.
func (s *State) Ral() {
	a := s.Registers.A
	var cin uint8
	if s.Registers.Flags.Carry {
		cin = 0x01
	}
	s.Registers.A = a<<1 | cin
	s.Registers.Flags.Carry = (a & 0x80) != 0
}

// Rar rotates right through carry.
func (s *State) Rar() {
	a := s.Registers.A
	var cin uint8
	if s.Registers.Flags.Carry {
		cin = 0x80
	}
	s.Registers.A = a>>1 | cin
	s.Registers.Flags.Carry = (a & 0x01) != 0
}

// Cma complements the accumulator.
func (s *State) Cma() {
	s.Registers.Update8(REG_A, func(a uint8) uint8 { return ^a })
}

// Stc sets carry.
func (s *State) Stc() {
	s.Registers.Flags.Carry = true
}

// Cmc complements carry.
func (s *State) Cmc() {
	s.Registers.Flags.Carry = !s.Registers.Flags.Carry
}
