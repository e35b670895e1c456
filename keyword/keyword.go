// Package keyword provides the static mnemonic table of the TM assembly language.
package keyword

import (
	"sort"
	"sync"
)

// Category classifies a mnemonic.
type Category int32

const (
	None Category = iota
	Language
	Section
	Register
	Condition
	Instruction
)

func (c Category) String() string {
	switch c {
	case Language:
		return "Language"
	case Section:
		return "Section"
	case Register:
		return "Register"
	case Condition:
		return "Condition"
	case Instruction:
		return "Instruction"
	default:
		return "None"
	}
}

// Language constructs.
const (
	LangSection int32 = iota
	LangFunction
	LangLet
	LangConst
)

// Memory sections. RST and INT slots are numbered 0x0 to 0xF.
const (
	SectionMetadata int32 = 0
	SectionRST0     int32 = 1
	SectionINT0     int32 = 17
	SectionProgram  int32 = 33
	SectionRAM      int32 = 34
	SectionQRAM     int32 = 35
)

// Registers. Each family has a full, high-word, high-byte and low-byte alias.
const (
	RegA int32 = iota
	RegAW
	RegAH
	RegAL
	RegB
	RegBW
	RegBH
	RegBL
	RegC
	RegCW
	RegCH
	RegCL
	RegD
	RegDW
	RegDH
	RegDL
)

// Conditions.
const (
	CondN int32 = iota
	CondCS
	CondCC
	CondZS
	CondZC
	CondOS
	CondUS
)

// Keyword is the registry record for a mnemonic. ParamOne is the semantic id
// (language construct, section, register, condition or opcode). For
// instructions ParamTwo is the operand arity.
type Keyword struct {
	Category Category
	ParamOne int32
	ParamTwo int32
}

// Arity returns the operand count of an instruction keyword.
func (k Keyword) Arity() int {
	if k.Category != Instruction {
		return 0
	}
	return int(k.ParamTwo)
}

// instructions lists every opcode in id order with its arity.
var instructions = []struct {
	mnemonic string
	arity    int32
}{
	{"NOP", 0}, {"STOP", 0}, {"HALT", 0}, {"SEC", 0}, {"CEC", 0}, {"DI", 0}, {"EI", 0},
	{"DAL", 1}, {"DAW", 1}, {"DAB", 1},
	{"CPL", 1}, {"CPW", 1}, {"CPB", 1},
	{"SCF", 0}, {"CCF", 0},
	{"LD", 2}, {"LDQ", 2}, {"LDH", 2},
	{"ST", 2}, {"STQ", 2}, {"STH", 2},
	{"MV", 2},
	{"PUSH", 1}, {"POP", 1},
	{"JMP", 2}, {"JPB", 2}, {"CALL", 2}, {"RST", 1}, {"RET", 1}, {"RETI", 0}, {"JPS", 0},
	{"INC", 1}, {"DEC", 1},
	{"ADD", 2}, {"ADC", 2}, {"SUB", 2}, {"SBC", 2},
	{"AND", 2}, {"OR", 2}, {"XOR", 2}, {"CMP", 2},
	{"SLA", 1}, {"SRA", 1}, {"SRL", 1},
	{"RL", 1}, {"RLC", 1}, {"RR", 1}, {"RRC", 1},
	{"BIT", 2}, {"SET", 2}, {"RES", 2},
	{"SWAP", 1},
}

// instructionAliases maps alternate spellings onto a canonical mnemonic.
var instructionAliases = map[string]string{
	"MOV": "MV",
}

// Registry is an immutable mnemonic lookup table.
type Registry struct {
	table map[string]Keyword
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, building it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry builds a fresh registry holding the full TM mnemonic table.
func NewRegistry() *Registry {
	t := make(map[string]Keyword, 128)

	t["SECTION"] = Keyword{Category: Language, ParamOne: LangSection}
	t["FUNCTION"] = Keyword{Category: Language, ParamOne: LangFunction}
	t["MACRO"] = Keyword{Category: Language, ParamOne: LangFunction}
	t["LET"] = Keyword{Category: Language, ParamOne: LangLet}
	t["CONST"] = Keyword{Category: Language, ParamOne: LangConst}

	const hex = "0123456789ABCDEF"
	t["METADATA"] = Keyword{Category: Section, ParamOne: SectionMetadata}
	for i := 0; i < 16; i++ {
		t["RST"+string(hex[i])] = Keyword{Category: Section, ParamOne: SectionRST0 + int32(i)}
		t["INT"+string(hex[i])] = Keyword{Category: Section, ParamOne: SectionINT0 + int32(i)}
	}
	t["PROGRAM"] = Keyword{Category: Section, ParamOne: SectionProgram}
	t["RAM"] = Keyword{Category: Section, ParamOne: SectionRAM}
	t["QRAM"] = Keyword{Category: Section, ParamOne: SectionQRAM}

	for i, name := range []string{
		"A", "AW", "AH", "AL",
		"B", "BW", "BH", "BL",
		"C", "CW", "CH", "CL",
		"D", "DW", "DH", "DL",
	} {
		t[name] = Keyword{Category: Register, ParamOne: int32(i)}
	}

	for i, name := range []string{"N", "CS", "CC", "ZS", "ZC", "OS", "US"} {
		t[name] = Keyword{Category: Condition, ParamOne: int32(i)}
	}

	for i, ins := range instructions {
		t[ins.mnemonic] = Keyword{Category: Instruction, ParamOne: int32(i), ParamTwo: ins.arity}
	}
	for alias, canonical := range instructionAliases {
		t[alias] = t[canonical]
	}

	return &Registry{table: t}
}

// Lookup returns the keyword for an upper-cased mnemonic. Unknown text yields
// the zero Keyword, whose category is None.
func (r *Registry) Lookup(text string) Keyword {
	return r.table[text]
}

// Mnemonics returns the sorted mnemonics of a category.
func (r *Registry) Mnemonics(c Category) []string {
	names := make([]string, 0)
	for name, kw := range r.table {
		if kw.Category == c {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// InstructionName returns the canonical mnemonic of an opcode id.
func InstructionName(opcode int32) string {
	if opcode < 0 || int(opcode) >= len(instructions) {
		return ""
	}
	return instructions[opcode].mnemonic
}
