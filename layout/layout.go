// Package layout names the regions of the TM 32-bit address space.
package layout

import (
	"fmt"

	"github.com/tmm-dev/tmm/keyword"
)

// Range is an inclusive address range.
type Range struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// Contains reports whether addr falls inside r.
func (r Range) Contains(addr uint32) bool {
	return addr >= r.Start && addr <= r.End
}

// Size returns the number of addresses in r.
func (r Range) Size() uint64 {
	return uint64(r.End) - uint64(r.Start) + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[0x%08X, 0x%08X]", r.Start, r.End)
}

var (
	Metadata  = Range{0x00000000, 0x00000FFF}
	Program   = Range{0x00003000, 0x7FFFFFFF}
	RAM       = Range{0x80000000, 0xFFFCFFFF}
	Stack     = Range{0xFFFD0000, 0xFFFDFFFF}
	CallStack = Range{0xFFFE0000, 0xFFFEFFFF}
	QuickRAM  = Range{0xFFFF0000, 0xFFFFFEFF}
	IO        = Range{0xFFFFFF00, 0xFFFFFFFF}
)

const (
	rstBase   = 0x00001000
	intBase   = 0x00002000
	slotSize  = 0x100
	slotCount = 16
)

// RST returns the handler region of restart vector n, 0 through 15.
func RST(n int) (Range, bool) {
	return slot(rstBase, n)
}

// INT returns the handler region of interrupt vector n, 0 through 15.
func INT(n int) (Range, bool) {
	return slot(intBase, n)
}

func slot(base uint32, n int) (Range, bool) {
	if n < 0 || n >= slotCount {
		return Range{}, false
	}
	start := base + uint32(n)*slotSize
	return Range{start, start + slotSize - 1}, true
}

// ForSection maps a section keyword id to its region.
func ForSection(id int32) (Range, bool) {
	switch {
	case id == keyword.SectionMetadata:
		return Metadata, true
	case id >= keyword.SectionRST0 && id < keyword.SectionRST0+slotCount:
		return RST(int(id - keyword.SectionRST0))
	case id >= keyword.SectionINT0 && id < keyword.SectionINT0+slotCount:
		return INT(int(id - keyword.SectionINT0))
	case id == keyword.SectionProgram:
		return Program, true
	case id == keyword.SectionRAM:
		return RAM, true
	case id == keyword.SectionQRAM:
		return QuickRAM, true
	default:
		return Range{}, false
	}
}
