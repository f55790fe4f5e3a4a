package object

import "fmt"

// Header is the object program's Header record.
type Header struct {
	ProgramName  string
	StartAddress uint32
	Length       uint32
}

// String formats the record as `H{name:6}{start:06X}{length:06X}`.
func (h Header) String() string {
	return fmt.Sprintf("H%-6.6s%06X%06X", h.ProgramName, h.StartAddress, h.Length)
}
