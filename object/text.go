package object

import "fmt"

// Text is one Text record: a contiguous run of object code starting
// at StartAddress.
type Text struct {
	StartAddress uint32
	Length       uint32
	Code         string
}

// String formats the record as `T{start:06X}{length:02X}{hex...}`.
func (t Text) String() string {
	return fmt.Sprintf("T%06X%02X%s", t.StartAddress, t.Length, t.Code)
}
