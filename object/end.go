package object

import "fmt"

// End is the object program's End record.
type End struct {
	EntryAddress uint32
}

// String formats the record as `E{entry:06X}`.
func (e End) String() string {
	return fmt.Sprintf("E%06X", e.EntryAddress)
}
