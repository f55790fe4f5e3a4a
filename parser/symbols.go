package parser

// SymbolTable maps a label name to its absolute address.
// Keys are unique: Define rejects a redefinition.
type SymbolTable struct {
	addresses map[string]uint32
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{addresses: make(map[string]uint32)}
}

// Define records name at addr, or fails with ErrorDuplicateSymbol if
// name is already present.
func (st *SymbolTable) Define(pos Position, name string, addr uint32) error {
	if _, exists := st.addresses[name]; exists {
		return NewError(pos, ErrorDuplicateSymbol, "duplicate symbol: "+name)
	}
	st.addresses[name] = addr
	return nil
}

// Lookup returns name's address, if defined.
func (st *SymbolTable) Lookup(name string) (uint32, bool) {
	addr, ok := st.addresses[name]
	return addr, ok
}

// Len reports the number of defined symbols.
func (st *SymbolTable) Len() int {
	return len(st.addresses)
}

// Names returns all defined symbol names in no particular order.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.addresses))
	for name := range st.addresses {
		names = append(names, name)
	}
	return names
}
