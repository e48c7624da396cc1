package inventory

import "fmt"

// Endpoint describes normalized device info ready for export or asset
// creation. Immutable once built.
type Endpoint struct {
	Name   string
	Brand  string
	Disk   string
	Serial string
	RAM    string
	OS     string
}

// String renders the one-line console form of the record.
func (e Endpoint) String() string {
	return fmt.Sprintf("%s | %s | %s | %s | %s | %s", e.Name, e.Brand, e.Disk, e.Serial, e.RAM, e.OS)
}
