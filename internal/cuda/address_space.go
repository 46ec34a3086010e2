package cuda

import (
	"strings"

	"github.com/fxnlabs/kermaview/internal/modelerr"
)

// AddressSpace identifies the memory region a value resides in. IDs follow
// the NVPTX numbering.
type AddressSpace struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

var (
	Generic  = AddressSpace{Name: "generic", ID: 0}
	Global   = AddressSpace{Name: "global", ID: 1}
	Shared   = AddressSpace{Name: "shared", ID: 3}
	Constant = AddressSpace{Name: "constant", ID: 4}
	Local    = AddressSpace{Name: "local", ID: 5}
)

var addressSpaces = []AddressSpace{Generic, Global, Shared, Constant, Local}

// ParseAddressSpace resolves a predefined address space by name. The empty
// name resolves to Generic.
func ParseAddressSpace(name string) (AddressSpace, error) {
	if name == "" {
		return Generic, nil
	}
	for _, as := range addressSpaces {
		if strings.EqualFold(as.Name, name) {
			return as, nil
		}
	}
	return AddressSpace{}, modelerr.UnknownVariant("address space %q", name)
}

// Equals reports whether both name and ID match.
func (a AddressSpace) Equals(o AddressSpace) bool { return a == o }

func (a AddressSpace) String() string { return a.Name }
