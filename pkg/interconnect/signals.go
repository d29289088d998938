package interconnect

import (
	"fmt"

	"github.com/OpenTraceLab/switchgen/pkg/topology"
)

// Direction of a port signal as declared on the interconnect module.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Output {
		return Input
	}
	return Output
}

// Signal is one wire of an AXI port bundle.
type Signal struct {
	Suffix string    // appended to the port name, e.g. "_awaddr"
	Range  string    // packed range, empty for single bit signals
	Master Direction // direction on a master-facing port
}

// Signals is the bundle declared for every port, in declaration order.
// Slave-facing ports use the same list with every direction flipped.
var Signals = []Signal{
	// write address
	{Suffix: "_awaddr", Range: "[ADDR_WIDTH-1:0]", Master: Input},
	{Suffix: "_awvalid", Master: Input},
	{Suffix: "_awready", Master: Output},
	// write data
	{Suffix: "_wdata", Range: "[DATA_WIDTH-1:0]", Master: Input},
	{Suffix: "_wvalid", Master: Input},
	{Suffix: "_wready", Master: Output},
	// write response
	{Suffix: "_bresp", Range: "[1:0]", Master: Output},
	{Suffix: "_bvalid", Master: Output},
	{Suffix: "_bready", Master: Input},
	// read address
	{Suffix: "_araddr", Range: "[ADDR_WIDTH-1:0]", Master: Input},
	{Suffix: "_arvalid", Master: Input},
	{Suffix: "_arready", Master: Output},
	// read data
	{Suffix: "_rdata", Range: "[DATA_WIDTH-1:0]", Master: Output},
	{Suffix: "_rresp", Range: "[1:0]", Master: Output},
	{Suffix: "_rvalid", Master: Output},
	{Suffix: "_rready", Master: Input},
}

// Name column widths. Slave declarations sit one column further right.
const (
	masterTypeColumn = 27
	slaveTypeColumn  = 28
)

// Direction returns the signal direction on a port of the given role.
func (s Signal) Direction(role topology.Role) Direction {
	if role == topology.RoleSlave {
		return s.Master.Flip()
	}
	return s.Master
}

// Declaration is a single rendered port declaration.
type Declaration struct {
	Type   string // "input wire [ADDR_WIDTH-1:0]"
	Name   string // "m0_awaddr"
	column int
}

func (d Declaration) String() string {
	return fmt.Sprintf("%-*s %s", d.column, d.Type, d.Name)
}

// Bundle returns the declarations for one port. Ports that are neither
// master nor slave have no bundle.
func Bundle(port topology.Port) []Declaration {
	role := port.Role()
	if role == topology.RoleUnknown {
		return nil
	}

	column := masterTypeColumn
	if role == topology.RoleSlave {
		column = slaveTypeColumn
	}

	decls := make([]Declaration, 0, len(Signals))
	for _, sig := range Signals {
		typ := sig.Direction(role).String() + " wire"
		if sig.Range != "" {
			typ += " " + sig.Range
		}
		decls = append(decls, Declaration{
			Type:   typ,
			Name:   port.Name + sig.Suffix,
			column: column,
		})
	}
	return decls
}
