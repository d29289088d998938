package topology

import (
	"strings"

	"github.com/OpenTraceLab/switchgen/pkg/addrmap"
)

// Role is the side of the bus a port sits on.
type Role int

const (
	RoleUnknown Role = iota
	RoleMaster
	RoleSlave
)

func (r Role) String() string {
	switch r {
	case RoleMaster:
		return "master"
	case RoleSlave:
		return "slave"
	default:
		return "unknown"
	}
}

// Port is a single entry of the "Ports" list.
type Port struct {
	Name       string         // "Port Name", used verbatim as a signal prefix
	Type       string         // "Port Type" as written
	AddressMap *addrmap.Range // "Address Map", nil when absent
}

// Role classifies the port by its type tag, ignoring case.
func (p Port) Role() Role {
	switch strings.ToLower(p.Type) {
	case "master":
		return RoleMaster
	case "slave":
		return RoleSlave
	default:
		return RoleUnknown
	}
}

// Config is a loaded bus topology.
type Config struct {
	AddressWidth int
	DataWidth    int
	Ports        []Port
}

// Masters returns the master ports in configuration order.
func (c *Config) Masters() []Port {
	return c.withRole(RoleMaster)
}

// Slaves returns the slave ports in configuration order.
func (c *Config) Slaves() []Port {
	return c.withRole(RoleSlave)
}

// Dropped returns the ports whose type is neither master nor slave.
func (c *Config) Dropped() []Port {
	return c.withRole(RoleUnknown)
}

func (c *Config) withRole(role Role) []Port {
	var ports []Port
	for _, p := range c.Ports {
		if p.Role() == role {
			ports = append(ports, p)
		}
	}
	return ports
}
