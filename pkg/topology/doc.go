// Package topology loads the bus description consumed by the interconnect
// generator.
//
// A topology is a pair of bus widths and an ordered list of ports. Each port
// carries a free-form "Port Type" tag which is matched case-insensitively
// against "master" and "slave". Ports with any other tag are kept in the
// loaded Config but fall out of both partitions:
//
//	cfg, err := topology.LoadFile("bus.json")
//	if err != nil {
//		return err
//	}
//	for _, m := range cfg.Masters() {
//		fmt.Println(m.Name, m.AddressMap)
//	}
//
// Nothing beyond field presence is checked. Duplicate names and overlapping
// or out-of-range address maps are accepted as written.
package topology
