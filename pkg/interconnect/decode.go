package interconnect

import "github.com/OpenTraceLab/switchgen/pkg/topology"

// Branch is one arm of a master's address case statement.
type Branch struct {
	Guard  string // case label, the start token of the master's address map
	Master string
	Slave  string
}

// Decoder is the case statement generated for one master.
type Decoder struct {
	Master   string
	Branches []Branch
}

// Decoders builds one decoder per master in configuration order. A master
// with an address map gets one branch per slave, all guarded by the start of
// that map. The end of the range is not used. A master without an address map
// gets no branches and only the default arm is emitted for it.
func Decoders(cfg *topology.Config) []Decoder {
	slaves := cfg.Slaves()

	var decoders []Decoder
	for _, m := range cfg.Masters() {
		dec := Decoder{Master: m.Name}
		if m.AddressMap != nil {
			for _, s := range slaves {
				dec.Branches = append(dec.Branches, Branch{
					Guard:  m.AddressMap.Start,
					Master: m.Name,
					Slave:  s.Name,
				})
			}
		}
		decoders = append(decoders, dec)
	}
	return decoders
}
