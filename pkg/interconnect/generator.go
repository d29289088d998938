package interconnect

import (
	"bufio"
	"io"
	"text/template"

	"github.com/OpenTraceLab/switchgen/pkg/topology"
	"github.com/pkg/errors"
)

// The `timescale directive starts with a backquote, so it cannot live in the
// raw string below.
const moduleText = "\n`timescale {{.Timescale}}\n" + `
module {{.Name}} #( 
    parameter ADDR_WIDTH = {{.AddressWidth}},
    parameter DATA_WIDTH = {{.DataWidth}},
    parameter NUM_MASTERS = {{len .Masters}},
    parameter NUM_SLAVES = {{len .Slaves}}
)(
    input wire clk,
    input wire reset,

    // Master Interfaces
{{range .Masters}}
{{range .}}    {{.}},
{{end}}{{end}}// Slave Interfaces
{{range .Slaves}}
{{range .}}    {{.}},
{{end}}{{end}}
    // Address decoding logic
    always @(*) begin
{{range .Decoders}}        case({{.Master}}_awaddr) // Address Mapping
{{range .Branches}}            {{.Guard}}: begin {{.Slave}}_awaddr = {{.Master}}_awaddr; {{.Slave}}_awvalid = {{.Master}}_awvalid; end
{{end}}            default: begin end
        endcase
{{end}}    end
endmodule
`

var moduleTpl = template.Must(template.New("module").Parse(moduleText))

// module is the data handed to moduleTpl.
type module struct {
	Name         string
	Timescale    string
	AddressWidth int
	DataWidth    int
	Masters      [][]Declaration
	Slaves       [][]Declaration
	Decoders     []Decoder
}

func newModule(cfg *topology.Config, gc *Config) *module {
	m := &module{
		Name:         gc.ModuleName,
		Timescale:    gc.Timescale,
		AddressWidth: cfg.AddressWidth,
		DataWidth:    cfg.DataWidth,
		Decoders:     Decoders(cfg),
	}
	for _, p := range cfg.Masters() {
		m.Masters = append(m.Masters, Bundle(p))
	}
	for _, p := range cfg.Slaves() {
		m.Slaves = append(m.Slaves, Bundle(p))
	}
	return m
}

// Render writes the interconnect module for cfg to w.
func Render(w io.Writer, cfg *topology.Config, opts ...Option) error {
	gc, err := newConfig(opts)
	if err != nil {
		return err
	}
	return render(w, cfg, gc)
}

func render(w io.Writer, cfg *topology.Config, gc *Config) error {
	bw := bufio.NewWriter(w)
	if err := moduleTpl.Execute(bw, newModule(cfg, gc)); err != nil {
		return errors.Wrap(err, "interconnect: render module")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "interconnect: write module")
	}
	return nil
}
