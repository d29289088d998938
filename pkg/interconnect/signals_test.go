package interconnect

import (
	"strings"
	"testing"

	"github.com/OpenTraceLab/switchgen/pkg/topology"
)

func TestSignalVocabulary(t *testing.T) {
	want := []string{
		"_awaddr", "_awvalid", "_awready",
		"_wdata", "_wvalid", "_wready",
		"_bresp", "_bvalid", "_bready",
		"_araddr", "_arvalid", "_arready",
		"_rdata", "_rresp", "_rvalid", "_rready",
	}
	if len(Signals) != len(want) {
		t.Fatalf("expected %d signals, got %d", len(want), len(Signals))
	}
	for i, sig := range Signals {
		if sig.Suffix != want[i] {
			t.Errorf("signal %d: suffix %q, want %q", i, sig.Suffix, want[i])
		}
	}
}

func TestBundleDirections(t *testing.T) {
	requests := map[string]bool{
		"_awaddr": true, "_awvalid": true, "_wdata": true, "_wvalid": true,
		"_bready": true, "_araddr": true, "_arvalid": true, "_rready": true,
	}

	master := Bundle(topology.Port{Name: "m", Type: "Master"})
	slave := Bundle(topology.Port{Name: "s", Type: "slave"})
	if len(master) != len(Signals) || len(slave) != len(Signals) {
		t.Fatalf("bundle sizes: master %d, slave %d, want %d", len(master), len(slave), len(Signals))
	}

	for i, sig := range Signals {
		wantMaster, wantSlave := "output", "input"
		if requests[sig.Suffix] {
			wantMaster, wantSlave = "input", "output"
		}
		if !strings.HasPrefix(master[i].Type, wantMaster+" ") {
			t.Errorf("master %s declared %q, want %s", sig.Suffix, master[i].Type, wantMaster)
		}
		if !strings.HasPrefix(slave[i].Type, wantSlave+" ") {
			t.Errorf("slave %s declared %q, want %s", sig.Suffix, slave[i].Type, wantSlave)
		}
		if master[i].Name != "m"+sig.Suffix || slave[i].Name != "s"+sig.Suffix {
			t.Errorf("unexpected names %q / %q", master[i].Name, slave[i].Name)
		}
	}
}

func TestBundleUnknownRole(t *testing.T) {
	if decls := Bundle(topology.Port{Name: "x", Type: "arbiter"}); decls != nil {
		t.Errorf("expected no declarations, got %d", len(decls))
	}
}

func TestDeclarationString(t *testing.T) {
	tests := []struct {
		port  topology.Port
		index int
		want  string
	}{
		{topology.Port{Name: "m0", Type: "Master"}, 0, "input wire [ADDR_WIDTH-1:0] m0_awaddr"},
		{topology.Port{Name: "m0", Type: "Master"}, 1, "input wire                  m0_awvalid"},
		{topology.Port{Name: "m0", Type: "Master"}, 12, "output wire [DATA_WIDTH-1:0] m0_rdata"},
		{topology.Port{Name: "s0", Type: "Slave"}, 2, "input wire                   s0_awready"},
		{topology.Port{Name: "s0", Type: "Slave"}, 12, "input wire [DATA_WIDTH-1:0]  s0_rdata"},
	}

	for _, tt := range tests {
		got := Bundle(tt.port)[tt.index].String()
		if got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestDecoders(t *testing.T) {
	cfg := &topology.Config{
		Ports: []topology.Port{
			{Name: "m0", Type: "Master", AddressMap: mustRange(t, "'h0 to 'hFFF")},
			{Name: "s0", Type: "Slave"},
			{Name: "m1", Type: "Master"},
			{Name: "s1", Type: "Slave"},
		},
	}

	decs := Decoders(cfg)
	if len(decs) != 2 {
		t.Fatalf("expected 2 decoders, got %d", len(decs))
	}
	if decs[0].Master != "m0" || len(decs[0].Branches) != 2 {
		t.Fatalf("decoder 0 = %+v", decs[0])
	}
	for i, slave := range []string{"s0", "s1"} {
		br := decs[0].Branches[i]
		if br.Guard != "'h0" || br.Slave != slave || br.Master != "m0" {
			t.Errorf("branch %d = %+v", i, br)
		}
	}
	if decs[1].Master != "m1" || len(decs[1].Branches) != 0 {
		t.Errorf("decoder 1 = %+v", decs[1])
	}
}
