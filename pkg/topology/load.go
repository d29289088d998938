package topology

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/switchgen/pkg/addrmap"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Configuration keys as they appear in the input file.
const (
	KeyAddressWidth = "Address Width"
	KeyDataWidth    = "Data Width"
	KeyPorts        = "Ports"
	KeyPortName     = "Port Name"
	KeyPortType     = "Port Type"
	KeyAddressMap   = "Address Map"
)

// Format selects the decoder used for configuration text.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatForPath picks a format from the file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// rawConfig mirrors the file layout. Pointers distinguish absent keys from
// zero values.
type rawConfig struct {
	AddressWidth *int       `json:"Address Width" yaml:"Address Width"`
	DataWidth    *int       `json:"Data Width" yaml:"Data Width"`
	Ports        *[]rawPort `json:"Ports" yaml:"Ports"`
}

type rawPort struct {
	Name       *string `json:"Port Name" yaml:"Port Name"`
	Type       *string `json:"Port Type" yaml:"Port Type"`
	AddressMap *string `json:"Address Map" yaml:"Address Map"`
}

// LoadFile reads and decodes the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "topology: read config")
	}
	return decode(data, FormatForPath(path), path)
}

// Load decodes a configuration from r.
func Load(r io.Reader, format Format) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "topology: read config")
	}
	return decode(data, format, "")
}

func decode(data []byte, format Format, path string) (*Config, error) {
	var raw rawConfig
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return raw.build()
}

func (raw *rawConfig) build() (*Config, error) {
	if raw.AddressWidth == nil {
		return nil, &FieldError{Field: KeyAddressWidth, Port: -1}
	}
	if raw.DataWidth == nil {
		return nil, &FieldError{Field: KeyDataWidth, Port: -1}
	}
	if raw.Ports == nil {
		return nil, &FieldError{Field: KeyPorts, Port: -1}
	}

	cfg := &Config{
		AddressWidth: *raw.AddressWidth,
		DataWidth:    *raw.DataWidth,
		Ports:        make([]Port, 0, len(*raw.Ports)),
	}

	for i, rp := range *raw.Ports {
		if rp.Type == nil {
			return nil, &FieldError{Field: KeyPortType, Port: i}
		}
		if rp.Name == nil {
			return nil, &FieldError{Field: KeyPortName, Port: i}
		}

		// Address maps only belong to masters; other ports keep theirs unread.
		port := Port{Name: *rp.Name, Type: *rp.Type}
		if rp.AddressMap != nil && port.Role() == RoleMaster {
			r, err := addrmap.ParseRange(*rp.AddressMap)
			if err != nil {
				return nil, &FieldError{Field: KeyAddressMap, Port: i, Err: err}
			}
			port.AddressMap = r
		}
		cfg.Ports = append(cfg.Ports, port)
	}

	return cfg, nil
}
