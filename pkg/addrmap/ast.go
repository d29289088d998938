package addrmap

import "fmt"

// Range is a master's configured address window.
// Example: "32'h0000 to 32'h0FFF"
type Range struct {
	Start string `@Word`
	End   string `"to" @Word`
}

// String renders the range in configuration syntax.
func (r *Range) String() string {
	return fmt.Sprintf("%s to %s", r.Start, r.End)
}

// literal is the raw parse of a Verilog number.
type literal struct {
	Size  *string `@Digits?`
	Based *based  `@@?`
}

// based is the base specifier and digits following an apostrophe.
type based struct {
	Base   string `@Base`
	Digits string `@Digits`
}

// Literal is a decoded Verilog number literal.
type Literal struct {
	Width  int    // declared bit width, 0 when unsized
	Signed bool   // 's' flag present
	Base   byte   // 'b', 'o', 'd' or 'h'
	Digits string // digits as written, underscores included
}
