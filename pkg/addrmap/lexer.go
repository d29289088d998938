package addrmap

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// RangeLexer splits an "Address Map" value into whitespace separated words.
// The separator "to" is matched by value in the grammar, so address tokens
// may contain any non-space characters (32'h0000, 0x1000, ADDR_BASE).
var RangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Word", Pattern: `\S+`},
})

// LiteralLexer tokenizes a Verilog number literal.
//
//	32'h0FFF   -> Digits("32") Base("'h") Digits("0FFF")
//	'sd12      -> Base("'sd") Digits("12")
//	4096       -> Digits("4096")
var LiteralLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Base", Pattern: `'[sS]?[bBoOdDhH]`},
	{Name: "Digits", Pattern: `[0-9a-fA-FxXzZ?][0-9a-fA-FxXzZ?_]*`},
})
