package addrmap

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
)

var (
	rangeParser = participle.MustBuild[Range](
		participle.Lexer(RangeLexer),
		participle.Elide("Whitespace"),
	)

	literalParser = participle.MustBuild[literal](
		participle.Lexer(LiteralLexer),
	)
)

// ParseRange parses an "<start> to <end>" address window. Both tokens are
// kept verbatim; they are not decoded.
func ParseRange(s string) (*Range, error) {
	r, err := rangeParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid address map %q", s)
	}
	return r, nil
}

// ParseLiteral parses a Verilog number literal such as 32'h0FFF or 4096.
func ParseLiteral(s string) (*Literal, error) {
	raw, err := literalParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid literal %q", s)
	}

	lit := &Literal{Base: 'd'}
	switch {
	case raw.Based == nil && raw.Size != nil:
		// No base specifier: decimal, or C style 0x hex.
		lit.Digits = *raw.Size
		if len(lit.Digits) > 2 && strings.EqualFold(lit.Digits[:2], "0x") {
			lit.Base = 'h'
			lit.Digits = lit.Digits[2:]
		}
	case raw.Based != nil:
		if raw.Size != nil {
			width, err := strconv.Atoi(strings.ReplaceAll(*raw.Size, "_", ""))
			if err != nil || width <= 0 {
				return nil, errors.Errorf("invalid literal %q: bad width %q", s, *raw.Size)
			}
			lit.Width = width
		}
		spec := strings.ToLower(raw.Based.Base)
		lit.Signed = strings.Contains(spec, "s")
		lit.Base = spec[len(spec)-1]
		lit.Digits = raw.Based.Digits
	default:
		return nil, errors.Errorf("invalid literal %q: empty", s)
	}
	return lit, nil
}

// Radix returns the numeric base of the literal.
func (l *Literal) Radix() int {
	switch l.Base {
	case 'b':
		return 2
	case 'o':
		return 8
	case 'h':
		return 16
	default:
		return 10
	}
}

// Value decodes the literal. Literals containing x, z or ? digits have no
// single value and return an error.
func (l *Literal) Value() (uint64, error) {
	digits := strings.ReplaceAll(l.Digits, "_", "")
	if strings.ContainsAny(digits, "xXzZ?") {
		return 0, errors.Errorf("literal %s has unknown bits", l)
	}
	v, err := strconv.ParseUint(digits, l.Radix(), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "literal %s", l)
	}
	if l.Width > 0 && l.Width < 64 && v >= 1<<uint(l.Width) {
		return 0, errors.Errorf("literal %s does not fit in %d bits", l, l.Width)
	}
	return v, nil
}

// String renders the literal in Verilog syntax.
func (l *Literal) String() string {
	var b strings.Builder
	if l.Width > 0 {
		b.WriteString(strconv.Itoa(l.Width))
	}
	if l.Width > 0 || l.Base != 'd' || l.Signed {
		b.WriteByte('\'')
		if l.Signed {
			b.WriteByte('s')
		}
		b.WriteByte(l.Base)
	}
	b.WriteString(l.Digits)
	return b.String()
}

// Bounds decodes both ends of the range as Verilog literals.
func (r *Range) Bounds() (lo, hi uint64, err error) {
	start, err := ParseLiteral(r.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseLiteral(r.End)
	if err != nil {
		return 0, 0, err
	}
	if lo, err = start.Value(); err != nil {
		return 0, 0, err
	}
	if hi, err = end.Value(); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}
