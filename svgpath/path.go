// Implements the accumulation of SVG path data:
// typed drawing operations are formatted into
// the textual "d" attribute, and kept in order
// so that painting drivers can replay them.
package svgpath

import (
	"math"
	"strconv"
	"strings"
)

// Mode selects between absolute and relative coordinates.
type Mode uint8

const (
	// Inherit resolves to the default mode of the path, at the time of the call.
	Inherit Mode = iota
	Absolute
	Relative
)

func (m Mode) String() string {
	switch m {
	case Inherit:
		return "Inherit"
	case Absolute:
		return "Absolute"
	case Relative:
		return "Relative"
	default:
		return "<unknown Mode>"
	}
}

// Format returns the path fragment for the command `letter`.
// The letter is upper-cased unless `relative` is true.
// A nil `args` produces the bare letter; otherwise arguments
// are grouped by pairs ("x,y") and each group is followed by a space.
func Format(letter byte, args []float64, relative bool) string {
	if !relative && 'a' <= letter && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if args == nil {
		return string(letter)
	}
	var b strings.Builder
	b.WriteByte(letter)
	b.WriteByte(' ')
	for i, a := range args {
		b.WriteString(FormatNumber(a))
		if i%2 == 0 && i+1 < len(args) {
			b.WriteByte(',')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// FormatNumber returns the shortest decimal representation of `f`.
// Magnitudes below 1e-6 or from 1e21 use the exponent form (1e+21).
func FormatNumber(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Data accumulates path commands. It is append-only:
// a command, once added, is never rewritten.
// The zero value is an empty path in absolute mode.
// A Data must not be copied after its first use.
type Data struct {
	d    strings.Builder
	ops  []Command
	mode Mode // default, never Inherit once set
	raw  bool // seeded with external path data
}

// Command is an operation together with the mode it was emitted in.
type Command struct {
	Op       Operation
	Relative bool
}

// NewData returns path data starting with the literal instructions `seed`,
// whose later commands default to `mode`.
func NewData(seed string, mode Mode) *Data {
	var p Data
	p.d.WriteString(seed)
	p.raw = seed != ""
	p.SetDefault(mode)
	return &p
}

// Default returns the mode used for commands added with `Inherit`.
func (p *Data) Default() Mode {
	if p.mode == Inherit {
		return Absolute
	}
	return p.mode
}

// SetDefault changes the mode used by the following `Inherit` commands.
// Passing `Inherit` resets to `Absolute`.
func (p *Data) SetDefault(mode Mode) {
	if mode == Inherit {
		mode = Absolute
	}
	p.mode = mode
}

// Resolve returns the effective mode for a command added now.
func (p *Data) Resolve(mode Mode) Mode {
	if mode == Inherit {
		return p.Default()
	}
	return mode
}

// Append formats `op` with the resolved `mode` and adds it at the end of the path.
// `Close` ignores the mode.
func (p *Data) Append(op Operation, mode Mode) {
	relative := p.Resolve(mode) == Relative
	if _, ok := op.(Close); ok {
		relative = false
	}
	p.d.WriteString(Fragment(op, relative))
	p.ops = append(p.ops, Command{Op: op, Relative: relative})
}

// String returns the accumulated "d" attribute.
func (p *Data) String() string {
	return p.d.String()
}

// Commands returns the recorded commands, in call order.
// The literal seed, if any, is not included, see `Raw`.
func (p *Data) Commands() []Command {
	return append([]Command(nil), p.ops...)
}

// Raw returns true if the path has been seeded with literal instructions,
// which are not reflected by `Commands`.
func (p *Data) Raw() bool { return p.raw }

// Len returns the number of recorded commands.
func (p *Data) Len() int { return len(p.ops) }
