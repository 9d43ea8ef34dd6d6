package generator

// Option represents one command-line switch declared in the Options section
// of a script's leading comment block.
type Option struct {
	// Short is the single-character option name, e.g. "a" for -a.
	Short string `validate:"required,len=1,shortname"`
	// Long is the long option name, e.g. "Aa" for --Aa.
	Long string `validate:"required,longname"`
	// Argument names the value the option accepts. An option with an
	// Argument is a value option; without one it is a switch.
	Argument string `validate:"omitempty,argname"`
	// Description is the free-text explanation. Continuation lines are
	// joined with embedded newlines.
	Description string `validate:"required"`
	// Value is the initial value declared by a Default: line, if any.
	Value string
}

// TakesArgument reports whether the option expects a value on the command line.
func (o *Option) TakesArgument() bool {
	return o.Argument != ""
}

// Document is the model extracted from a script's leading comment block.
// The emitter and the documentation renderers consume it read-only.
type Document struct {
	// Help is the full help text, one line per qualifying comment line,
	// including the Options section itself.
	Help string
	// Options lists the declared options in source order.
	Options []Option
}
