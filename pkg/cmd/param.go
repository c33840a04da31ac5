package cmd

// Param describes one command parameter: how its raw tokens are parsed and
// how the result resolves to a final value. Params are built once at
// registration time and never mutated afterwards.
type Param struct {
	name     string
	parser   Parser
	required bool
	def      any
	multiple bool
	short    rune
	flag     bool
	bareTrue bool

	requiredSet bool
	flagSet     bool
}

// ParamOption adjusts a Param under construction.
type ParamOption func(*Param)

// Required marks the parameter as mandatory or optional explicitly. When not
// used, the parameter is required exactly when it has no default.
func Required(v bool) ParamOption {
	return func(p *Param) { p.required = v; p.requiredSet = true }
}

// Default supplies the value the parameter resolves to when no tokens were
// bound. Setting a default makes the parameter optional unless Required(true)
// is also given, which is a configuration error.
func Default(v any) ParamOption {
	return func(p *Param) { p.def = v }
}

// Multiple makes the parameter resolve to the full ordered value list instead
// of the last value.
func Multiple() ParamOption {
	return func(p *Param) { p.multiple = true }
}

// Short sets a one-character alias, e.g. -v for --verbose. A short alias
// implies a flag parameter.
func Short(r rune) ParamOption {
	return func(p *Param) { p.short = r }
}

// Flag marks the parameter as name-addressed (--name) rather than positional.
// When not used, the parameter is a flag exactly when it has a short alias.
func Flag(v bool) ParamOption {
	return func(p *Param) { p.flag = v; p.flagSet = true }
}

// PresenceImpliesTrue makes a flag that appears without any value bind
// directly to true, without consulting the parser.
func PresenceImpliesTrue() ParamOption {
	return func(p *Param) { p.bareTrue = true }
}

// NewParam builds a parameter descriptor, validating its structural
// invariants. Violations return a *ConfigurationError.
func NewParam(name string, parser Parser, opts ...ParamOption) (*Param, error) {
	p := &Param{name: name, parser: parser}
	for _, opt := range opts {
		opt(p)
	}
	if parser == nil {
		return nil, &ConfigurationError{Param: name, Reason: "parameter needs a parser"}
	}
	if p.requiredSet && p.required && p.def != nil {
		return nil, &ConfigurationError{Param: name, Reason: "parameter cannot be required and have a default value"}
	}
	if p.flagSet && !p.flag && p.short != 0 {
		return nil, &ConfigurationError{Param: name, Reason: "parameters with short aliases must be flags"}
	}
	if !p.requiredSet {
		p.required = p.def == nil
	}
	if !p.flagSet {
		p.flag = p.short != 0
	}
	return p, nil
}

// MustParam is NewParam for static command tables; it panics on a
// configuration error, aborting startup.
func MustParam(name string, parser Parser, opts ...ParamOption) *Param {
	p, err := NewParam(name, parser, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the parameter's name, unique within its command.
func (p *Param) Name() string { return p.name }

// IsFlag reports whether the parameter is name-addressed.
func (p *Param) IsFlag() bool { return p.flag }

// bind resolves the raw tokens routed to this parameter. Every token runs
// through the parser and the per-token value lists are flattened in
// encounter order; zero resulting values fall back to the default or fail
// when the parameter is required.
func (p *Param) bind(raw []string) (any, error) {
	var matches []any
	for _, r := range raw {
		vals, err := p.parser.Parse(r)
		if err != nil {
			return nil, err
		}
		matches = append(matches, vals...)
	}
	if len(matches) == 0 {
		if p.required {
			return nil, &MissingParameterError{Param: p.name}
		}
		return p.def, nil
	}
	if p.multiple {
		return matches, nil
	}
	return matches[len(matches)-1], nil
}

// bindFlag is bind for flag parameters: when the flag opted into
// presence-implies-true and appeared only bare, it short-circuits to true.
func (p *Param) bindFlag(raw []string, present bool) (any, error) {
	if p.bareTrue && present && allEmpty(raw) {
		if p.multiple {
			return []any{true}, nil
		}
		return true, nil
	}
	return p.bind(raw)
}

func allEmpty(raw []string) bool {
	for _, r := range raw {
		if r != "" {
			return false
		}
	}
	return true
}
