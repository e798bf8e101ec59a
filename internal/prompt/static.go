package prompt

import (
	"strconv"

	"ngscaffold/pkg/choices"
)

// Static answers from fixed values, falling back to each question's default.
// It never blocks, so it serves --defaults, config file answers and tests.
type Static struct {
	Bools   map[string]bool
	Lists   map[string][]string
	Strings map[string]string

	// Asked records the names of the questions asked, in order.
	Asked []string
}

// FromChoices returns a Static prompter that reproduces c.
func FromChoices(c choices.Choices) *Static {
	return &Static{
		Bools: map[string]bool{
			NameCoffee:           c.Coffee,
			NameTypeScript:       c.TypeScript,
			NameTypeScriptConfig: c.TypeScriptConfig,
			NamePartialsCache:    c.PartialsCache,
			NameBootstrap:        c.Bootstrap,
			NameCompassBootstrap: c.CompassBootstrap,
		},
		Lists:   map[string][]string{NameModules: append([]string{}, c.Modules...)},
		Strings: map[string]string{NameAppName: c.AppName},
	}
}

func (s *Static) Confirm(q Question) (bool, error) {
	s.Asked = append(s.Asked, q.Name)
	if v, ok := s.Bools[q.Name]; ok {
		return v, nil
	}
	v, _ := strconv.ParseBool(q.Default)
	return v, nil
}

func (s *Static) Checkbox(q Question, options []Option) ([]string, error) {
	s.Asked = append(s.Asked, q.Name)
	if v, ok := s.Lists[q.Name]; ok {
		return append([]string{}, v...), nil
	}
	var out []string
	for _, o := range options {
		if o.Checked {
			out = append(out, o.Value)
		}
	}
	return out, nil
}

func (s *Static) Input(q Question) (string, error) {
	s.Asked = append(s.Asked, q.Name)
	if v, ok := s.Strings[q.Name]; ok && v != "" {
		return v, nil
	}
	return q.Default, nil
}

// Preset answers the named confirms in Bools itself and passes every other
// question to Prompter. CLI flags use it to skip the questions they settle.
type Preset struct {
	Prompter Prompter
	Bools    map[string]bool
}

func (p *Preset) Confirm(q Question) (bool, error) {
	if v, ok := p.Bools[q.Name]; ok {
		return v, nil
	}
	return p.Prompter.Confirm(q)
}

func (p *Preset) Checkbox(q Question, options []Option) ([]string, error) {
	return p.Prompter.Checkbox(q, options)
}

func (p *Preset) Input(q Question) (string, error) {
	return p.Prompter.Input(q)
}
