package params

import (
	"fmt"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"
)

// Parameters holds request parameters in insertion order.
// A nil *Parameters reads as empty.
type Parameters struct {
	names  []string
	values map[string]string
}

// Parameter is a single name/value entry as it appears in a parameters file
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// New returns an empty Parameters
func New() *Parameters {
	return &Parameters{
		values: make(map[string]string),
	}
}

// Set adds the parameter. If name is already present its value is replaced
// and it keeps its original position.
func (p *Parameters) Set(name, value string) *Parameters {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
	return p
}

// SetAll adds every parameter of other, in other's order
func (p *Parameters) SetAll(other *Parameters) *Parameters {
	other.Range(func(name, value string) bool {
		p.Set(name, value)
		return true
	})
	return p
}

func (p *Parameters) Get(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[name]
	return v, ok
}

func (p *Parameters) Delete(name string) {
	if p == nil {
		return
	}
	if _, ok := p.values[name]; !ok {
		return
	}
	delete(p.values, name)
	for i, n := range p.names {
		if n == name {
			p.names = append(p.names[:i], p.names[i+1:]...)
			break
		}
	}
}

func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Names returns a copy of the parameter names in order
func (p *Parameters) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Range calls fn for each parameter in order until fn returns false
func (p *Parameters) Range(fn func(name, value string) bool) {
	if p == nil {
		return
	}
	for _, name := range p.names {
		if !fn(name, p.values[name]) {
			return
		}
	}
}

func (p *Parameters) Clone() *Parameters {
	return New().SetAll(p)
}

func (p *Parameters) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	i := 0
	p.Range(func(name, value string) bool {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(name + "=" + value)
		i++
		return true
	})
	sb.WriteString("]")
	return sb.String()
}

// FromMap builds Parameters from m. Map iteration order is random, so the
// entries are added sorted by name.
func FromMap(m map[string]string) *Parameters {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	p := New()
	for _, name := range names {
		p.Set(name, m[name])
	}
	return p
}

// FromPairs parses "name=value" entries. An entry without "=" is added with
// an empty value.
func FromPairs(pairs []string) *Parameters {
	p := New()
	for _, pair := range pairs {
		s := strings.SplitN(pair, "=", 2)
		if len(s) < 2 {
			p.Set(pair, "")
		} else {
			p.Set(s[0], s[1])
		}
	}
	return p
}

// FromYAML decodes a YAML or JSON list of name/value objects
func FromYAML(in []byte) (*Parameters, error) {
	var list []Parameter
	if err := yaml.Unmarshal(in, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parameters list: %w", err)
	}

	p := New()
	for i, param := range list {
		if len(param.Name) == 0 {
			return nil, fmt.Errorf("parameter at index %d has no name", i)
		}
		p.Set(param.Name, param.Value)
	}
	return p, nil
}
