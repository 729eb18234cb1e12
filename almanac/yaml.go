package almanac

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Seeds  []int       `yaml:"seeds,flow"`
	Stages []yamlStage `yaml:"stages"`
}

type yamlStage struct {
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
	Rules [][]int `yaml:"rules,flow"`
}

// DecodeYAML reads the YAML almanac layout from r.
func DecodeYAML(r io.Reader, opts ...Option) (*Almanac, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("almanac: decode yaml: %w", err)
	}
	asm := newAssembler(opts)
	if doc.Seeds != nil {
		if err := asm.setSeeds(doc.Seeds); err != nil {
			return nil, &ParseError{Err: err}
		}
	}
	for i, st := range doc.Stages {
		if err := asm.openStage(st.From, st.To); err != nil {
			return nil, &ParseError{Err: fmt.Errorf("stages[%d]: %w", i, err)}
		}
		for j, triple := range st.Rules {
			if len(triple) != 3 {
				return nil, &ParseError{Err: fmt.Errorf("stages[%d].rules[%d]: %w: want 3 numbers, got %d", i, j, ErrBadRule, len(triple))}
			}
			if err := asm.addRule(triple[0], triple[1], triple[2]); err != nil {
				return nil, &ParseError{Err: fmt.Errorf("stages[%d].rules[%d]: %w", i, j, err)}
			}
		}
	}

	return asm.finish()
}

// EncodeYAML writes a in the YAML layout accepted by DecodeYAML.
func (a *Almanac) EncodeYAML(w io.Writer) error {
	doc := yamlDocument{Seeds: a.Seeds}
	for _, s := range a.Stages {
		ys := yamlStage{From: s.From, To: s.To, Rules: make([][]int, 0, len(s.Rules))}
		for _, r := range s.Rules {
			ys.Rules = append(ys.Rules, []int{r.Destination().Start, r.Source.Start, r.Source.Len()})
		}
		doc.Stages = append(doc.Stages, ys)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("almanac: encode yaml: %w", err)
	}

	return enc.Close()
}
