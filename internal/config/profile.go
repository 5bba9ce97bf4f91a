package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"numevo/pkg/numevo"
)

const (
	EnvPopulation = "NUMEVO_POPULATION"
	EnvSeed       = "NUMEVO_SEED"
)

// Profile is a complete run description as stored in a YAML file.
type Profile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Population  int        `yaml:"population"`
	Numeral     string     `yaml:"numeral"`
	Dimension   int        `yaml:"dimension"`
	Seed        int64      `yaml:"seed,omitempty"`
	Initiation  PolicySpec `yaml:"initiation"`
	Mutation    PolicySpec `yaml:"mutation"`
	Crossover   PolicySpec `yaml:"crossover"`
	Selection   PolicySpec `yaml:"selection"`
	Stop        PolicySpec `yaml:"stop"`
}

// PolicySpec names a policy and its parameters.
type PolicySpec struct {
	Policy    string  `yaml:"policy"`
	Min       float64 `yaml:"min,omitempty"`
	Max       float64 `yaml:"max,omitempty"`
	Chance    float64 `yaml:"chance,omitempty"`
	Intensity float64 `yaml:"intensity,omitempty"`
	Weight    float64 `yaml:"weight,omitempty"`
	First     float64 `yaml:"first,omitempty"`
	Last      float64 `yaml:"last,omitempty"`
	Weighting string  `yaml:"weighting,omitempty"`
	Limit     int     `yaml:"limit,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
}

// Load reads a profile from a YAML file. Unknown keys are rejected.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var p Profile
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Marshal renders the profile as YAML.
func (p Profile) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Validate checks the fields a profile needs before policies are resolved.
// Policy parameters are checked when the engine is built.
func (p Profile) Validate() error {
	var errs []error
	if p.Population <= 0 {
		errs = append(errs, fmt.Errorf("population must be > 0, got %d", p.Population))
	}
	if _, err := numevo.ParseNumeral(p.Numeral); err != nil {
		errs = append(errs, err)
	}
	if p.Dimension < 0 {
		errs = append(errs, fmt.Errorf("dimension must be >= 0, got %d", p.Dimension))
	}
	specs := []struct {
		family string
		spec   PolicySpec
	}{
		{"initiation", p.Initiation},
		{"mutation", p.Mutation},
		{"crossover", p.Crossover},
		{"selection", p.Selection},
		{"stop", p.Stop},
	}
	for _, s := range specs {
		if strings.TrimSpace(s.spec.Policy) == "" {
			errs = append(errs, fmt.Errorf("%s policy is required", s.family))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid profile %q: %w", p.Name, errors.Join(errs...))
	}
	return nil
}

// ApplyEnv overrides population and seed from the environment.
func (p *Profile) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPopulation); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPopulation, err)
		}
		p.Population = n
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		p.Seed = seed
	}
	return nil
}

// RunRequest converts the profile to an API request.
func (p Profile) RunRequest() numevo.RunRequest {
	return numevo.RunRequest{
		Name:       p.Name,
		Population: p.Population,
		Numeral:    p.Numeral,
		Dimension:  p.Dimension,
		Seed:       p.Seed,
		Initiation: p.Initiation.policy(),
		Mutation:   p.Mutation.policy(),
		Crossover:  p.Crossover.policy(),
		Selection:  p.Selection.policy(),
		Stop:       p.Stop.policy(),
	}
}

func (s PolicySpec) policy() numevo.Policy {
	return numevo.Policy{
		Name:      s.Policy,
		Min:       s.Min,
		Max:       s.Max,
		Chance:    s.Chance,
		Intensity: s.Intensity,
		Weight:    s.Weight,
		First:     s.First,
		Last:      s.Last,
		Weighting: s.Weighting,
		Limit:     s.Limit,
		Threshold: s.Threshold,
	}
}
