package config

import (
	"fmt"
	"sort"
)

var builtinProfiles = map[string]Profile{
	"double": {
		Name:        "double",
		Description: "scalar float64, random init, percentage mutation, average crossover, random selection, 10 generations",
		Population:  36,
		Numeral:     "float64",
		Initiation:  PolicySpec{Policy: "random", Min: 0, Max: 2137},
		Mutation:    PolicySpec{Policy: "percentage", Chance: 0.1, Intensity: 10},
		Crossover:   PolicySpec{Policy: "average", Weight: 0.3},
		Selection:   PolicySpec{Policy: "random"},
		Stop:        PolicySpec{Policy: "max_generation", Limit: 10},
	},
	"vector-double": {
		Name:        "vector-double",
		Description: "4-vector float64, linspace init, absolute mutation, random crossover, target selection, stable average",
		Population:  36,
		Numeral:     "float64",
		Dimension:   4,
		Initiation:  PolicySpec{Policy: "linspace", Min: 0, Max: 2137},
		Mutation:    PolicySpec{Policy: "absolute", Chance: 0.1, Intensity: 10},
		Crossover:   PolicySpec{Policy: "random"},
		Selection:   PolicySpec{Policy: "target", First: 0.3, Last: 0.001, Weighting: "linear"},
		Stop:        PolicySpec{Policy: "stable_average", Threshold: 10},
	},
	"int": {
		Name:        "int",
		Description: "scalar int, random init, absolute mutation, average crossover, unique random selection, stable average",
		Population:  36,
		Numeral:     "int",
		Initiation:  PolicySpec{Policy: "random", Min: 0, Max: 2137},
		Mutation:    PolicySpec{Policy: "absolute", Chance: 0.1, Intensity: 10},
		Crossover:   PolicySpec{Policy: "average", Weight: 0.3},
		Selection:   PolicySpec{Policy: "unique_random"},
		Stop:        PolicySpec{Policy: "stable_average", Threshold: 10},
	},
	"vector-int": {
		Name:        "vector-int",
		Description: "4-vector int, random init, percentage mutation, random crossover, unique random selection, 10 generations",
		Population:  36,
		Numeral:     "int",
		Dimension:   4,
		Initiation:  PolicySpec{Policy: "random", Min: 0, Max: 2137},
		Mutation:    PolicySpec{Policy: "percentage", Chance: 0.1, Intensity: 10},
		Crossover:   PolicySpec{Policy: "random"},
		Selection:   PolicySpec{Policy: "unique_random"},
		Stop:        PolicySpec{Policy: "max_generation", Limit: 10},
	},
}

// Builtin returns a copy of the named built-in profile.
func Builtin(name string) (Profile, error) {
	p, ok := builtinProfiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile: %s", name)
	}
	return p, nil
}

// BuiltinNames lists the built-in profiles in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
