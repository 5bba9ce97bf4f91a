package numevo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numevo/internal/evo"
)

func doubleRequest() RunRequest {
	return RunRequest{
		Name:       "double",
		Population: 36,
		Numeral:    "float64",
		Seed:       2137,
		Initiation: Policy{Name: "random", Min: 0, Max: 2137},
		Mutation:   Policy{Name: "percentage", Chance: 0.1, Intensity: 10},
		Crossover:  Policy{Name: "average", Weight: 0.3},
		Selection:  Policy{Name: "random"},
		Stop:       Policy{Name: "max_generation", Limit: 10},
	}
}

func TestClientRunScalarDouble(t *testing.T) {
	var out bytes.Buffer
	summary, err := NewClient(Options{}).Run(doubleRequest(), &out)
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Generations)
	assert.Equal(t, 36, summary.PopulationSize)
	require.Len(t, summary.Population, 36)
	require.Len(t, summary.Diagnostics, 11)
	_, err = uuid.Parse(summary.RunID)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "Algorithm stopped after 10 generations.\n"))
}

func TestClientRunVectorInt(t *testing.T) {
	req := RunRequest{
		Name:       "vector-int",
		Population: 10,
		Numeral:    "integer",
		Dimension:  4,
		Seed:       5,
		Initiation: Policy{Name: "linspace", Min: 0, Max: 2137},
		Mutation:   Policy{Name: "percentage", Chance: 0.1, Intensity: 10},
		Crossover:  Policy{Name: "random"},
		Selection:  Policy{Name: "unique-random"},
		Stop:       Policy{Name: "max_generation", Limit: 3},
	}
	summary, err := NewClient(Options{}).Run(req, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Generations)
	for _, individual := range summary.Population {
		require.Len(t, individual, 4)
		for _, v := range individual {
			assert.Equal(t, float64(int64(v)), v, "int components stay integral")
		}
	}
}

func TestClientRunPassesObserver(t *testing.T) {
	observer := &countingObserver{}
	_, err := NewClient(Options{Observer: observer}).Run(doubleRequest(), nil)
	require.NoError(t, err)
	assert.Equal(t, 11, observer.generations)
	assert.Equal(t, "max_generation", observer.stop)
}

func TestClientRunRejectsBadRequests(t *testing.T) {
	req := doubleRequest()
	req.Numeral = "complex128"
	_, err := NewClient(Options{}).Run(req, nil)
	assert.ErrorIs(t, err, evo.ErrConfig)

	req = doubleRequest()
	req.Dimension = -2
	_, err = NewClient(Options{}).Run(req, nil)
	assert.ErrorIs(t, err, evo.ErrConfig)

	req = doubleRequest()
	req.Selection = Policy{Name: "tournament"}
	_, err = NewClient(Options{}).Run(req, nil)
	assert.ErrorIs(t, err, evo.ErrUnknownPolicy)

	req = doubleRequest()
	req.Population = 1
	var out bytes.Buffer
	_, err = NewClient(Options{}).Run(req, &out)
	assert.ErrorIs(t, err, evo.ErrConfig)
	assert.Empty(t, out.String(), "nothing is reported for a rejected configuration")
}

func TestParseNumeral(t *testing.T) {
	for in, want := range map[string]string{
		"":        NumeralFloat64,
		"Double":  NumeralFloat64,
		"float":   NumeralFloat64,
		"int":     NumeralInt,
		" int64 ": NumeralInt,
	} {
		got, err := ParseNumeral(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseNumeral("uint8")
	assert.ErrorIs(t, err, evo.ErrConfig)
}

type countingObserver struct {
	generations int
	stop        string
}

func (o *countingObserver) ObserveGeneration(evo.GenerationDiagnostics) { o.generations++ }

func (o *countingObserver) ObserveStop(_ int, stop string) { o.stop = stop }
