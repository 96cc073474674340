package oniguru

import (
	"os"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
	"gotest.tools/v3/assert"
)

type scenario struct {
	Name       string            `yaml:"name"`
	Pattern    string            `yaml:"pattern"`
	Options    int32             `yaml:"options"`
	Input      string            `yaml:"input"`
	WantMatch  string            `yaml:"want_match"`
	WantGroups map[string]string `yaml:"want_groups"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(raw, &scenarios))
	require.NotEmpty(t, scenarios)
	return scenarios
}

func TestScenarios_Fixtures(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			re, err := Compile(sc.Pattern, RegexOptions(sc.Options))
			assert.NilError(t, err)

			m, err := re.FirstMatch(sc.Input, 0)
			assert.NilError(t, err)
			assert.Assert(t, m != nil, "expected a match for scenario %q", sc.Name)
			assert.Equal(t, sc.WantMatch, m.String())

			got := map[string]string{}
			for num := 0; num <= m.GroupCount(); num++ {
				if s := m.GroupAt(num); s != nil {
					got[strconv.Itoa(num)] = *s
				}
			}
			if diff := cmp.Diff(sc.WantGroups, got); diff != "" {
				t.Errorf("scenario %q: group mismatch (-want +got):\n%s", sc.Name, diff)
			}
		})
	}
}
