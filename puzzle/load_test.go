package puzzle_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/sidhantpanda/FoxGooseCorn/puzzle"
)

func TestLoadFile_Classic(t *testing.T) {
	def, err := puzzle.LoadFile(context.Background(), "testdata/classic.hcl")
	require.NoError(t, err)

	if diff := cmp.Diff(puzzle.Classic(), def); diff != "" {
		t.Fatalf("classic definition mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_DefaultsStartAndGoal(t *testing.T) {
	def, err := puzzle.LoadFile(context.Background(), "testdata/wolf_sheep_cabbage_dog.hcl")
	require.NoError(t, err)
	require.Equal(t, "shepherd", def.Farmer)
	require.Empty(t, def.Start)
	require.Empty(t, def.Goal)

	start, err := def.StartState()
	require.NoError(t, err)
	require.Equal(t, "11111", start.Key())

	g, err := puzzle.BuildGraph(def)
	require.NoError(t, err)
	require.Equal(t, 32, g.Len())
}

func TestParse_LiteralKeys(t *testing.T) {
	src := []byte(`
puzzle "half-way" {
  passengers = ["fox", "goose", "corn"]
  conflict {
    predator = "goose"
    prey     = "corn"
  }
  start = "1010"
  goal  = all_far
}
`)
	def, err := puzzle.Parse(context.Background(), src, "inline.hcl")
	require.NoError(t, err)
	require.Equal(t, "1010", def.Start)
	require.Equal(t, "0000", def.Goal)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"syntax": {src: `puzzle "x" {`},
		"missing passengers": {src: `puzzle "x" {}`},
		"unknown variable": {src: `puzzle "x" {
  passengers = ["fox"]
  start = nowhere
}`},
		"bad key": {src: `puzzle "x" {
  passengers = ["fox"]
  goal = "012"
}`, want: puzzle.ErrBadStateKey},
		"list key": {src: `puzzle "x" {
  passengers = ["fox"]
  goal = ["0", "0"]
}`, want: puzzle.ErrBadStateKey},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := puzzle.Parse(context.Background(), []byte(tc.src), name+".hcl")
			require.Error(t, err)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}
