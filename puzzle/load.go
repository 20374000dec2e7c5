package puzzle

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/sidhantpanda/FoxGooseCorn/internal/ctxlog"
)

// hclFile is the top-level structure of a puzzle file:
//
//	puzzle "classic" {
//	  farmer     = "farmer"
//	  passengers = ["fox", "goose", "corn"]
//	  conflict {
//	    predator = "fox"
//	    prey     = "goose"
//	  }
//	  start = all_near
//	  goal  = all_far
//	}
type hclFile struct {
	Puzzle hclPuzzle `hcl:"puzzle,block"`
}

type hclPuzzle struct {
	Name       string         `hcl:"name,label"`
	Farmer     string         `hcl:"farmer,optional"`
	Passengers []string       `hcl:"passengers"`
	Conflicts  []*hclConflict `hcl:"conflict,block"`
	Start      hcl.Expression `hcl:"start,optional"`
	Goal       hcl.Expression `hcl:"goal,optional"`
}

type hclConflict struct {
	Predator string `hcl:"predator"`
	Prey     string `hcl:"prey"`
}

// LoadFile parses and validates the puzzle definition stored at path.
func LoadFile(ctx context.Context, path string) (*Definition, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading puzzle definition.", "path", path)

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse puzzle file %s: %w", path, diags)
	}

	return decode(ctx, f, path)
}

// Parse parses and validates a puzzle definition from src. filename is used
// only in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse puzzle file %s: %w", filename, diags)
	}

	return decode(ctx, f, filename)
}

func decode(ctx context.Context, f *hcl.File, filename string) (*Definition, error) {
	logger := ctxlog.FromContext(ctx)

	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode puzzle file %s: %w", filename, diags)
	}

	p := parsed.Puzzle
	def := &Definition{
		Name:       p.Name,
		Farmer:     p.Farmer,
		Passengers: p.Passengers,
	}
	for _, c := range p.Conflicts {
		def.Conflicts = append(def.Conflicts, Conflict{Predator: c.Predator, Prey: c.Prey})
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"all_near": cty.StringVal(AllNear(def).Key()),
			"all_far":  cty.StringVal(AllFar(def).Key()),
		},
	}

	var err error
	if def.Start, err = evalKey(p.Start, evalCtx); err != nil {
		return nil, fmt.Errorf("puzzle %q: start: %w", p.Name, err)
	}
	if def.Goal, err = evalKey(p.Goal, evalCtx); err != nil {
		return nil, fmt.Errorf("puzzle %q: goal: %w", p.Name, err)
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("puzzle %q: %w", p.Name, err)
	}
	logger.Debug("Puzzle definition loaded.", "name", def.Name, "passengers", len(def.Passengers),
		"conflicts", len(def.Conflicts), "start", def.Start, "goal", def.Goal)

	return def, nil
}

// evalKey evaluates an optional state-key expression. A missing attribute yields "".
func evalKey(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	if expr == nil {
		return "", nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", nil
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadStateKey, err)
	}
	var key string
	if err := gocty.FromCtyValue(val, &key); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadStateKey, err)
	}

	return key, nil
}
