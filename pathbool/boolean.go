package pathbool

import (
	"github.com/tdewolff/pathbool/arrange"
	"github.com/tdewolff/pathbool/geom"
)

// PathBoolean computes op(a, b) under the given fill rules and returns the
// result as zero or more output paths (Division and Fracture may produce
// several; the other four operations produce exactly one, possibly empty;
// two empty inputs produce no paths at all). It never returns an error
// today — the arrangement pipeline is total over any two finite segment
// lists — but returns one to leave room
// for future input validation without breaking callers.
func PathBoolean(cfg Config, a Path, aFill FillRule, b Path, bFill FillRule, op Op) ([]Path, error) {
	cfg.Log.Debug().Int("segA", len(a)).Int("segB", len(b)).Str("op", opName(op)).Msg("pathbool: starting arrangement")

	results := arrange.Run(cfg.Epsilons, []geom.Segment(a), fillRule(aFill), []geom.Segment(b), fillRule(bFill), arrangeOp(op))

	out := make([]Path, len(results))
	for i, r := range results {
		out[i] = Path(r)
	}

	cfg.Log.Debug().Int("outputs", len(out)).Msg("pathbool: arrangement complete")
	return out, nil
}

func fillRule(f FillRule) arrange.FillRule {
	if f == EvenOdd {
		return arrange.EvenOdd
	}
	return arrange.NonZero
}

func arrangeOp(op Op) arrange.Op {
	switch op {
	case Difference:
		return arrange.Difference
	case Intersection:
		return arrange.Intersection
	case Exclusion:
		return arrange.Exclusion
	case Division:
		return arrange.Division
	case Fracture:
		return arrange.Fracture
	default:
		return arrange.Union
	}
}

func opName(op Op) string {
	switch op {
	case Union:
		return "union"
	case Difference:
		return "difference"
	case Intersection:
		return "intersection"
	case Exclusion:
		return "exclusion"
	case Division:
		return "division"
	case Fracture:
		return "fracture"
	default:
		return "unknown"
	}
}
