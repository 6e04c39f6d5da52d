package pathbool

import (
	"github.com/rs/zerolog"
	"github.com/tdewolff/pathbool/geom"
)

// Config carries the numeric tolerances and optional diagnostics logger
// threaded through every stage of a boolean operation. The zero Config is
// not usable directly; call DefaultConfig and override fields as needed.
type Config struct {
	geom.Epsilons
	Log zerolog.Logger
}

// DefaultConfig returns the epsilon table this package validates against,
// with a no-op logger. Library code stays silent unless the caller opts in
// by setting cfg.Log.
func DefaultConfig() Config {
	return Config{
		Epsilons: geom.DefaultEpsilons(),
		Log:      zerolog.Nop(),
	}
}
