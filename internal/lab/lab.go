// Package lab parses matrixlab configuration and runs the demo pipeline:
// a random integer square matrix, its echelon form, rank and determinant,
// and the product with its own transpose.
package lab

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/echelon/internal/config"
	"github.com/katalvlaran/echelon/matrix"
	"github.com/katalvlaran/echelon/random"
)

// maxPrecision mirrors the limit enforced by matrix.WithPrecision.
const maxPrecision = 17

// Config holds matrixlab configuration.
type Config struct {
	Size      int   `env:"MATRIXLAB_SIZE" envDefault:"3"`
	Min       int   `env:"MATRIXLAB_MIN" envDefault:"1"`
	Max       int   `env:"MATRIXLAB_MAX" envDefault:"5"`
	Seed      int64 `env:"MATRIXLAB_SEED" envDefault:"0"`
	Precision int   `env:"MATRIXLAB_PRECISION" envDefault:"1"`
}

// ParseConfig parses environment and flags into Config.
// Flags override environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Size, "size", cfg.Size, "side length of the random square matrix")
	fs.IntVar(&cfg.Min, "min", cfg.Min, "smallest cell value (inclusive)")
	fs.IntVar(&cfg.Max, "max", cfg.Max, "largest cell value (exclusive)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed; 0 draws a fresh one")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "fractional digits in the output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting Run cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return errors.New("size must not be negative")
	case c.Min >= c.Max:
		return fmt.Errorf("min %d must be less than max %d", c.Min, c.Max)
	case c.Precision < 0 || c.Precision > maxPrecision:
		return fmt.Errorf("precision must be in [0, %d]", maxPrecision)
	}
	return nil
}

// Run builds the matrix described by cfg and writes the report to out.
// Diagnostics go to logger; a nil logger discards them.
func Run(cfg Config, out io.Writer, logger *log.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.Seed == 0 {
		seed, err := random.NewSeed()
		if err != nil {
			return err
		}
		cfg.Seed = seed
	}
	logger.Printf("seed %d", cfg.Seed)

	a, err := matrix.NewSquareMatrix(cfg.Size, matrix.WithPrecision(cfg.Precision))
	if err != nil {
		return err
	}
	if err = a.FillRandomIntegers(random.New(cfg.Seed), cfg.Min, cfg.Max); err != nil {
		return err
	}

	ech, red := a.Reduce()
	det := a.Det()

	gram, err := a.Multiply(a.Transpose())
	if err != nil {
		return err
	}
	gramDet, err := matrix.Det(gram)
	if err != nil {
		return fmt.Errorf("gram determinant: %w", err)
	}
	logger.Printf("rank %d, %d row swaps, pivot columns %v", red.Rank, red.Swaps, red.PivotCols)

	p := cfg.Precision
	fmt.Fprintf(out, "seed: %d\n", cfg.Seed)
	fmt.Fprintf(out, "A (%s):\n%s", a.Dim(), a.Pretty())
	fmt.Fprintf(out, "echelon form (rank %d, swaps %d):\n%s", red.Rank, red.Swaps, ech.Pretty())
	fmt.Fprintf(out, "det(A) = %.*f\n", p, det)
	fmt.Fprintf(out, "A·Aᵀ (%s):\n%s", gram.Dim(), gram.Pretty())
	_, err = fmt.Fprintf(out, "det(A·Aᵀ) = %.*f\n", p, gramDet)
	return err
}
