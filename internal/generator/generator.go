// Package generator provides cryptographically secure password generation over a
// character-class alphabet.
package generator

import (
	"context"
	"crypto/rand"
	"io"
	"math"
	"math/big"
	"strings"
	"sync"

	"github.com/jonathan/passkit/internal/charclass"
	"github.com/jonathan/passkit/internal/types"
	"golang.org/x/sync/errgroup"
)

// maxBatchWorkers bounds the goroutines used by GenerateBatch.
const maxBatchWorkers = 8

// Generator draws passwords from a randomness source.
// The zero value is not usable; construct with New.
type Generator struct {
	source io.Reader
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the randomness source. Reads are serialized so that
// non-thread-safe sources (e.g. a bytes.Reader in tests) work with GenerateBatch.
func WithSource(r io.Reader) Option {
	return func(g *Generator) {
		g.source = &lockedReader{r: r}
	}
}

// New creates a Generator backed by crypto/rand unless a source is supplied.
func New(opts ...Option) *Generator {
	g := &Generator{source: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate creates a password with the default crypto/rand generator.
func Generate(opts types.GenerationOptions) (string, error) {
	return defaultGenerator.Generate(opts)
}

// ClampLength forces n into the supported password length range.
func ClampLength(n int) int {
	return min(max(n, types.MinPasswordLength), types.MaxPasswordLength)
}

// BuildAlphabet concatenates the enabled character sets in the order uppercase,
// lowercase, digits, symbols, dropping repeated characters. It returns "" when no
// class is enabled.
func BuildAlphabet(opts types.GenerationOptions) string {
	enabled := map[charclass.Class]bool{
		charclass.ClassUpper:  opts.Uppercase,
		charclass.ClassLower:  opts.Lowercase,
		charclass.ClassDigit:  opts.Numbers,
		charclass.ClassSymbol: opts.Symbols,
	}

	var sb strings.Builder
	seen := make(map[rune]bool)
	for _, c := range charclass.Classes {
		if !enabled[c] {
			continue
		}
		for _, r := range c.Set() {
			if seen[r] {
				continue
			}
			seen[r] = true
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// AlphabetSize returns the number of distinct characters available for opts.
func AlphabetSize(opts types.GenerationOptions) int {
	return len(BuildAlphabet(opts))
}

// EntropyBits returns the entropy of a password generated with opts, in bits.
func EntropyBits(opts types.GenerationOptions) float64 {
	size := AlphabetSize(opts)
	if size == 0 {
		return 0
	}
	return float64(ClampLength(opts.Length)) * math.Log2(float64(size))
}

// Generate creates a random password. Each character is drawn independently and
// uniformly from the alphabet built from opts. The length is clamped into [8,64].
// It returns an error wrapping ErrNoCharacterClassSelected when no class is enabled.
func (g *Generator) Generate(opts types.GenerationOptions) (string, error) {
	alphabet := BuildAlphabet(opts)
	if alphabet == "" {
		return "", noClassError()
	}

	length := ClampLength(opts.Length)
	upper := big.NewInt(int64(len(alphabet)))

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(g.source, upper)
		if err != nil {
			return "", &RandomSourceError{Message: "failed to draw character", Cause: err}
		}
		sb.WriteByte(alphabet[n.Int64()])
	}

	return sb.String(), nil
}

// GenerateBatch creates count passwords concurrently. Results keep index order.
// A count below 1 yields a single password.
func (g *Generator) GenerateBatch(ctx context.Context, opts types.GenerationOptions, count int) ([]string, error) {
	if count < 1 {
		count = 1
	}
	if !opts.AnyClass() {
		return nil, noClassError()
	}

	passwords := make([]string, count)

	grp, gCtx := errgroup.WithContext(ctx)
	grp.SetLimit(maxBatchWorkers)
	for i := 0; i < count; i++ {
		i := i
		grp.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			pw, err := g.Generate(opts)
			if err != nil {
				return err
			}
			passwords[i] = pw
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return passwords, nil
}

type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
