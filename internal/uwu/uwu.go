// Package uwu rewrites text into its uwu-ified form.
//
// The rewrite is deterministic: every random flourish is drawn from a
// generator seeded with a hash of the input, so the same line always comes
// back the same way.
package uwu

import (
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options controls how often the random flourishes are applied.
// Every rate is a probability in [0, 1]; zero disables the flourish.
type Options struct {
	StutterRate     float64
	FaceRate        float64
	ActionRate      float64
	ExclamationRate float64
}

// DefaultOptions returns the stock mix of flourishes.
func DefaultOptions() Options {
	return Options{
		StutterRate:     0.1,
		FaceRate:        0.2,
		ActionRate:      0.075,
		ExclamationRate: 1,
	}
}

// Uwuifier implements types.Transformer
type Uwuifier struct {
	opts Options
}

// New creates an Uwuifier with the given options
func New(opts Options) *Uwuifier {
	return &Uwuifier{opts: opts}
}

// Transform rewrites input. Whitespace, including a trailing newline, is
// copied through untouched, and so are URLs and words that are not valid
// UTF-8.
func (u *Uwuifier) Transform(input string) string {
	rng := seed(input)

	var b strings.Builder
	b.Grow(len(input) + len(input)/4)

	for len(input) > 0 {
		n := tokenLen(input)
		tok := input[:n]
		input = input[n:]

		r, _ := utf8.DecodeRuneInString(tok)
		if unicode.IsSpace(r) {
			b.WriteString(tok)
			continue
		}
		u.writeWord(&b, tok, rng)
	}

	return b.String()
}

func seed(input string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(input))
	return rand.New(rand.NewPCG(h.Sum64(), uint64(len(input))))
}

// tokenLen returns the byte length of the leading run of either whitespace
// or non-whitespace runes.
func tokenLen(s string) int {
	first, size := utf8.DecodeRuneInString(s)
	space := unicode.IsSpace(first)
	i := size
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) != space {
			break
		}
		i += size
	}
	return i
}

func (u *Uwuifier) writeWord(b *strings.Builder, tok string, rng *rand.Rand) {
	if strings.Contains(tok, "://") || !utf8.ValidString(tok) {
		b.WriteString(tok)
		return
	}

	lead, core, trail := splitPunct(tok)

	word, ok := substitute(core)
	if !ok {
		word = uwuLetters(core)
	}

	if first, _ := utf8.DecodeRuneInString(word); unicode.IsLetter(first) && chance(rng, u.opts.StutterRate) {
		word = string(first) + "-" + word
	}

	b.WriteString(lead)
	b.WriteString(word)

	if chance(rng, u.opts.ExclamationRate) {
		b.WriteString(exclaim(trail, rng))
	} else {
		b.WriteString(trail)
	}

	if strings.ContainsAny(trail, ".!?") {
		u.writeFlourish(b, rng)
	}
}

func (u *Uwuifier) writeFlourish(b *strings.Builder, rng *rand.Rand) {
	if u.opts.FaceRate+u.opts.ActionRate <= 0 {
		return
	}

	roll := rng.Float64()
	switch {
	case roll < u.opts.FaceRate:
		b.WriteString(" ")
		b.WriteString(faces[rng.IntN(len(faces))])
	case roll < u.opts.FaceRate+u.opts.ActionRate:
		b.WriteString(" ")
		b.WriteString(actions[rng.IntN(len(actions))])
	}
}

func chance(rng *rand.Rand, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return rng.Float64() < p
}

// splitPunct separates leading and trailing punctuation from the letters
// and digits in the middle of tok. A token with no letters or digits is
// returned whole as trail.
func splitPunct(tok string) (lead, core, trail string) {
	start := strings.IndexFunc(tok, isWordRune)
	if start < 0 {
		return "", "", tok
	}
	end := strings.LastIndexFunc(tok, isWordRune)
	_, size := utf8.DecodeRuneInString(tok[end:])
	end += size
	return tok[:start], tok[start:end], tok[end:]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// substitute swaps whole words for their uwu spelling, keeping the case
// shape of the original.
func substitute(word string) (string, bool) {
	repl, ok := words[strings.ToLower(word)]
	if !ok {
		return "", false
	}
	return matchCase(word, repl), true
}

func matchCase(src, repl string) string {
	if utf8.RuneCountInString(src) > 1 && src == strings.ToUpper(src) {
		return strings.ToUpper(repl)
	}
	first, _ := utf8.DecodeRuneInString(src)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(repl)
		return string(unicode.ToUpper(r)) + repl[size:]
	}
	return repl
}

func uwuLetters(word string) string {
	rs := []rune(word)

	var b strings.Builder
	b.Grow(len(word) + 2)

	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch unicode.ToLower(c) {
		case 'l', 'r':
			b.WriteRune(withCase('w', c))
			continue
		case 'n':
			if i+1 < len(rs) && isVowel(rs[i+1]) {
				b.WriteRune(c)
				b.WriteRune(withCase('y', rs[i+1]))
				continue
			}
		case 'o':
			// above -> abuv, lovely -> wuvwy
			if i+2 < len(rs) && unicode.ToLower(rs[i+1]) == 'v' && unicode.ToLower(rs[i+2]) == 'e' {
				b.WriteRune(withCase('u', c))
				b.WriteRune(rs[i+1])
				i += 2
				continue
			}
		}
		b.WriteRune(c)
	}

	return b.String()
}

func withCase(r, like rune) rune {
	if unicode.IsUpper(like) {
		return unicode.ToUpper(r)
	}
	return r
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// exclaim replaces the first run of '!' and '?' that contains a '!' with
// a random flourish.
func exclaim(trail string, rng *rand.Rand) string {
	i := strings.IndexAny(trail, "!?")
	if i < 0 {
		return trail
	}
	j := i
	for j < len(trail) && (trail[j] == '!' || trail[j] == '?') {
		j++
	}
	if !strings.Contains(trail[i:j], "!") {
		return trail
	}
	return trail[:i] + exclamations[rng.IntN(len(exclamations))] + trail[j:]
}
