package transform

import "strings"

// Shout upper-cases the whole line
type Shout struct{}

func (s *Shout) Transform(input string) string {
	return strings.ToUpper(input)
}
