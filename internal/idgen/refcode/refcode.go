package refcode

import (
	"strings"

	"github.com/google/uuid"
)

const suffixLen = 8

type Generator struct {
	prefix string
}

func New(prefix string) *Generator {
	return &Generator{prefix: prefix}
}

// Generate returns a display reference such as "GRD-1A2B3C4D": the prefix
// plus the first eight characters of a random UUID, uppercased. Collisions
// are not tracked; there is nothing to deduplicate against.
func (g *Generator) Generate() string {
	return g.prefix + "-" + strings.ToUpper(uuid.NewString()[:suffixLen])
}
