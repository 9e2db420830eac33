package insights

// FallbackMessage is emitted when no rule fires
const FallbackMessage = "No specific insights generated for the current filtered data."

// DefaultRules returns the rule chain in its contractual evaluation order:
// tier, then platform, then product. Findings are ranked by discovery order,
// not magnitude; appending a new rule never disturbs existing output.
func DefaultRules() []Rule {
	return []Rule{
		tierRule{},
		platformRule{},
		productRule{},
	}
}

// Generator evaluates an ordered rule chain over a filtered performance view
type Generator struct {
	rules []Rule
}

// NewGenerator creates a generator with the default rule chain
func NewGenerator() *Generator {
	return &Generator{rules: DefaultRules()}
}

// NewGeneratorWithRules creates a generator with a custom rule chain,
// evaluated in the given order
func NewGeneratorWithRules(rules []Rule) *Generator {
	return &Generator{rules: rules}
}

// Generate runs every rule independently and collects all findings in rule
// order. When nothing fires it returns exactly one fallback message, so the
// caller always has something to display.
func (g *Generator) Generate(ctx Context) []string {
	var findings []string
	for _, rule := range g.rules {
		if text, fired := rule.Evaluate(ctx); fired {
			findings = append(findings, text)
		}
	}

	if len(findings) == 0 {
		return []string{FallbackMessage}
	}
	return findings
}
