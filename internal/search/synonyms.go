package search

import "strings"

// SynonymGroup names one canonical term and the surface variants that
// collapse into it. The canonical term should list itself as a variant.
type SynonymGroup struct {
	Canonical string   `yaml:"canonical" json:"canonical"`
	Variants  []string `yaml:"variants" json:"variants"`
}

// DefaultSynonymGroups is the built-in synonym table. It can be replaced
// wholesale at startup via LoadSynonymGroups before any queries run.
var DefaultSynonymGroups = []SynonymGroup{
	{Canonical: "ai", Variants: []string{"ai", "llm", "llms", "genai", "gpt", "ml", "intelligence"}},
	{Canonical: "developer", Variants: []string{"developer", "developers", "dev", "devs", "engineer", "engineers", "engineering", "software", "coder", "coders", "coding", "programmer", "programmers", "programming"}},
	{Canonical: "tooling", Variants: []string{"tooling", "tool", "tools", "toolkit", "sdk", "sdks", "framework", "frameworks", "platform", "platforms"}},
	{Canonical: "agent", Variants: []string{"agent", "agents", "agentic", "copilot", "copilots", "assistant", "assistants", "bot", "bots"}},
	{Canonical: "api", Variants: []string{"api", "apis", "integration", "integrations", "endpoint", "endpoints"}},
	{Canonical: "infrastructure", Variants: []string{"infrastructure", "infra", "cloud", "compute", "gpu", "gpus", "serverless"}},
}

// canonicalTerms is the flattened variant -> canonical lookup. Built once
// at init (or once at startup via LoadSynonymGroups) and read-only
// afterwards, so concurrent lookups need no locking.
var canonicalTerms = flattenGroups(DefaultSynonymGroups)

func flattenGroups(groups []SynonymGroup) map[string]string {
	lookup := make(map[string]string)
	for _, g := range groups {
		canonical := strings.ToLower(g.Canonical)
		lookup[canonical] = canonical
		for _, v := range g.Variants {
			lookup[strings.ToLower(v)] = canonical
		}
	}
	return lookup
}

// LoadSynonymGroups replaces the synonym table. Must be called during
// startup, before the engine serves queries.
func LoadSynonymGroups(groups []SynonymGroup) {
	canonicalTerms = flattenGroups(groups)
}

// Canonicalize maps a token to its canonical term. Unknown tokens pass
// through unchanged, which makes the function idempotent: every canonical
// term maps to itself.
func Canonicalize(token string) string {
	if canonical, ok := canonicalTerms[token]; ok {
		return canonical
	}
	return token
}

// CanonicalizeText tokenizes text, canonicalizes every token and rejoins
// with single spaces. Used to build the canonical blob and phrase queries.
func CanonicalizeText(text string) string {
	tokens := Tokenize(text)
	for i, tok := range tokens {
		tokens[i] = Canonicalize(tok)
	}
	return strings.Join(tokens, " ")
}
