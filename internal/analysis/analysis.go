// Package analysis runs the three one-shot transforms over the whole
// knowledge bank: class outline, exam-pattern analysis, and rule-bank
// extraction.
package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/cuimedina/Cybersecurity-Tutor/internal/bank"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/prompt"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/provider"
)

type Kind int

const (
	Outline Kind = iota
	Patterns
	Rules
)

func (k Kind) String() string {
	switch k {
	case Outline:
		return "outline"
	case Patterns:
		return "patterns"
	case Rules:
		return "rules"
	}
	return "unknown"
}

const outlineTemplate = `
Analyze the entire Knowledge Bank. Create a "Metacognitive Class Outline" structured like an A+ law student's notes.
Follow this structure:
I. [Major Topic]
  A. [Sub-topic]
     1. [Rule/Doctrine]
        - Explanation (from materials)
        - Key Case/Statute (from materials)
Include a "Common Pitfalls" section at the end.
`

const patternsTemplate = `
**EXAM PATTERN ANALYSIS**
Analyze all Exams and Materials in the Knowledge Bank to identify structural patterns and testing frequencies.

Provide the output in these sections:
1. **Most Tested Subjects**: Rank the top 5 topics by how frequently they appear in the materials.
2. **Recurring Fact Patterns**: Describe the specific fact scenarios that trigger liability (e.g., "The Disgruntled Employee," "The Unsecured Vendor," "The Ransomware Attack").
3. **Issue Spotting Checklist**: Create a master checklist of issues that MUST be spotted if triggered by facts.
4. **Professor's Focus**: Identify any specific nuances, cases, or policy arguments the professor seems to emphasize repeatedly.
`

const rulesTemplate = `
**MASTER RULE BANK**
Create a comprehensive Rule Bank for **every single legal issue** identified in the Knowledge Bank.

For EACH issue, provide a strict entry in this format:

### [Issue Name]
**Rule**: [The concise, black-letter rule or statute section]
**Elements**:
1. [Element 1]
2. [Element 2]
...
**Key Case**: [Case name cited in materials]
**Defenses/Exceptions**: [Any valid defenses]

Ensure you cover everything found in the documents, from the CFAA to State Breach Laws.
`

// Template returns the fixed instruction for a kind.
func Template(k Kind) string {
	switch k {
	case Patterns:
		return patternsTemplate
	case Rules:
		return rulesTemplate
	default:
		return outlineTemplate
	}
}

// Engine is stateless: every call snapshots nothing and remembers nothing.
type Engine struct {
	prov provider.Provider
	log  *zap.Logger
}

func NewEngine(prov provider.Provider, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{prov: prov, log: log}
}

// Analyze runs one transform over the given bank snapshot. The caller
// guarantees a non-empty snapshot. Failure is the error return; success
// with empty text is not an error and comes back as the fallback message.
func (e *Engine) Analyze(ctx context.Context, materials []bank.Material, kind Kind) (string, error) {
	parts := prompt.Assemble(materials)
	parts = append(parts, provider.TextPart(Template(kind)))

	out, err := e.prov.Generate(ctx, provider.Request{
		System: prompt.SystemInstruction,
		Parts:  parts,
	})
	if err != nil {
		e.log.Error("analysis failed", zap.String("kind", kind.String()), zap.Error(err))
		return "", err
	}
	if out == "" {
		return "Could not generate analysis.", nil
	}
	e.log.Info("analysis complete", zap.String("kind", kind.String()), zap.Int("chars", len(out)))
	return out, nil
}
