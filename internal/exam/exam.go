// Package exam generates hypothetical fact patterns for practice. It is
// independent of the knowledge bank: hypos come from the general tutor
// instruction alone.
package exam

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cuimedina/Cybersecurity-Tutor/internal/prompt"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/provider"
)

const (
	failureReply = "Error generating hypothetical. Please check your API Key."
	emptyReply   = "Could not generate hypothetical."
)

// PopularTopics are the suggestion chips shown in the exam lab.
var PopularTopics = []string{
	"CFAA Damage vs Loss",
	"FTC Unfairness",
	"Article III Standing",
	"HIPAA Business Associates",
	"CCPA Private Right of Action",
}

type Generator struct {
	prov provider.Provider
	log  *zap.Logger
}

func NewGenerator(prov provider.Provider, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{prov: prov, log: log}
}

// Hypothetical produces an exam fact pattern for the topic. The caller
// ensures topic is non-empty. Every return value is display-ready text:
// service failures come back as a fixed apology, never as an error.
func (g *Generator) Hypothetical(ctx context.Context, topic string) string {
	question := fmt.Sprintf(`
Create a law school exam hypothetical (fact pattern) regarding: %s.
The facts should trigger specific legal issues found in typical Cybersecurity Law exams.
Do NOT provide the answer yet. Just provide the Question.
`, topic)

	out, err := g.prov.Generate(ctx, provider.Request{
		System: prompt.SystemInstruction,
		Parts:  []provider.Part{provider.TextPart(question)},
	})
	if err != nil {
		g.log.Error("hypothetical failed", zap.String("topic", topic), zap.Error(err))
		return failureReply
	}
	if out == "" {
		return emptyReply
	}
	return out
}

// AnswerPrompt phrases the follow-up that asks the tutor for a model
// answer to a generated hypo.
func AnswerPrompt(hypo string) string {
	return "Please write a model IRAC answer for this hypothetical: " + hypo
}
