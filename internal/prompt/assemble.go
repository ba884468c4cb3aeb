package prompt

import (
	"fmt"

	"github.com/cuimedina/Cybersecurity-Tutor/internal/bank"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/provider"
)

// The sentinels are part of the observable contract with the model: the
// system instruction tells it to ground exclusively on what sits between
// them, so they must stay literal and stable.
const (
	beginSentinel  = "--- BEGIN KNOWLEDGE BANK (CONTEXT) ---"
	endSentinel    = "--- END KNOWLEDGE BANK ---"
	useInstruction = "Use the above materials exclusively to answer the following."
)

// Assemble serializes a bank snapshot into the ordered evidence payload.
// An empty snapshot yields an empty payload; the tutor then degrades to a
// disclosed no-materials answer rather than inventing one.
func Assemble(materials []bank.Material) []provider.Part {
	if len(materials) == 0 {
		return nil
	}

	parts := make([]provider.Part, 0, 2*len(materials)+3)
	parts = append(parts, provider.TextPart(beginSentinel))

	for i, m := range materials {
		label := fmt.Sprintf("[MATERIAL %d: %s - %s]", i+1, m.Category, m.Name)
		parts = append(parts, provider.TextPart(label))
		if m.Kind == bank.KindFile {
			parts = append(parts, provider.DataPart(m.MIMEType, m.Data))
		} else {
			parts = append(parts, provider.TextPart(m.Text))
		}
	}

	parts = append(parts,
		provider.TextPart(endSentinel),
		provider.TextPart(useInstruction))
	return parts
}
