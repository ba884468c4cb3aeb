package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuimedina/Cybersecurity-Tutor/internal/bank"
)

func TestAssembleEmptyBank(t *testing.T) {
	assert.Nil(t, Assemble(nil))
	assert.Nil(t, Assemble([]bank.Material{}))
}

func TestAssembleOrderAndLabels(t *testing.T) {
	materials := []bank.Material{
		{Name: "Class 1 Notes", Kind: bank.KindText, Category: bank.CategoryLecture, Text: "negligence per se"},
		{Name: "midterm.pdf", Kind: bank.KindFile, Category: bank.CategoryExam, MIMEType: "application/pdf", Data: []byte{0x25, 0x50}},
		{Name: "18 USC 1030", Kind: bank.KindText, Category: bank.CategoryStatute, Text: "exceeds authorized access"},
	}

	parts := Assemble(materials)
	// Opening sentinel, three label+content pairs, closing sentinel, use line.
	require.Len(t, parts, 9)

	assert.Equal(t, "--- BEGIN KNOWLEDGE BANK (CONTEXT) ---", parts[0].Text)
	assert.Equal(t, "[MATERIAL 1: Lecture - Class 1 Notes]", parts[1].Text)
	assert.Equal(t, "negligence per se", parts[2].Text)
	assert.Equal(t, "[MATERIAL 2: Exam - midterm.pdf]", parts[3].Text)
	assert.Equal(t, "application/pdf", parts[4].MIMEType)
	assert.Equal(t, []byte{0x25, 0x50}, parts[4].Data)
	assert.Equal(t, "[MATERIAL 3: Statute - 18 USC 1030]", parts[5].Text)
	assert.Equal(t, "exceeds authorized access", parts[6].Text)
	assert.Equal(t, "--- END KNOWLEDGE BANK ---", parts[7].Text)
	assert.Equal(t, "Use the above materials exclusively to answer the following.", parts[8].Text)
}

func TestAssembleIndicesAreOneBased(t *testing.T) {
	parts := Assemble([]bank.Material{
		{Name: "only", Kind: bank.KindText, Category: bank.CategoryCase, Text: "x"},
	})
	require.Len(t, parts, 5)
	assert.Equal(t, "[MATERIAL 1: Case - only]", parts[1].Text)
}
