// Package bank holds the user-curated knowledge bank: the set of study
// materials (text notes and uploaded files) that grounds every tutor
// response.
package bank

// Kind distinguishes typed notes from uploaded binary files.
type Kind string

const (
	KindText Kind = "text"
	KindFile Kind = "file"
)

// Category is the closed set of material tags.
type Category string

const (
	CategoryLecture Category = "Lecture"
	CategoryReading Category = "Reading"
	CategoryStatute Category = "Statute"
	CategoryCase    Category = "Case"
	CategoryExam    Category = "Exam"
)

// Categories lists all tags in the order the editor cycles through them.
var Categories = []Category{
	CategoryExam,
	CategoryLecture,
	CategoryReading,
	CategoryCase,
	CategoryStatute,
}

// Material is one evidence item. Immutable once created; destroyed only by
// explicit removal from the Store.
type Material struct {
	ID       string
	Name     string
	Kind     Kind
	Category Category

	// Text holds the note body when Kind is KindText.
	Text string

	// Data and MIMEType hold the raw payload when Kind is KindFile.
	Data     []byte
	MIMEType string
}
