package schedule

import "strings"

// Violation field names, stable identifiers for API consumers.
const (
	FieldCourse    = "courseId"
	FieldProfessor = "professorId"
	FieldRoom      = "roomId"
	FieldPeriod    = "periodId"
	FieldDate      = "date"
	FieldStartTime = "startTime"
	FieldEndTime   = "endTime"
	FieldKind      = "kind"
)

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the accumulated result of a validation gate. All checks run
// before the result is returned, so a caller sees every problem at once.
type Violations []Violation

func (vs *Violations) Add(field, message string) {
	*vs = append(*vs, Violation{Field: field, Message: message})
}

func (vs Violations) HasAny() bool {
	return len(vs) > 0
}

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "no violations"
	}
	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.Field + ": " + v.Message
	}
	return strings.Join(msgs, "; ")
}
