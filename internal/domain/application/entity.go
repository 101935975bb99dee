package application

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

type key struct {
	studentID uuid.UUID
	jobID     uuid.UUID
}

// Index answers "has this student applied to this job" lookups.
// A nil *Index reports no applications.
type Index struct {
	byKey map[key]Application
}

func NewIndex(apps []Application) *Index {
	idx := &Index{byKey: make(map[key]Application, len(apps))}
	for _, a := range apps {
		if a.StudentID == uuid.Nil || a.JobID == uuid.Nil {
			continue
		}
		idx.byKey[key{studentID: a.StudentID, jobID: a.JobID}] = a
	}
	return idx
}

func (i *Index) Lookup(studentID, jobID uuid.UUID) (Application, bool) {
	if i == nil {
		return Application{}, false
	}
	a, ok := i.byKey[key{studentID: studentID, jobID: jobID}]
	return a, ok
}

func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.byKey)
}
