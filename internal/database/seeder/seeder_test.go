package seeder

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"

	"github.com/google/uuid"
)

type recordingSeeder struct {
	name  string
	err   error
	calls *[]string
}

func (s recordingSeeder) Name() string { return s.name }

func (s recordingSeeder) Run(context.Context, database.DB) error {
	*s.calls = append(*s.calls, s.name)
	return s.err
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestRunner_StopsOnFirstError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		recordingSeeder{name: "a", calls: &calls},
		nil,
		recordingSeeder{name: "b", err: boom, calls: &calls},
		recordingSeeder{name: "c", calls: &calls},
	}}

	err := r.Run(context.Background(), stubDB{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if !strings.Contains(err.Error(), "seed b") {
		t.Fatalf("expected seeder name in error, got %q", err.Error())
	}
	if strings.Join(calls, ",") != "a,b" {
		t.Fatalf("unexpected call order %v", calls)
	}
}

func TestDefaults_Order(t *testing.T) {
	var names []string
	for _, s := range Defaults() {
		names = append(names, s.Name())
	}
	if got := strings.Join(names, ","); got != "jobs,student_profiles,applications" {
		t.Fatalf("unexpected seeder order %q", got)
	}
}

func TestDemoData_Consistent(t *testing.T) {
	jobs := map[uuid.UUID]bool{}
	for _, j := range demoJobs() {
		if jobs[j.ID] {
			t.Fatalf("duplicate job id %s", j.ID)
		}
		jobs[j.ID] = true
	}

	students := demoStudents(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ids := map[uuid.UUID]bool{}
	users := map[uuid.UUID]bool{}
	for _, p := range students {
		if ids[p.ID] || users[p.UserID] {
			t.Fatalf("duplicate student %s", p.Name)
		}
		ids[p.ID], users[p.UserID] = true, true
		if p.Status == student.StatusApproved && p.ApprovedAt == nil {
			t.Fatalf("approved student %s has no approval time", p.Name)
		}
	}

	for _, a := range demoApplications {
		if !jobs[a.job] {
			t.Fatalf("application references unknown job %s", a.job)
		}
		if !ids[demoStudentID(a.student)] {
			t.Fatalf("application references unknown student %d", a.student)
		}
	}
}

func TestNullableJSON(t *testing.T) {
	if nullableJSON("null") != nil {
		t.Fatalf("expected nil for json null")
	}
	if nullableJSON(`{"percentage":80}`) == nil {
		t.Fatalf("expected value to pass through")
	}
	b, err := jsonColumn(orEmpty[string](nil))
	if err != nil || b != "[]" {
		t.Fatalf("expected [], got %q (%v)", b, err)
	}
}

type stubDB struct{}

func (stubDB) Ping(context.Context) error { return nil }
func (stubDB) Close() error               { return nil }
func (stubDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (stubDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (stubDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (stubDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not implemented")
}
func (stubDB) SQLDB() *sql.DB { return nil }
