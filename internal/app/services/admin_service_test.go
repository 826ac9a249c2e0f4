package services

import (
	"context"
	"errors"
	"testing"

	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/app/models/dto"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
	"github.com/unibecas/sibeca/internal/pkg/auth"
)

type fakeAdminStudentStore struct {
	created     *models.Student
	createdHash string
	updated     *models.Student
	updatedHash *string
}

func (f *fakeAdminStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeAdminStudentStore) ListAll(_ context.Context) ([]*models.Student, error) {
	return nil, nil
}

func (f *fakeAdminStudentStore) Create(_ context.Context, student *models.Student, passwordHash string) (int64, error) {
	f.created = student
	f.createdHash = passwordHash
	return 1, nil
}

func (f *fakeAdminStudentStore) Update(_ context.Context, student *models.Student, passwordHash *string) error {
	f.updated = student
	f.updatedHash = passwordHash
	return nil
}

func (f *fakeAdminStudentStore) CountActive(_ context.Context) (int64, error) { return 3, nil }

func (f *fakeAdminStudentStore) SumHoursCompleted(_ context.Context) (float64, error) {
	return 120.5, nil
}

type fakeAdminSupervisorStore struct {
	created *models.Supervisor
}

func (f *fakeAdminSupervisorStore) GetByID(_ context.Context, id int64) (*models.Supervisor, error) {
	return nil, apperrors.ErrSupervisorNotFound
}

func (f *fakeAdminSupervisorStore) ListAllWithCounts(_ context.Context) ([]*models.Supervisor, error) {
	return nil, nil
}

func (f *fakeAdminSupervisorStore) Create(_ context.Context, supervisor *models.Supervisor, passwordHash string) (int64, error) {
	f.created = supervisor
	return 2, nil
}

func (f *fakeAdminSupervisorStore) Update(_ context.Context, supervisor *models.Supervisor, passwordHash *string) error {
	return nil
}

func (f *fakeAdminSupervisorStore) CountActive(_ context.Context) (int64, error) { return 2, nil }

type fakeToggler struct {
	id     int64
	role   models.RoleType
	active bool
}

func (f *fakeToggler) SetActive(_ context.Context, id int64, role models.RoleType, active bool) error {
	f.id = id
	f.role = role
	f.active = active
	return nil
}

type fakeRecordFeed struct{}

func (f *fakeRecordFeed) ListLatest(_ context.Context, limit uint64) ([]*models.AttendanceRecord, error) {
	return []*models.AttendanceRecord{{ID: 1}}, nil
}

func (f *fakeRecordFeed) CountPending(_ context.Context) (int64, error) { return 4, nil }

func newTestAdminService() (*AdminService, *fakeAdminStudentStore, *fakeAdminSupervisorStore, *fakeToggler) {
	students := &fakeAdminStudentStore{}
	supervisors := &fakeAdminSupervisorStore{}
	toggler := &fakeToggler{}
	svc := NewAdminService(students, supervisors, toggler, &fakeRecordFeed{})
	return svc, students, supervisors, toggler
}

func saveStudentRequest() *dto.SaveStudentRequest {
	return &dto.SaveStudentRequest{
		FullName:              "Ana Torres",
		Email:                 "ana@uni.edu",
		Career:                "Sistemas",
		Semester:              5,
		ScholarshipPercentage: 50,
		RequiredHours:         120,
	}
}

func TestSummaryComposesCounters(t *testing.T) {
	svc, _, _, _ := newTestAdminService()

	summary, latest, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if summary.TotalStudents != 3 || summary.TotalSupervisors != 2 {
		t.Errorf("counters = %+v", summary)
	}
	if summary.TotalHours != 120.5 || summary.TotalPending != 4 {
		t.Errorf("totals = %+v", summary)
	}
	if len(latest) != 1 {
		t.Errorf("latest records = %d, want 1", len(latest))
	}
}

func TestSaveStudentCreateRequiresPassword(t *testing.T) {
	svc, students, _, _ := newTestAdminService()

	req := saveStudentRequest()
	err := svc.SaveStudent(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("SaveStudent() error = %v, want validation failure", err)
	}
	if students.created != nil {
		t.Error("SaveStudent() created the student without a password")
	}
}

func TestSaveStudentCreateHashesPassword(t *testing.T) {
	svc, students, _, _ := newTestAdminService()

	req := saveStudentRequest()
	req.Password = "secreto123"
	if err := svc.SaveStudent(context.Background(), req); err != nil {
		t.Fatalf("SaveStudent() error = %v", err)
	}

	if students.created == nil {
		t.Fatal("SaveStudent() did not create the student")
	}
	if students.createdHash == "secreto123" {
		t.Fatal("SaveStudent() stored the plaintext password")
	}
	if !auth.CheckPassword(students.createdHash, "secreto123") {
		t.Error("stored hash does not verify")
	}
}

func TestSaveStudentUpdateKeepsPassword(t *testing.T) {
	svc, students, _, _ := newTestAdminService()

	req := saveStudentRequest()
	req.StudentID = 9
	if err := svc.SaveStudent(context.Background(), req); err != nil {
		t.Fatalf("SaveStudent() error = %v", err)
	}

	if students.updated == nil || students.updated.AccountID != 9 {
		t.Fatalf("updated = %+v, want account 9", students.updated)
	}
	if students.updatedHash != nil {
		t.Error("SaveStudent() replaced the password without one in the request")
	}
}

func TestToggleStudentScopesRole(t *testing.T) {
	svc, _, _, toggler := newTestAdminService()

	if err := svc.ToggleStudent(context.Background(), 9, false); err != nil {
		t.Fatalf("ToggleStudent() error = %v", err)
	}
	if toggler.id != 9 || toggler.role != models.RoleStudent || toggler.active {
		t.Errorf("toggle = %+v", toggler)
	}

	if err := svc.ToggleSupervisor(context.Background(), 5, true); err != nil {
		t.Fatalf("ToggleSupervisor() error = %v", err)
	}
	if toggler.id != 5 || toggler.role != models.RoleSupervisor || !toggler.active {
		t.Errorf("toggle = %+v", toggler)
	}
}
