package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// Predefined reference data ids (see migrations/00002_reference_data.sql).
const (
	RoleEngineerID int64 = 1
	RoleManagerID  int64 = 2
	RoleObserverID int64 = 3
	RoleAdminID    int64 = 4

	StatusNewID        int64 = 1
	StatusInProgressID int64 = 2
	StatusReviewID     int64 = 3
	StatusClosedID     int64 = 4
	StatusCanceledID   int64 = 5
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with the given role id.
func SeedUser(t *testing.T, pool *pgxpool.Pool, roleID int64) domain.User {
	t.Helper()

	suffix := UniqueSuffix()
	u := domain.User{
		Email:    "user-" + suffix + "@example.com",
		FullName: "Test User " + suffix,
		RoleID:   roleID,
		IsActive: true,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, full_name, role_id) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		u.Email, u.FullName, u.RoleID,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedProject creates a project managed by managerID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, managerID int64) domain.Project {
	t.Helper()

	p := domain.Project{Name: "Site " + UniqueSuffix(), ManagerID: managerID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO projects (name, manager_id) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.ManagerID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}

	return p
}

// SeedStage creates a stage at position under projectID.
func SeedStage(t *testing.T, pool *pgxpool.Pool, projectID int64, position int) domain.ProjectStage {
	t.Helper()

	s := domain.ProjectStage{ProjectID: projectID, Name: "Stage " + UniqueSuffix(), Position: position}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO project_stages (project_id, name, position) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		s.ProjectID, s.Name, s.Position,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedStage: %v", err)
	}

	return s
}

// SeedDefect inserts a New, MEDIUM defect directly, bypassing the lifecycle
// engine (no history row is written).
func SeedDefect(t *testing.T, pool *pgxpool.Pool, projectID int64, stageID *int64, reporterID int64) domain.Defect {
	t.Helper()

	d := domain.Defect{
		ProjectID:  projectID,
		StageID:    stageID,
		Title:      "Defect " + UniqueSuffix(),
		Priority:   domain.PriorityMedium,
		StatusID:   StatusNewID,
		Status:     domain.StatusNew,
		ReporterID: reporterID,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO defects (project_id, stage_id, title, priority, status_id, reporter_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		d.ProjectID, d.StageID, d.Title, string(d.Priority), d.StatusID, d.ReporterID,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDefect: %v", err)
	}

	return d
}
