// Package seeder fills an empty database with demo construction sites:
// users, projects with stages and defects walked through the lifecycle.
// Every write goes through the services, so seeded defects carry a
// complete history trail.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/internal/service/defect"
	"github.com/heartmarshall/sitedefects-backend/internal/service/project"
	"github.com/heartmarshall/sitedefects-backend/internal/service/user"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

type userCreator interface {
	CreateUser(ctx context.Context, input user.CreateUserInput) (domain.User, error)
}

type projectCreator interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (domain.Project, error)
	CreateStage(ctx context.Context, input project.CreateStageInput) (domain.ProjectStage, error)
}

type defectWriter interface {
	CreateDefect(ctx context.Context, input defect.CreateDefectInput) (domain.Defect, error)
	ChangeStatus(ctx context.Context, input defect.ChangeStatusInput) (domain.Defect, error)
	AddComment(ctx context.Context, input defect.AddCommentInput) (domain.Comment, error)
}

// allPhases defines the canonical execution order. Later phases use the
// rows created by earlier ones.
var allPhases = []string{"users", "projects", "defects"}

var (
	stageNames   = []string{"Foundation", "Framing", "Roofing", "Electrical", "Plumbing", "Finishing"}
	defectTitles = []string{
		"Cracked slab", "Misaligned window frame", "Exposed rebar", "Leaking pipe joint",
		"Missing fire stop", "Uneven floor screed", "Loose handrail", "Damp patch on wall",
		"Incorrect socket height", "Scratched glazing",
	}
	walk = []domain.StatusName{domain.StatusInProgress, domain.StatusReview, domain.StatusClosed}
)

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log      *slog.Logger
	users    userCreator
	projects projectCreator
	defects  defectWriter
	cfg      Config
	rnd      *rand.Rand
	results  map[string]PhaseResult

	manager   domain.User
	engineers []domain.User
	sites     []site
}

type site struct {
	project domain.Project
	stages  []domain.ProjectStage
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, users userCreator, projects projectCreator, defects defectWriter, cfg Config) *Pipeline {
	seed := uint64(cfg.RandSeed)
	return &Pipeline{
		log:      log,
		users:    users,
		projects: projects,
		defects:  defects,
		cfg:      cfg,
		rnd:      rand.New(rand.NewPCG(seed, seed)),
		results:  make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run; a phase whose inputs were not produced fails without writing.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx)
		case "projects":
			result = p.runProjects(ctx)
		case "defects":
			result = p.runDefects(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func (p *Pipeline) managerCtx(ctx context.Context) context.Context {
	return ctxutil.WithActor(ctx, domain.Actor{UserID: p.manager.ID, Role: domain.RoleManager})
}

func (p *Pipeline) runUsers(ctx context.Context) PhaseResult {
	total := p.cfg.Engineers + 1
	if p.cfg.DryRun {
		return PhaseResult{Skipped: total}
	}

	// Users carry no history, so the bootstrap actor needs no row.
	sysCtx := ctxutil.WithActor(ctx, domain.Actor{Role: domain.RoleAdmin})
	batch := time.Now().UTC().Format("20060102150405")

	m, err := p.users.CreateUser(sysCtx, user.CreateUserInput{
		Email:    fmt.Sprintf("manager-%s@site.example", batch),
		FullName: "Site Manager",
		Role:     domain.RoleManager,
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("create manager: %w", err)}
	}
	p.manager = m

	result := PhaseResult{Inserted: 1}
	for i := range p.cfg.Engineers {
		u, err := p.users.CreateUser(sysCtx, user.CreateUserInput{
			Email:    fmt.Sprintf("engineer-%d-%s@site.example", i+1, batch),
			FullName: fmt.Sprintf("Site Engineer %d", i+1),
			Role:     domain.RoleEngineer,
		})
		if err != nil {
			p.log.Warn("create engineer", slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		p.engineers = append(p.engineers, u)
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runProjects(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: p.cfg.Projects * (1 + p.cfg.StagesPerProject)}
	}
	if p.manager.ID == 0 {
		return PhaseResult{Err: fmt.Errorf("projects phase requires the users phase")}
	}
	ctx = p.managerCtx(ctx)

	var result PhaseResult
	for i := range p.cfg.Projects {
		start := time.Now().UTC().AddDate(0, -i-1, 0)
		proj, err := p.projects.CreateProject(ctx, project.CreateProjectInput{
			Name:      fmt.Sprintf("Residential block %c", 'A'+rune(i%26)),
			ManagerID: p.manager.ID,
			StartDate: &start,
		})
		if err != nil {
			p.log.Warn("create project", slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Inserted++

		s := site{project: proj}
		for j := range p.cfg.StagesPerProject {
			st, err := p.projects.CreateStage(ctx, project.CreateStageInput{
				ProjectID: proj.ID,
				Name:      stageNames[j%len(stageNames)],
				Position:  j + 1,
			})
			if err != nil {
				p.log.Warn("create stage", slog.Int64("project_id", proj.ID), slog.String("error", err.Error()))
				result.Errors++
				continue
			}
			s.stages = append(s.stages, st)
			result.Inserted++
		}
		p.sites = append(p.sites, s)
	}
	return result
}

// runDefects creates defects and walks each a random number of steps along
// New -> In Progress -> Review -> Closed. Some are canceled instead.
func (p *Pipeline) runDefects(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: p.cfg.Projects * p.cfg.DefectsPerProject}
	}
	if len(p.sites) == 0 {
		return PhaseResult{Err: fmt.Errorf("defects phase requires the projects phase")}
	}
	ctx = p.managerCtx(ctx)

	var result PhaseResult
	for _, s := range p.sites {
		for range p.cfg.DefectsPerProject {
			if err := p.seedDefect(ctx, s); err != nil {
				p.log.Warn("seed defect", slog.Int64("project_id", s.project.ID), slog.String("error", err.Error()))
				result.Errors++
				continue
			}
			result.Inserted++
		}
	}
	return result
}

func (p *Pipeline) seedDefect(ctx context.Context, s site) error {
	in := defect.CreateDefectInput{
		ProjectID: s.project.ID,
		Title:     defectTitles[p.rnd.IntN(len(defectTitles))],
		Priority:  domain.Priorities[p.rnd.IntN(len(domain.Priorities))],
	}
	if len(s.stages) > 0 {
		in.StageID = &s.stages[p.rnd.IntN(len(s.stages))].ID
	}
	if len(p.engineers) > 0 && p.rnd.IntN(4) > 0 {
		in.AssigneeID = &p.engineers[p.rnd.IntN(len(p.engineers))].ID
	}

	d, err := p.defects.CreateDefect(ctx, in)
	if err != nil {
		return err
	}

	if p.rnd.IntN(10) == 0 {
		_, err = p.defects.ChangeStatus(ctx, defect.ChangeStatusInput{DefectID: d.ID, Status: domain.StatusCanceled})
		return err
	}
	for _, st := range walk[:p.rnd.IntN(len(walk)+1)] {
		if _, err := p.defects.ChangeStatus(ctx, defect.ChangeStatusInput{DefectID: d.ID, Status: st}); err != nil {
			return err
		}
	}
	if p.rnd.IntN(2) == 0 {
		_, err = p.defects.AddComment(ctx, defect.AddCommentInput{DefectID: d.ID, Body: "Checked during site walk"})
	}
	return err
}
