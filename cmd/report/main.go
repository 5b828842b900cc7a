// Command report computes a defect report and prints it as JSON. With --save
// the report is persisted and the stored record is printed instead.
//
// Flags:
//
//	--actor       requesting user id (required)
//	--role        requesting user role (default: Manager)
//	--group-by    STATUS, PRIORITY, ASSIGNEE, PROJECT, STAGE or TIME
//	--bucket      DAY, WEEK or MONTH when grouping by TIME
//	--projects    comma-separated project ids
//	--stages      comma-separated stage ids
//	--statuses    comma-separated status names
//	--priorities  comma-separated priorities
//	--from, --to  created_at window, RFC 3339 or YYYY-MM-DD
//	--durations   include status durations
//	--save        persist the report
//
// Exit codes: 0 = success, 1 = error, 2 = invalid filter.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/app"
	"github.com/heartmarshall/sitedefects-backend/internal/config"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/internal/service/report"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

func main() {
	actorFlag := flag.Int64("actor", 0, "requesting user id")
	roleFlag := flag.String("role", string(domain.RoleManager), "requesting user role")
	groupFlag := flag.String("group-by", string(domain.GroupByStatus), "grouping dimension")
	bucketFlag := flag.String("bucket", "", "time bucket for TIME grouping")
	projectsFlag := flag.String("projects", "", "comma-separated project ids")
	stagesFlag := flag.String("stages", "", "comma-separated stage ids")
	statusesFlag := flag.String("statuses", "", "comma-separated status names")
	prioritiesFlag := flag.String("priorities", "", "comma-separated priorities")
	fromFlag := flag.String("from", "", "created_at lower bound (inclusive)")
	toFlag := flag.String("to", "", "created_at upper bound (exclusive)")
	durationsFlag := flag.Bool("durations", false, "include status durations")
	saveFlag := flag.Bool("save", false, "persist the report")
	flag.Parse()

	spec, err := buildSpec(*groupFlag, *bucketFlag, *projectsFlag, *stagesFlag, *statusesFlag, *prioritiesFlag, *fromFlag, *toFlag, *durationsFlag)
	if err != nil {
		log.Printf("invalid flags: %v", err)
		os.Exit(2)
	}
	if *actorFlag <= 0 {
		log.Print("--actor is required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = ctxutil.WithActor(ctx, domain.Actor{UserID: *actorFlag, Role: domain.RoleName(*roleFlag)})

	a, err := app.New(ctx, *cfg, logger)
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	out, err := run(ctx, a.Reports, spec, *saveFlag)
	if err != nil {
		logger.Error("report failed", slog.String("error", err.Error()))
		a.Close()
		if errors.Is(err, domain.ErrInvalidFilter) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("write output", slog.String("error", err.Error()))
	}
}

func run(ctx context.Context, svc *report.Service, spec domain.ReportSpec, save bool) (any, error) {
	if !save {
		return svc.Compute(ctx, spec)
	}
	res, err := svc.Generate(ctx, spec)
	if err != nil {
		return nil, err
	}
	return struct {
		ID          int64               `json:"id"`
		GeneratedAt time.Time           `json:"generated_at"`
		Result      domain.ReportResult `json:"result"`
	}{res.Report.ID, res.Report.GeneratedAt, res.Result}, nil
}

func buildSpec(groupBy, bucket, projects, stages, statuses, priorities, from, to string, durations bool) (domain.ReportSpec, error) {
	spec := domain.ReportSpec{
		GroupBy:       domain.GroupBy(strings.ToUpper(groupBy)),
		Bucket:        domain.TimeBucket(strings.ToUpper(bucket)),
		WithDurations: durations,
	}

	var err error
	if spec.Filter.ProjectIDs, err = parseIDs(projects); err != nil {
		return spec, fmt.Errorf("projects: %w", err)
	}
	if spec.Filter.StageIDs, err = parseIDs(stages); err != nil {
		return spec, fmt.Errorf("stages: %w", err)
	}
	for _, s := range splitList(statuses) {
		spec.Filter.Statuses = append(spec.Filter.Statuses, domain.StatusName(s))
	}
	for _, p := range splitList(priorities) {
		spec.Filter.Priorities = append(spec.Filter.Priorities, domain.Priority(strings.ToUpper(p)))
	}
	if spec.Filter.CreatedFrom, err = parseTime(from); err != nil {
		return spec, fmt.Errorf("from: %w", err)
	}
	if spec.Filter.CreatedTo, err = parseTime(to); err != nil {
		return spec, fmt.Errorf("to: %w", err)
	}
	return spec, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range splitList(s) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized time %q", s)
}
