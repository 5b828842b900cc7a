package report

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// Group keys for defects without an assignee or stage.
const (
	keyUnassigned = "unassigned"
	keyNoStage    = "none"
)

// Aggregate is a pure function of the snapshot: no DB, no clock, no logger.
// Identical snapshots and specs produce identical results. maxGroups bounds
// the open-ended groupings only; STATUS and PRIORITY always emit their fixed
// key set. maxGroups <= 0 disables the limit.
//
// Durations are measured against snap.At. A defect's current-status duration
// starts at its last status event, or at created_at when it has none.
// Negative spans from clock skew count as zero.
func Aggregate(snap domain.ReportSnapshot, spec domain.ReportSpec, maxGroups int) (domain.ReportResult, error) {
	if err := spec.Validate(); err != nil {
		return domain.ReportResult{}, err
	}

	at := snap.At.UTC()
	res := domain.ReportResult{
		SnapshotAt: at,
		GroupBy:    spec.GroupBy,
		Total:      len(snap.Defects),
		Empty:      len(snap.Defects) == 0,
	}
	if spec.GroupBy == domain.GroupByTime {
		res.Bucket = spec.Bucket
	}

	events := eventsByDefect(snap.Events)

	members := map[string][]float64{}
	counts := map[string]int{}
	for _, key := range candidateKeys(spec.GroupBy) {
		counts[key] = 0
	}
	for _, d := range snap.Defects {
		key := groupKey(d, spec)
		counts[key]++
		if spec.WithDurations {
			entered := d.CreatedAt
			if evs := events[d.ID]; len(evs) > 0 {
				entered = evs[len(evs)-1].At
			}
			members[key] = append(members[key], seconds(at.Sub(entered)))
		}
	}

	if maxGroups > 0 && candidateKeys(spec.GroupBy) == nil && len(counts) > maxGroups {
		return domain.ReportResult{}, domain.NewFilterError("group_by",
			fmt.Sprintf("%d groups exceed the limit of %d", len(counts), maxGroups))
	}

	keys := orderKeys(spec.GroupBy, counts)
	res.Groups = make([]domain.ReportGroup, 0, len(keys))
	for _, key := range keys {
		g := domain.ReportGroup{Key: key, Count: counts[key]}
		if vals := members[key]; len(vals) > 0 {
			mean, median := meanMedian(vals)
			g.MeanSeconds, g.MedianSeconds = &mean, &median
		}
		res.Groups = append(res.Groups, g)
	}

	if spec.WithDurations {
		res.Dwell = dwell(snap.Defects, events, at)
	}
	return res, nil
}

func eventsByDefect(events []domain.StatusEvent) map[int64][]domain.StatusEvent {
	out := make(map[int64][]domain.StatusEvent)
	for _, e := range events {
		out[e.DefectID] = append(out[e.DefectID], e)
	}
	return out
}

// candidateKeys lists keys that appear even with a zero count.
func candidateKeys(g domain.GroupBy) []string {
	switch g {
	case domain.GroupByStatus:
		keys := make([]string, len(domain.Statuses))
		for i, s := range domain.Statuses {
			keys[i] = string(s)
		}
		return keys
	case domain.GroupByPriority:
		keys := make([]string, len(domain.Priorities))
		for i, p := range domain.Priorities {
			keys[i] = string(p)
		}
		return keys
	}
	return nil
}

func groupKey(d domain.ReportDefect, spec domain.ReportSpec) string {
	switch spec.GroupBy {
	case domain.GroupByStatus:
		return string(d.Status)
	case domain.GroupByPriority:
		return string(d.Priority)
	case domain.GroupByAssignee:
		if d.AssigneeID == nil {
			return keyUnassigned
		}
		return strconv.FormatInt(*d.AssigneeID, 10)
	case domain.GroupByProject:
		return strconv.FormatInt(d.ProjectID, 10)
	case domain.GroupByStage:
		if d.StageID == nil {
			return keyNoStage
		}
		return strconv.FormatInt(*d.StageID, 10)
	default:
		return bucketKey(d.CreatedAt, spec.Bucket)
	}
}

// bucketKey formats the UTC bucket start. Weeks start on Monday.
func bucketKey(t time.Time, b domain.TimeBucket) string {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch b {
	case domain.BucketWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset).Format(time.DateOnly)
	case domain.BucketMonth:
		return day.Format("2006-01")
	default:
		return day.Format(time.DateOnly)
	}
}

// orderKeys returns candidate keys in their canonical order followed by the
// remaining keys. Numeric keys sort by value, placeholder keys go last and
// time buckets sort chronologically.
func orderKeys(g domain.GroupBy, counts map[string]int) []string {
	candidates := candidateKeys(g)
	seen := make(map[string]bool, len(candidates))
	for _, k := range candidates {
		seen[k] = true
	}

	var rest []string
	for k := range counts {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	slices.SortFunc(rest, compareKeys)
	return append(candidates, rest...)
}

func compareKeys(a, b string) int {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(ai, bi)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// dwell collects every status segment: the gap between consecutive events,
// plus the open segment of a non-terminal current status up to at.
func dwell(defects []domain.ReportDefect, events map[int64][]domain.StatusEvent, at time.Time) []domain.StatusDwell {
	segments := map[domain.StatusName][]float64{}
	for _, d := range defects {
		evs := events[d.ID]
		for i, e := range evs {
			var end time.Time
			switch {
			case i+1 < len(evs):
				end = evs[i+1].At
			case !e.Status.IsTerminal():
				end = at
			default:
				continue
			}
			segments[e.Status] = append(segments[e.Status], seconds(end.Sub(e.At)))
		}
	}

	var out []domain.StatusDwell
	order := append([]domain.StatusName(nil), domain.Statuses...)
	var custom []domain.StatusName
	for s := range segments {
		if !s.IsPredefined() {
			custom = append(custom, s)
		}
	}
	slices.Sort(custom)
	order = append(order, custom...)

	for _, s := range order {
		vals := segments[s]
		if len(vals) == 0 {
			continue
		}
		mean, median := meanMedian(vals)
		out = append(out, domain.StatusDwell{Status: s, Segments: len(vals), MeanSeconds: mean, MedianSeconds: median})
	}
	return out
}

func seconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// meanMedian expects a non-empty slice. vals is sorted in place.
func meanMedian(vals []float64) (mean, median float64) {
	slices.Sort(vals)
	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean = sum / float64(len(vals))

	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return mean, vals[mid]
	}
	return mean, (vals[mid-1] + vals[mid]) / 2
}
