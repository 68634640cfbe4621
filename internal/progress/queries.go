package progress

import (
	"math"
	"sort"
	"time"
)

// Placeholder totals used when no catalog is supplied.
const (
	LegacyCourseTotal  = 10
	LegacyOverallTotal = 50
)

// Totals supplies lesson counts from the course catalog.
// *catalog.Catalog satisfies it.
type Totals interface {
	LessonCount(courseID string) int
	TotalLessons() int
	CourseIDs() []string
}

// Completion is a completed/total pair with its rounded percentage.
type Completion struct {
	Completed  int
	Total      int
	Percentage int
}

// Percent returns round(100 * completed / total), or 0 when total is 0.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func newCompletion(completed, total int) Completion {
	return Completion{Completed: completed, Total: total, Percentage: Percent(completed, total)}
}

// LessonProgress returns the record for (courseID, lessonID).
func (s State) LessonProgress(courseID, lessonID string) (Record, bool) {
	i := s.indexOf(courseID, lessonID)
	if i < 0 {
		return Record{}, false
	}
	rec := s.Progress[i]
	if rec.Score != nil {
		rec.Score = Score(*rec.Score)
	}
	return rec, true
}

// IsCompleted reports whether (courseID, lessonID) has a completed record.
func (s State) IsCompleted(courseID, lessonID string) bool {
	rec, ok := s.LessonProgress(courseID, lessonID)
	return ok && rec.Completed
}

// CompletedInCourse counts completed lessons in courseID.
func (s State) CompletedInCourse(courseID string) int {
	n := 0
	for _, r := range s.Progress {
		if r.CourseID == courseID && r.Completed {
			n++
		}
	}
	return n
}

// CompletedLessons counts completed lessons across all courses.
func (s State) CompletedLessons() int {
	n := 0
	for _, r := range s.Progress {
		if r.Completed {
			n++
		}
	}
	return n
}

// CourseProgress reports completion for courseID. With nil totals the
// course is assumed to have LegacyCourseTotal lessons.
func (s State) CourseProgress(courseID string, totals Totals) Completion {
	return newCompletion(s.CompletedInCourse(courseID), courseTotal(totals, courseID))
}

// OverallProgress reports completion across all courses. With nil totals
// the catalog is assumed to hold LegacyOverallTotal lessons.
func (s State) OverallProgress(totals Totals) Completion {
	total := LegacyOverallTotal
	if totals != nil {
		total = totals.TotalLessons()
	}
	return newCompletion(s.CompletedLessons(), total)
}

// CertificateEligible reports whether every lesson of courseID is complete.
func (s State) CertificateEligible(courseID string, totals Totals) bool {
	total := courseTotal(totals, courseID)
	return total > 0 && s.CompletedInCourse(courseID) >= total
}

// EligibleCertificates lists the catalog courses whose lessons are all
// complete, in catalog order. Awarded courses are included.
func (s State) EligibleCertificates(totals Totals) []string {
	if totals == nil {
		return nil
	}
	var ids []string
	for _, id := range totals.CourseIDs() {
		if s.CertificateEligible(id, totals) {
			ids = append(ids, id)
		}
	}
	return ids
}

// RecentActivity returns up to n completed records, most recent first.
// n <= 0 returns all of them.
func (s State) RecentActivity(n int) []Record {
	type dated struct {
		rec Record
		at  time.Time
	}
	var items []dated
	for _, r := range s.Progress {
		if !r.Completed {
			continue
		}
		// Missing or malformed timestamps (possible in imported snapshots)
		// become the zero time and sort after every dated record.
		at, _ := time.Parse(time.RFC3339Nano, r.CompletedAt)
		items = append(items, dated{rec: r, at: at})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].at.After(items[j].at)
	})
	if n > 0 && len(items) > n {
		items = items[:n]
	}

	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}

// Summary is the dashboard view of a State.
type Summary struct {
	TotalXP          int
	Streak           int
	LastStudyDate    string
	Certificates     int
	CompletedLessons int
	Overall          Completion
}

// Summarize builds the dashboard summary.
func (s State) Summarize(totals Totals) Summary {
	return Summary{
		TotalXP:          s.TotalXP,
		Streak:           s.Streak,
		LastStudyDate:    s.LastStudyDate,
		Certificates:     len(s.Certificates),
		CompletedLessons: s.CompletedLessons(),
		Overall:          s.OverallProgress(totals),
	}
}

func courseTotal(totals Totals, courseID string) int {
	if totals == nil {
		return LegacyCourseTotal
	}
	return totals.LessonCount(courseID)
}
