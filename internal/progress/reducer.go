package progress

import "time"

const (
	// LessonXP is granted once per lesson, on first completion.
	LessonXP = 50

	// CertificateXP is granted once per course certificate.
	CertificateXP = 200
)

// DateLayout is the calendar-day format of State.LastStudyDate.
const DateLayout = "2006-01-02"

// Day returns the calendar-day string of t in t's location.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// PreviousDay returns the calendar-day string of t minus 24 hours.
func PreviousDay(t time.Time) string {
	return Day(t.Add(-24 * time.Hour))
}

// Reduce applies a to s and returns the next state. s is never modified.
// now supplies "today" for streak handling and completion timestamps.
func Reduce(s State, a Action, now time.Time) State {
	switch a := a.(type) {
	case CompleteLesson:
		return completeLesson(s, a, now)
	case AwardCertificate:
		return awardCertificate(s, a)
	case LoadProgress:
		return a.Snapshot.Clone()
	case UpdateStreak:
		return updateStreak(s, now)
	default:
		return s
	}
}

func completeLesson(s State, a CompleteLesson, now time.Time) State {
	next := s.Clone()

	rec := Record{
		CourseID:    a.CourseID,
		LessonID:    a.LessonID,
		Completed:   true,
		CompletedAt: now.UTC().Format(time.RFC3339Nano),
	}
	if a.Score != nil {
		score := *a.Score
		rec.Score = &score
	}

	if i := s.indexOf(a.CourseID, a.LessonID); i >= 0 {
		next.Progress[i] = rec
	} else {
		next.Progress = append(next.Progress, rec)
		next.TotalXP += LessonXP
	}

	next.Streak = nextStreak(s, now)
	next.LastStudyDate = Day(now)
	return next
}

func awardCertificate(s State, a AwardCertificate) State {
	if s.HasCertificate(a.CourseID) {
		return s
	}
	next := s.Clone()
	next.Certificates = append(next.Certificates, a.CourseID)
	next.TotalXP += CertificateXP
	return next
}

func updateStreak(s State, now time.Time) State {
	if s.LastStudyDate == Day(now) {
		return s
	}
	next := s.Clone()
	next.Streak = nextStreak(s, now)
	next.LastStudyDate = Day(now)
	return next
}

// nextStreak is unchanged for a second study today, extended when the last
// study day was yesterday, and restarted at 1 otherwise.
func nextStreak(s State, now time.Time) int {
	switch s.LastStudyDate {
	case Day(now):
		return s.Streak
	case PreviousDay(now):
		return s.Streak + 1
	default:
		return 1
	}
}
