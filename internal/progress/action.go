package progress

// Kind names an action in the journal.
type Kind string

const (
	KindCompleteLesson   Kind = "complete_lesson"
	KindAwardCertificate Kind = "award_certificate"
	KindLoadProgress     Kind = "load_progress"
	KindUpdateStreak     Kind = "update_streak"
)

// Action is a state transition request handled by Reduce.
type Action interface {
	Kind() Kind
}

// CompleteLesson marks a lesson complete with an optional score.
type CompleteLesson struct {
	CourseID string
	LessonID string
	Score    *int
}

// AwardCertificate grants the certificate for a course.
type AwardCertificate struct {
	CourseID string
}

// LoadProgress replaces the whole state with Snapshot.
type LoadProgress struct {
	Snapshot State
}

// UpdateStreak records a study day without completing a lesson.
type UpdateStreak struct{}

func (CompleteLesson) Kind() Kind   { return KindCompleteLesson }
func (AwardCertificate) Kind() Kind { return KindAwardCertificate }
func (LoadProgress) Kind() Kind     { return KindLoadProgress }
func (UpdateStreak) Kind() Kind     { return KindUpdateStreak }
