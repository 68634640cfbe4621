package progress

// Record is the learner's result for one (course, lesson) pair.
type Record struct {
	CourseID    string `json:"courseId"`
	LessonID    string `json:"lessonId"`
	Completed   bool   `json:"completed"`
	Score       *int   `json:"score,omitempty"`       // 0-100
	CompletedAt string `json:"completedAt,omitempty"` // RFC 3339
}

// State is the whole persisted progress snapshot.
type State struct {
	Progress      []Record `json:"progress"`
	Certificates  []string `json:"certificates"`
	TotalXP       int      `json:"totalXP"`
	Streak        int      `json:"streak"`
	LastStudyDate string   `json:"lastStudyDate,omitempty"` // YYYY-MM-DD
}

// NewState returns the empty initial state.
func NewState() State {
	return State{
		Progress:     []Record{},
		Certificates: []string{},
	}
}

// Clone returns a deep copy so callers cannot mutate the store's state.
func (s State) Clone() State {
	out := s
	if s.Progress != nil {
		out.Progress = make([]Record, len(s.Progress))
		for i, r := range s.Progress {
			out.Progress[i] = r
			if r.Score != nil {
				score := *r.Score
				out.Progress[i].Score = &score
			}
		}
	}
	if s.Certificates != nil {
		out.Certificates = make([]string, len(s.Certificates))
		copy(out.Certificates, s.Certificates)
	}
	return out
}

// indexOf returns the position of the record for (courseID, lessonID), or -1.
func (s State) indexOf(courseID, lessonID string) int {
	for i, r := range s.Progress {
		if r.CourseID == courseID && r.LessonID == lessonID {
			return i
		}
	}
	return -1
}

// HasCertificate reports whether a certificate was awarded for courseID.
func (s State) HasCertificate(courseID string) bool {
	for _, c := range s.Certificates {
		if c == courseID {
			return true
		}
	}
	return false
}

// Score returns a pointer to v, for building optional scores.
func Score(v int) *int {
	return &v
}
