package catalog

// Difficulty is the advertised level of a course.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// AllDifficulties returns all difficulties in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Track selects which code runner a course's exercises use.
type Track string

const (
	TrackJavaScript Track = "javascript"
	TrackPython     Track = "python"
	TrackMarkup     Track = "markup"
)

// AllTracks returns all tracks.
func AllTracks() []Track {
	return []Track{TrackJavaScript, TrackPython, TrackMarkup}
}

// TrackDisplayName returns a human-readable name for a track.
func TrackDisplayName(t Track) string {
	switch t {
	case TrackJavaScript:
		return "JavaScript"
	case TrackPython:
		return "Python"
	case TrackMarkup:
		return "HTML & CSS"
	default:
		return string(t)
	}
}

// Course is a sequence of lessons on one topic.
type Course struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Icon          string     `json:"icon"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime string     `json:"estimatedTime"`
	Track         Track      `json:"track"`
	Lessons       []Lesson   `json:"lessons"`
	CheatSheet    string     `json:"cheatSheet"`
}

// Lesson is a single unit of study inside a course.
type Lesson struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	CodeExample string         `json:"codeExample,omitempty"`
	Exercise    *Exercise      `json:"exercise,omitempty"`
	Quiz        []QuizQuestion `json:"quiz,omitempty"`
}

// HasQuiz reports whether the lesson ends with a quiz.
func (l Lesson) HasQuiz() bool {
	return len(l.Quiz) > 0
}

// Summary returns the first heading or line of the content, trimmed to 100 runes.
func (l Lesson) Summary() string {
	line := l.Content
	for i, r := range line {
		if r == '\n' {
			line = line[:i]
			break
		}
	}
	for len(line) > 0 && (line[0] == '#' || line[0] == ' ') {
		line = line[1:]
	}
	runes := []rune(line)
	if len(runes) > 100 {
		return string(runes[:100]) + "..."
	}
	return line
}

// Exercise is a hands-on coding task attached to a lesson.
type Exercise struct {
	Instructions string   `json:"instructions"`
	StarterCode  string   `json:"starterCode"`
	Solution     string   `json:"solution"`
	Tests        []string `json:"tests,omitempty"`
}

// QuizQuestion is one multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Resource is a standalone reference document.
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Content     string `json:"content"`
}

// File is the on-disk catalog document.
type File struct {
	Version   string     `json:"version"`
	Courses   []Course   `json:"courses"`
	Resources []Resource `json:"resources,omitempty"`
}
