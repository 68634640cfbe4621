package catalog

// Catalog is an indexed, read-only view over a validated catalog file.
type Catalog struct {
	version   string
	courses   []Course
	resources []Resource

	courseIndex   map[string]int
	resourceIndex map[string]int
}

// New indexes f. Callers are expected to have validated f.
func New(f File) *Catalog {
	c := &Catalog{
		version:       f.Version,
		courses:       f.Courses,
		resources:     f.Resources,
		courseIndex:   make(map[string]int, len(f.Courses)),
		resourceIndex: make(map[string]int, len(f.Resources)),
	}
	for i, course := range f.Courses {
		c.courseIndex[course.ID] = i
	}
	for i, r := range f.Resources {
		c.resourceIndex[r.ID] = i
	}
	return c
}

// Version returns the catalog format version.
func (c *Catalog) Version() string {
	return c.version
}

// Courses returns all courses in catalog order.
func (c *Catalog) Courses() []Course {
	return c.courses
}

// Course returns the course with the given ID.
func (c *Catalog) Course(id string) (*Course, bool) {
	i, ok := c.courseIndex[id]
	if !ok {
		return nil, false
	}
	return &c.courses[i], true
}

// Lesson returns a lesson and its position within the course.
func (c *Catalog) Lesson(courseID, lessonID string) (*Lesson, int, bool) {
	course, ok := c.Course(courseID)
	if !ok {
		return nil, -1, false
	}
	for i := range course.Lessons {
		if course.Lessons[i].ID == lessonID {
			return &course.Lessons[i], i, true
		}
	}
	return nil, -1, false
}

// Neighbors returns the lessons before and after lessonID, if any.
func (c *Catalog) Neighbors(courseID, lessonID string) (prev, next *Lesson) {
	course, ok := c.Course(courseID)
	if !ok {
		return nil, nil
	}
	_, idx, ok := c.Lesson(courseID, lessonID)
	if !ok {
		return nil, nil
	}
	if idx > 0 {
		prev = &course.Lessons[idx-1]
	}
	if idx+1 < len(course.Lessons) {
		next = &course.Lessons[idx+1]
	}
	return prev, next
}

// LessonCount returns the number of lessons in a course, 0 if unknown.
func (c *Catalog) LessonCount(courseID string) int {
	course, ok := c.Course(courseID)
	if !ok {
		return 0
	}
	return len(course.Lessons)
}

// TotalLessons returns the number of lessons across all courses.
func (c *Catalog) TotalLessons() int {
	total := 0
	for _, course := range c.courses {
		total += len(course.Lessons)
	}
	return total
}

// CourseIDs returns every course ID in catalog order.
func (c *Catalog) CourseIDs() []string {
	ids := make([]string, len(c.courses))
	for i, course := range c.courses {
		ids[i] = course.ID
	}
	return ids
}

// ByTrack returns the courses using the given track.
func (c *Catalog) ByTrack(t Track) []Course {
	var result []Course
	for _, course := range c.courses {
		if course.Track == t {
			result = append(result, course)
		}
	}
	return result
}

// Resources returns all standalone resources.
func (c *Catalog) Resources() []Resource {
	return c.resources
}

// Resource returns the resource with the given ID.
func (c *Catalog) Resource(id string) (*Resource, bool) {
	i, ok := c.resourceIndex[id]
	if !ok {
		return nil, false
	}
	return &c.resources[i], true
}
