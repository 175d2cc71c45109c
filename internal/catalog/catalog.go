// Package catalog holds the static course and career-path reference data.
// These are read-only lookup tables compiled into the binary — no derived
// invariants, no persistence.
package catalog

// Course is one course in the prerequisite catalog.
type Course struct {
	ID            string   `json:"id"`
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Year          int      `json:"year"`
	Semester      string   `json:"semester"`
	Prerequisites []string `json:"prerequisites"`
	Category      string   `json:"category,omitempty"`
}

// CourseGraph wraps the full course list for graph visualization clients.
type CourseGraph struct {
	Courses []Course `json:"courses"`
}

// TierCourse is one course inside a career path tier.
type TierCourse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Tier        int    `json:"tier"`
}

// CareerPathCategory labels one tier of a career path.
type CareerPathCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CareerPath is a complete career path configuration: its tier labels and the
// courses assigned to each tier.
type CareerPath struct {
	RootLabel  string               `json:"root_label"`
	Categories []CareerPathCategory `json:"categories"`
	Courses    []TierCourse         `json:"courses"`
}

// CourseByID returns the course with the given id, or false if none matches.
func CourseByID(id string) (Course, bool) {
	for _, c := range Courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

// CareerPathIDs returns the available career path identifiers in a stable order.
func CareerPathIDs() []string {
	return []string{"cybersecurity", "swe"}
}

// CareerPathByID returns the career path with the given id, or false if none
// matches.
func CareerPathByID(id string) (CareerPath, bool) {
	p, ok := CareerPaths[id]
	return p, ok
}
