package catalog

// Courses is the CS/CSE prerequisite catalog, ordered by year then semester.
var Courses = []Course{
	{
		ID: "math-021", Code: "MATH 021",
		Name:     "Calculus I for Physical Sciences and Engineering",
		FullName: "MATH 021: Calculus I for Physical Sciences and Engineering",
		Year:     1, Semester: "fall", Prerequisites: []string{}, Category: "Math",
	},
	{
		ID: "wri-010", Code: "WRI 010",
		Name:     "College Reading and Composition",
		FullName: "WRI 010: College Reading and Composition",
		Year:     1, Semester: "fall", Prerequisites: []string{}, Category: "Writing",
	},
	{
		ID: "cse-022", Code: "CSE 022",
		Name:     "Introduction to Programming",
		FullName: "CSE 022: Introduction to Programming",
		Year:     1, Semester: "fall", Prerequisites: []string{}, Category: "CSE",
	},
	{
		ID: "math-022", Code: "MATH 022",
		Name:     "Calculus II for Physical Sciences and Engineering",
		FullName: "MATH 022: Calculus II for Physical Sciences and Engineering",
		Year:     1, Semester: "spring", Prerequisites: []string{"math-021"}, Category: "Math",
	},
	{
		ID: "cse-024", Code: "CSE 024",
		Name:     "Advanced Programming",
		FullName: "CSE 024: Advanced Programming",
		Year:     1, Semester: "spring", Prerequisites: []string{"cse-022"}, Category: "CSE",
	},
	{
		ID: "cse-030", Code: "CSE 030",
		Name:     "Data Structures",
		FullName: "CSE 030: Data Structures",
		Year:     2, Semester: "fall", Prerequisites: []string{"cse-024"}, Category: "CSE",
	},
	{
		ID: "cse-031", Code: "CSE 031",
		Name:     "Computer Organization and Assembly Language",
		FullName: "CSE 031: Computer Organization and Assembly Language",
		Year:     2, Semester: "spring", Prerequisites: []string{"cse-024"}, Category: "CSE",
	},
	{
		ID: "cse-100", Code: "CSE 100",
		Name:     "Algorithm Design and Analysis",
		FullName: "CSE 100: Algorithm Design and Analysis",
		Year:     3, Semester: "fall", Prerequisites: []string{"cse-030"}, Category: "CSE",
	},
	{
		ID: "cse-120", Code: "CSE 120",
		Name:     "Software Engineering",
		FullName: "CSE 120: Software Engineering",
		Year:     3, Semester: "spring", Prerequisites: []string{"cse-100"}, Category: "CSE",
	},
	{
		ID: "cse-150", Code: "CSE 150",
		Name:     "Operating Systems",
		FullName: "CSE 150: Operating Systems",
		Year:     3, Semester: "spring", Prerequisites: []string{"cse-031", "cse-100"}, Category: "CSE",
	},
	{
		ID: "cse-160", Code: "CSE 160",
		Name:     "Computer Networks",
		FullName: "CSE 160: Computer Networks",
		Year:     4, Semester: "fall", Prerequisites: []string{"cse-150"}, Category: "CSE",
	},
	{
		ID: "cse-178", Code: "CSE 178",
		Name:     "Computers and Networks Security",
		FullName: "CSE 178: Computers and Networks Security",
		Year:     4, Semester: "spring", Prerequisites: []string{"cse-160"}, Category: "CSE",
	},
}

// CareerPaths maps career path ids to their tier configuration.
var CareerPaths = map[string]CareerPath{
	"cybersecurity": {
		RootLabel: "Cybersecurity",
		Categories: []CareerPathCategory{
			{ID: "tier-1", Label: "TIER 1: ESSENTIAL SECURITY FOUNDATIONS"},
			{ID: "tier-2", Label: "TIER 2: ADVANCED SECURITY TOPICS"},
			{ID: "tier-3", Label: "TIER 3: SECURITY-ADJACENT (Optional)"},
		},
		Courses: []TierCourse{
			{
				ID: "cybersec-cse-178", Code: "CSE 178",
				Name:        "Computers and Networks Security",
				FullName:    "CSE 178: Computers and Networks Security",
				Description: "Direct security concepts: threats, attacks, defenses",
				Tier:        1,
			},
			{
				ID: "cybersec-cse-160", Code: "CSE 160",
				Name:        "Computer Networks",
				FullName:    "CSE 160: Computer Networks",
				Description: "You cannot secure what you don't understand",
				Tier:        1,
			},
			{
				ID: "cybersec-cse-150", Code: "CSE 150",
				Name:        "Operating Systems",
				FullName:    "CSE 150: Operating Systems",
				Description: "Processes, memory, and privilege — the attack surface itself",
				Tier:        2,
			},
			{
				ID: "cybersec-cse-120", Code: "CSE 120",
				Name:        "Software Engineering",
				FullName:    "CSE 120: Software Engineering",
				Description: "Secure development practices at team scale",
				Tier:        3,
			},
		},
	},
	"swe": {
		RootLabel: "Software Engineering",
		Categories: []CareerPathCategory{
			{ID: "tier-1", Label: "TIER 1: CORE ENGINEERING"},
			{ID: "tier-2", Label: "TIER 2: SYSTEMS DEPTH"},
		},
		Courses: []TierCourse{
			{
				ID: "swe-cse-120", Code: "CSE 120",
				Name:        "Software Engineering",
				FullName:    "CSE 120: Software Engineering",
				Description: "Team projects, design reviews, and delivery practice",
				Tier:        1,
			},
			{
				ID: "swe-cse-100", Code: "CSE 100",
				Name:        "Algorithm Design and Analysis",
				FullName:    "CSE 100: Algorithm Design and Analysis",
				Description: "The interview gate and the day-job toolbox",
				Tier:        1,
			},
			{
				ID: "swe-cse-150", Code: "CSE 150",
				Name:        "Operating Systems",
				FullName:    "CSE 150: Operating Systems",
				Description: "What your code actually runs on",
				Tier:        2,
			},
		},
	},
}
