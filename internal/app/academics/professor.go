package academics

// Professor workload weights.
const (
	professorCoursePoints = 20
	grantResearchPoints   = 10
	phdStudentPoints      = 5
	committeePoints       = 3
)

// Professor is a tenure-track faculty member with research and service duties.
type Professor struct {
	Faculty

	tenured        bool
	researchGrants []string
	phdStudents    []string
	committees     []string
}

// NewProfessor creates a professor.
func NewProfessor(name, email, phone, department string, salary float64, tenured bool) (*Professor, error) {
	base, err := newFaculty(name, email, phone, department, salary, "")
	if err != nil {
		return nil, err
	}

	return &Professor{
		Faculty: base,
		tenured: tenured,
	}, nil
}

// Tenured reports whether the professor holds tenure.
func (p *Professor) Tenured() bool {
	return p.tenured
}

// GrantTenure marks the professor as tenured.
func (p *Professor) GrantTenure() {
	p.tenured = true
}

// ResearchGrants returns a copy of the active grant list.
func (p *Professor) ResearchGrants() []string {
	grants := make([]string, len(p.researchGrants))
	copy(grants, p.researchGrants)
	return grants
}

// AddResearchGrant records an active research grant.
func (p *Professor) AddResearchGrant(grant string) {
	if grant == "" {
		return
	}
	p.researchGrants = append(p.researchGrants, grant)
}

// PhDStudents returns a copy of the advised PhD student list.
func (p *Professor) PhDStudents() []string {
	students := make([]string, len(p.phdStudents))
	copy(students, p.phdStudents)
	return students
}

// AddPhDStudent records an advised PhD student.
func (p *Professor) AddPhDStudent(studentID string) {
	if studentID == "" {
		return
	}
	p.phdStudents = append(p.phdStudents, studentID)
}

// Committees returns a copy of the committee membership list.
func (p *Professor) Committees() []string {
	committees := make([]string, len(p.committees))
	copy(committees, p.committees)
	return committees
}

// JoinCommittee records a committee membership.
func (p *Professor) JoinCommittee(committee string) {
	if committee == "" {
		return
	}
	p.committees = append(p.committees, committee)
}

// CalculateWorkload extends the base workload with research and service
// loads and the combined load points.
func (p *Professor) CalculateWorkload() Workload {
	workload := p.baseWorkload("Professor")

	workload.ResearchLoad = grantResearchPoints*len(p.researchGrants) + phdStudentPoints*len(p.phdStudents)
	workload.ServiceLoad = committeePoints * len(p.committees)
	workload.TotalLoadPoints = professorCoursePoints*workload.Courses + workload.ResearchLoad + workload.ServiceLoad

	return workload
}

// Role implements Member.
func (p *Professor) Role() string {
	return "Professor"
}

// Responsibilities implements Member.
func (p *Professor) Responsibilities() []string {
	return []string{
		"Teach assigned courses",
		"Conduct and publish research",
		"Advise PhD students",
		"Serve on university committees",
		"Pursue research funding",
	}
}

// BasicInfo implements Member.
func (p *Professor) BasicInfo() BasicInfo {
	return p.basicInfo(p.Role())
}
