package academics

import (
	"fmt"
	"strings"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// Graduate degree types.
const (
	DegreeMasters = "Masters"
	DegreePhD     = "PhD"
)

// researchMarker classifies a course as research work when it appears in the
// course name. A substring heuristic, not a structured attribute: graduate
// workload and graduation figures depend on catalog naming conventions.
const researchMarker = "Research"

var graduateRequirements = map[string]GraduationRequirements{
	DegreeMasters: {MinCredits: 36, MinGPA: 3.0, ResearchCredits: 6},
	DegreePhD:     {MinCredits: 72, MinGPA: 3.0, ResearchCredits: 24},
}

// GraduateWorkload splits a graduate student's enrollment into coursework and
// research buckets.
type GraduateWorkload struct {
	CourseworkCredits int
	ResearchCredits   int
	TotalCredits      int
}

// GraduateStudent is a student in a Masters or PhD program.
type GraduateStudent struct {
	Student

	degreeType       string
	thesisAdvisor    string
	thesisTopic      string
	committeeMembers []string
}

// NewGraduateStudent creates a graduate student. degreeType defaults to
// Masters when empty.
func NewGraduateStudent(name, email, phone, major, degreeType, currentTerm string) (*GraduateStudent, error) {
	base, err := newStudent(name, email, phone, major, currentTerm, "GR")
	if err != nil {
		return nil, err
	}

	if degreeType == "" {
		degreeType = DegreeMasters
	}
	if _, ok := graduateRequirements[degreeType]; !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidDegreeType, degreeType)
	}

	return &GraduateStudent{
		Student:    base,
		degreeType: degreeType,
	}, nil
}

// DegreeType returns Masters or PhD.
func (g *GraduateStudent) DegreeType() string {
	return g.degreeType
}

// ThesisAdvisor returns the research advisor's name.
func (g *GraduateStudent) ThesisAdvisor() string {
	return g.thesisAdvisor
}

// SetThesisAdvisor assigns the research advisor.
func (g *GraduateStudent) SetThesisAdvisor(advisor string) {
	g.thesisAdvisor = advisor
}

// ThesisTopic returns the research topic.
func (g *GraduateStudent) ThesisTopic() string {
	return g.thesisTopic
}

// SetThesisTopic records the research topic.
func (g *GraduateStudent) SetThesisTopic(topic string) {
	g.thesisTopic = topic
}

// CommitteeMembers returns a copy of the thesis committee.
func (g *GraduateStudent) CommitteeMembers() []string {
	members := make([]string, len(g.committeeMembers))
	copy(members, g.committeeMembers)
	return members
}

// AddCommitteeMember appends a thesis committee member.
func (g *GraduateStudent) AddCommitteeMember(member string) {
	if member == "" {
		return
	}
	g.committeeMembers = append(g.committeeMembers, member)
}

// GraduationRequirements returns the thresholds for the degree type.
func (g *GraduateStudent) GraduationRequirements() GraduationRequirements {
	return graduateRequirements[g.degreeType]
}

// CalculateWorkload splits enrollment into coursework and research buckets
// using the research name heuristic.
func (g *GraduateStudent) CalculateWorkload() GraduateWorkload {
	var workload GraduateWorkload

	for _, record := range g.enrolledCourses {
		if strings.Contains(record.Course.Name, researchMarker) {
			workload.ResearchCredits += record.Course.Credits
		} else {
			workload.CourseworkCredits += record.Course.Credits
		}
	}

	workload.TotalCredits = workload.CourseworkCredits + workload.ResearchCredits
	return workload
}

// CanGraduate additionally requires the research-credit threshold on top of
// the credit and GPA minimums.
func (g *GraduateStudent) CanGraduate() bool {
	requirements := graduateRequirements[g.degreeType]
	workload := g.CalculateWorkload()

	return g.totalCredits >= requirements.MinCredits &&
		g.GPA("") >= requirements.MinGPA &&
		workload.ResearchCredits >= requirements.ResearchCredits
}

// Transcript aggregates the student's academic state with the variant role
// in the identity snapshot.
func (g *GraduateStudent) Transcript() Transcript {
	transcript := g.Student.Transcript()
	transcript.StudentInfo = g.BasicInfo()
	return transcript
}

// Role implements Member.
func (g *GraduateStudent) Role() string {
	return fmt.Sprintf("Graduate Student (%s)", g.degreeType)
}

// Responsibilities implements Member.
func (g *GraduateStudent) Responsibilities() []string {
	return append(g.Student.Responsibilities(),
		"Conduct original research",
		"Work with thesis advisor",
		"Present research findings",
		"Complete thesis/dissertation",
	)
}

// BasicInfo implements Member.
func (g *GraduateStudent) BasicInfo() BasicInfo {
	return g.basicInfo(g.Role())
}
