package models

// IncidentStatus is the lifecycle state of a disciplinary incident.
// Status is derived from the decision state of the suspect involvements,
// it is never set independently (see DeriveStatus).
type IncidentStatus string

const (
	StatusPending       IncidentStatus = "pending"
	StatusInvestigating IncidentStatus = "investigating"
	StatusDecided       IncidentStatus = "decided"
	// StatusArchived exists in stored data but no transition produces it.
	StatusArchived IncidentStatus = "archived"
)

// InvolvementRole qualifies a student's link to an incident.
type InvolvementRole string

const (
	RoleSuspect InvolvementRole = "suspect"
	RoleWitness InvolvementRole = "witness"
	RoleVictim  InvolvementRole = "victim"
)

// ValidRole reports whether r is one of the three involvement roles.
func ValidRole(r InvolvementRole) bool {
	return r == RoleSuspect || r == RoleWitness || r == RoleVictim
}

// InvolvedStudent links a student to an incident with a role and carries
// any decision recorded for that student. A decision without a DecisionNo
// is a proposal from the penalty catalog, not a finalized decision.
type InvolvedStudent struct {
	StudentID string          `json:"studentId"`
	Role      InvolvementRole `json:"role"`
	Notes     string          `json:"notes,omitempty"`

	Decision       string `json:"decision,omitempty"`
	DecisionNo     string `json:"decisionNo,omitempty"`
	DecisionDate   string `json:"decisionDate,omitempty"`
	DecisionReason string `json:"decisionReason,omitempty"`
	PenaltyScore   string `json:"penaltyScore,omitempty"`

	AIAnalysis string `json:"aiAnalysis,omitempty"`
}

// Incident is a recorded disciplinary event. Code has the form
// OLAY<year>-<seq> and is immutable once assigned.
type Incident struct {
	ID               string            `json:"id"`
	Code             string            `json:"code"`
	Title            string            `json:"title"`
	Date             string            `json:"date"`
	Time             string            `json:"time"`
	Location         string            `json:"location"`
	Description      string            `json:"description"`
	Status           IncidentStatus    `json:"status"`
	InvolvedStudents []InvolvedStudent `json:"involvedStudents"`
	Petitioner       string            `json:"petitioner,omitempty"`
	PetitionerInfo   string            `json:"petitionerInfo,omitempty"`
}

// Involvement returns the relation for studentID, or nil.
func (inc *Incident) Involvement(studentID string) *InvolvedStudent {
	for i := range inc.InvolvedStudents {
		if inc.InvolvedStudents[i].StudentID == studentID {
			return &inc.InvolvedStudents[i]
		}
	}
	return nil
}

// DeriveStatus computes the incident status from its involvements:
// decided when every suspect carries a non-empty decision, otherwise
// investigating. An incident with no suspects derives as decided
// (vacuous truth, kept intentionally).
func DeriveStatus(involved []InvolvedStudent) IncidentStatus {
	for _, rel := range involved {
		if rel.Role == RoleSuspect && rel.Decision == "" {
			return StatusInvestigating
		}
	}
	return StatusDecided
}
