package models

import "strings"

// Institution is the singleton school configuration. Type selects the
// regulation dataset and the document letterhead variant.
type Institution struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Type        string `json:"type"`
	Year        string `json:"year"`
	Province    string `json:"province"`
	District    string `json:"district"`
	ManagerName string `json:"managerName"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Fax         string `json:"fax"`
	HeaderText  string `json:"headerText"`
	EBYSCode    string `json:"ebysCode"`
}

// InstitutionTypeMiddle is the lower secondary profile. Anything else is
// treated as the upper secondary (lise) profile.
const InstitutionTypeMiddle = "Ortaokul"

// IsMiddleSchool reports whether the middle-school regulation set applies.
func (i Institution) IsMiddleSchool() bool {
	return i.Type == InstitutionTypeMiddle
}

// BoardMember is one seat of the behaviour evaluation board.
type BoardMember struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	MainName     string `json:"mainName"`
	MainTitle    string `json:"mainTitle"`
	ReserveName  string `json:"reserveName"`
	ReserveTitle string `json:"reserveTitle"`
}

// IsChair reports whether this seat chairs the board. Chair detection is
// a substring match on the role label, matching how board data is
// entered in practice ("BAŞKAN", "KURUL BAŞKANI", ...).
func (m BoardMember) IsChair() bool {
	return strings.Contains(m.Role, "BAŞKAN")
}

// BoardChairName returns the main appointee of the chair seat, or the
// dotted placeholder when no chair is configured.
func BoardChairName(members []BoardMember) string {
	for _, m := range members {
		if m.IsChair() && m.MainName != "" {
			return m.MainName
		}
	}
	return "......................................."
}

// MinBoardMembers is enforced at deletion time only: a shorter list that
// was loaded from disk is tolerated.
const MinBoardMembers = 3

// DefaultBoardMembers is the seat layout seeded on first run.
func DefaultBoardMembers() []BoardMember {
	return []BoardMember{
		{ID: "1", Role: "BAŞKAN", MainTitle: "Müdür Başyardımcısı", ReserveTitle: "Müdür Yardımcısı"},
		{ID: "2", Role: "1. ÜYE", MainTitle: "Öğretmen", ReserveTitle: "Öğretmen"},
		{ID: "3", Role: "2. ÜYE", MainTitle: "Öğretmen", ReserveTitle: "Öğretmen"},
		{ID: "4", Role: "3. ÜYE", MainTitle: "Öğretmen", ReserveTitle: "Öğretmen"},
		{ID: "5", Role: "4. ÜYE (VELİ)", MainTitle: "Okul Aile Bir. Üyesi", ReserveTitle: "Yedek Veli"},
	}
}

// Meeting carries the board meeting metadata used by summons and
// meeting-call documents.
type Meeting struct {
	Number   string   `json:"number"`
	Subject  string   `json:"subject"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Location string   `json:"location"`
	Agenda   []string `json:"agenda"`
}

// Settings is the persisted settings bundle: institution identity, board
// seats, the AI API key and the incident code counters.
type Settings struct {
	Institution  Institution   `json:"institution"`
	BoardMembers []BoardMember `json:"boardMembers"`
	APIKey       string        `json:"apiKey"`
	// LastIncidentSeq maps year to the highest sequence handed out, so
	// incident codes stay strictly increasing and are never reused after
	// a deletion.
	LastIncidentSeq map[int]int `json:"lastIncidentSeq,omitempty"`
}
