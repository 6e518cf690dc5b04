// Package document renders the printable discipline paperwork. Every
// document is an HTML body meant for an A4 preview; in blank mode the
// dotted placeholder lines are emitted verbatim so the form can be
// filled by hand.
package document

// Type identifies one printable form.
type Type string

const (
	TypeStudentSummons     Type = "student_summons"
	TypeEK1Meeting         Type = "ek1_meeting"
	TypeEK1StudentInfo     Type = "ek1_student_info"
	TypeEK10Decision       Type = "ek10_decision"
	TypeDiziPusulasi       Type = "dizi_pusulasi"
	TypeSanctionStudent    Type = "sanction_student"
	TypeSanctionParent     Type = "sanction_parent"
	TypeOpinionCounselor   Type = "opinion_counselor"
	TypeWitnessStudent     Type = "witness_student"
	TypeWitnessTeacher     Type = "witness_teacher"
	TypeStatementRequest   Type = "statement_request"
	TypeDefenseRequest     Type = "defense_request"
	TypeVerbalWarning      Type = "verbal_warning"
	TypeContract           Type = "contract"
	TypeParentMeeting      Type = "parent_meeting"
	TypeRemovalMeeting     Type = "removal_meeting"
	TypeRemovalObservation Type = "removal_observation"
)

// Info describes one form for listing endpoints.
type Info struct {
	Type  Type   `json:"type"`
	Title string `json:"title"`
}

// Catalog lists every renderable form in menu order.
var Catalog = []Info{
	{TypeStudentSummons, "Öğrenci Çağrı Pusulası"},
	{TypeEK1Meeting, "Kurul Toplantı Çağrısı (EK-1)"},
	{TypeEK1StudentInfo, "Öğrenci Bilgileri (EK-1)"},
	{TypeEK10Decision, "Kurul Kararı (EK-10)"},
	{TypeDiziPusulasi, "Dizi Pusulası"},
	{TypeSanctionStudent, "Yaptırım Tebliği (Öğrenci)"},
	{TypeSanctionParent, "Yaptırım Tebliği (Veli)"},
	{TypeOpinionCounselor, "Rehberlik Görüşü Talebi"},
	{TypeWitnessStudent, "Tanık Öğrenci İfade İstemi"},
	{TypeWitnessTeacher, "Tanık Öğretmen İfade İstemi"},
	{TypeStatementRequest, "İfade Talebi"},
	{TypeDefenseRequest, "Savunma Talebi"},
	{TypeVerbalWarning, "Sözlü Uyarı Tutanağı"},
	{TypeContract, "Öğrenci Sözleşmesi"},
	{TypeParentMeeting, "Veli Görüşme Tutanağı"},
	{TypeRemovalMeeting, "Ceza Kaldırma Toplantı Çağrısı"},
	{TypeRemovalObservation, "Davranış Gözlem Raporu Talebi"},
}

// Valid reports whether t names a known form.
func Valid(t Type) bool {
	for _, info := range Catalog {
		if info.Type == t {
			return true
		}
	}
	return false
}

// NeedsStudent reports whether a bound render requires a student.
func NeedsStudent(t Type) bool {
	return t != TypeEK1Meeting
}

// NeedsIncident reports whether a bound render requires an incident.
func NeedsIncident(t Type) bool {
	return t != TypeEK1Meeting && t != TypeRemovalObservation
}
