package document

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/oguzk/disiplintakip/internal/app/models"
)

// Decision carries the decision form fields accompanying a render.
// Dates are ISO (yyyy-mm-dd) and converted for display.
type Decision struct {
	No      string `json:"no"`
	Date    string `json:"date"`
	Penalty string `json:"penalty"`
	Reason  string `json:"reason"`
	Score   string `json:"score"`
}

// Request is one render job. Student, Incident and Involvement may be
// nil; Render validates presence against the form type unless Blank is
// set.
type Request struct {
	Type        Type
	Blank       bool
	Student     *models.Student
	Incident    *models.Incident
	Involvement *models.InvolvedStudent
	Decision    Decision
	Meeting     models.Meeting
	Institution models.Institution
	Board       []models.BoardMember
	Now         time.Time
}

// Result is the rendered document.
type Result struct {
	Type  Type   `json:"type"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Dotted placeholder lines used by blank renders, kept byte-for-byte
// stable so printed forms line up.
const (
	blankName    = ".............................................."
	blankShort   = ".........."
	blankDOB     = "..../..../......."
	blankTC      = "....................."
	blankAddress = "..........................................................."
	blankDate    = "..../..../20...."
	blankTime    = "..... : ....."
	blankMid     = ".............................."
	blankLong    = "..................................................................................................."
	blankScore   = "...."
	blankNoDate  = ".../.../...."
)

// studentFields is the student block of a render context.
type studentFields struct {
	Name      string
	FirstName string
	LastName  string
	Grade     string
	Number    string
	Parent    string
	// ParentFirst is the first word of the parent name, used where the
	// forms ask for the father's name only.
	ParentFirst string
	DOB         string
	DOBPlace    string
	TC          string
	School      string
	Address     string
}

type incidentFields struct {
	Date     string
	Time     string
	Location string
	Title    string
	Desc     string
}

type decisionFields struct {
	No      string
	Date    string
	Penalty string
	Reason  string
	// ReasonShort is the reason clipped for single-line table cells.
	ReasonShort string
	// ReasonArticle is the leading "Madde .../...-x)" segment of the
	// reason.
	ReasonArticle string
	Score         string
	Remaining     string
}

type meetingFields struct {
	Date     string
	Time     string
	Location string
}

type institutionFields struct {
	Name          string
	Province      string
	ProvinceUpper string
	District      string
	DistrictUpper string
	ManagerName   string
	EBYSCode      string
}

type boardRow struct {
	Role     string
	MainName string
}

// renderData is the flattened value set the templates interpolate.
type renderData struct {
	Header template.HTML

	S    studentFields
	I    incidentFields
	D    decisionFields
	M    meetingFields
	Inst institutionFields

	Board         []boardRow
	BoardColWidth int
	ChairName     string
	Today         string

	// IsSuspect switches the summons wording between defense and
	// witness testimony.
	IsSuspect bool
	// RegulationArticle cites the penalty removal clause matching the
	// school type.
	RegulationArticle string
}

func blankStudent(inst models.Institution) studentFields {
	f := studentFields{
		Name: blankName, Grade: blankShort, Number: blankShort,
		Parent: blankName, DOB: blankDOB, TC: blankTC,
		School: inst.Name, Address: blankAddress,
	}
	f.split()
	return f
}

func (f *studentFields) split() {
	f.FirstName, f.LastName = splitFirst(f.Name)
	f.ParentFirst, _ = splitFirst(f.Parent)
	f.DOBPlace = dobPlace(f.DOB)
}

// splitFirst separates the first word from the rest.
func splitFirst(s string) (first, rest string) {
	parts := strings.SplitN(s, " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return s, ""
}

func dobPlace(dob string) string {
	if p := strings.SplitN(dob, "/", 2)[0]; p != "" {
		return p
	}
	return "..."
}

func boundStudent(s *models.Student, inst models.Institution) studentFields {
	f := studentFields{
		Name: s.Name, Grade: s.Grade, Number: s.Number,
		Parent: s.ParentName, DOB: s.BirthPlaceDate, TC: s.TCNo,
		School: inst.Name, Address: s.Address,
	}
	if f.Parent == "" {
		f.Parent = "Veli"
	}
	f.split()
	return f
}

func blankIncident() incidentFields {
	return incidentFields{
		Date: blankDate, Time: blankTime, Location: blankMid,
		Title: blankMid, Desc: blankLong,
	}
}

func boundIncident(inc *models.Incident) incidentFields {
	return incidentFields{
		Date:     displayDate(inc.Date),
		Time:     inc.Time,
		Location: inc.Location,
		Title:    inc.Title,
		Desc:     inc.Description,
	}
}

func blankDecision() decisionFields {
	f := decisionFields{
		No: blankShort, Date: blankDate, Penalty: blankMid,
		Reason: blankLong, Score: blankScore, Remaining: blankScore,
	}
	f.derive()
	return f
}

func boundDecision(d Decision) decisionFields {
	f := decisionFields{
		No:      d.No,
		Date:    displayDate(d.Date),
		Penalty: d.Penalty,
		Reason:  d.Reason,
		Score:   d.Score,
	}
	f.Remaining = remainingScore(d.Score)
	f.derive()
	return f
}

func (f *decisionFields) derive() {
	f.ReasonArticle = strings.SplitN(f.Reason, ")", 2)[0] + ")"
	f.ReasonShort = clip(f.Reason, 50) + "..."
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// remainingScore is the behaviour score left after the deduction. A
// non-numeric deduction yields the literal "NaN" so the anomaly is
// visible on the printed form instead of silently becoming 100.
func remainingScore(score string) string {
	n, err := strconv.Atoi(strings.TrimSpace(score))
	if err != nil {
		return "NaN"
	}
	return strconv.Itoa(100 - n)
}

// displayDate converts ISO dates to dd.mm.yyyy; anything unparseable
// passes through untouched and an empty date becomes a dotted line.
func displayDate(iso string) string {
	if iso == "" {
		return blankNoDate
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02.01.2006")
}

// Letterheads. The province letterhead is used on EK forms regardless
// of district; the variant letterhead switches to the Kaymakamlık line
// when a district is configured.
func provinceHeader(inst models.Institution) template.HTML {
	return template.HTML(fmt.Sprintf(`
    <div style="text-align:center; font-weight:bold; margin-bottom:1.5rem; line-height:1.4;">
        T.C.<br>
        %s VALİLİĞİ<br>
        %s İLÇE MİLLİ EĞİTİM MÜDÜRLÜĞÜ<br>
        %s
    </div>`,
		template.HTMLEscapeString(strings.ToUpper(inst.Province)),
		template.HTMLEscapeString(inst.District),
		template.HTMLEscapeString(inst.Name)))
}

func variantHeader(inst models.Institution) template.HTML {
	authority := strings.ToUpper(inst.Province) + " VALİLİĞİ"
	if inst.District != "" {
		authority = strings.ToUpper(inst.District) + " KAYMAKAMLIĞI"
	}
	return template.HTML(fmt.Sprintf(`
    <div style="text-align:center; font-weight:bold; margin-bottom:1.5rem; line-height:1.4;">
        T.C.<br>
        %s<br>
        İLÇE MİLLİ EĞİTİM MÜDÜRLÜĞÜ<br>
        %s
    </div>`,
		template.HTMLEscapeString(authority),
		template.HTMLEscapeString(inst.Name)))
}

func schoolHeader(inst models.Institution) template.HTML {
	return template.HTML(fmt.Sprintf(`
    <div style="text-align:center; font-weight:bold; margin-bottom:1.5rem; line-height:1.4;">
        T.C.<br>
        %s VALİLİĞİ<br>
        %s MÜDÜRLÜĞÜ
    </div>`,
		template.HTMLEscapeString(strings.ToUpper(inst.Province)),
		template.HTMLEscapeString(inst.Name)))
}

// headerFor picks the letterhead for a form type. EK forms always show
// the province chain, inventory style forms carry none, and the
// penalty removal observation request uses the short school header.
func headerFor(t Type, inst models.Institution) template.HTML {
	switch t {
	case TypeEK10Decision, TypeEK1Meeting, TypeRemovalMeeting:
		return provinceHeader(inst)
	case TypeEK1StudentInfo, TypeDiziPusulasi:
		return ""
	case TypeRemovalObservation:
		return schoolHeader(inst)
	default:
		return variantHeader(inst)
	}
}

func buildData(req Request) renderData {
	data := renderData{
		Header: headerFor(req.Type, req.Institution),
		Inst: institutionFields{
			Name:          req.Institution.Name,
			Province:      req.Institution.Province,
			ProvinceUpper: strings.ToUpper(req.Institution.Province),
			District:      req.Institution.District,
			DistrictUpper: strings.ToUpper(req.Institution.District),
			ManagerName:   req.Institution.ManagerName,
			EBYSCode:      req.Institution.EBYSCode,
		},
		M: meetingFields{
			Date:     displayDate(req.Meeting.Date),
			Time:     req.Meeting.Time,
			Location: req.Meeting.Location,
		},
		ChairName: models.BoardChairName(req.Board),
		Today:     req.Now.Format("02.01.2006"),
	}

	for _, m := range req.Board {
		data.Board = append(data.Board, boardRow{Role: m.Role, MainName: m.MainName})
	}
	if n := len(data.Board); n > 0 {
		data.BoardColWidth = 100 / n
	} else {
		data.BoardColWidth = 100
	}

	if req.Blank {
		data.S = blankStudent(req.Institution)
		data.I = blankIncident()
		data.D = blankDecision()
	} else {
		if req.Student != nil {
			data.S = boundStudent(req.Student, req.Institution)
		} else {
			data.S = blankStudent(req.Institution)
		}
		if req.Incident != nil {
			data.I = boundIncident(req.Incident)
		} else {
			data.I = blankIncident()
		}
		data.D = boundDecision(req.Decision)
	}

	if req.Involvement != nil {
		data.IsSuspect = req.Involvement.Role == models.RoleSuspect
		// The removal call quotes the decision originally handed down.
		if req.Type == TypeRemovalMeeting && !req.Blank {
			data.D.Penalty = req.Involvement.Decision
		}
	}

	if req.Institution.IsMiddleSchool() {
		data.RegulationArticle = "Milli Eğitim Bakanlığı Okul Öncesi Eğitim ve İlköğretim Kurumları Yönetmeliğinin 58. Maddesi"
	} else {
		data.RegulationArticle = "Milli Eğitim Bakanlığı Ortaöğretim Kurumları Yönetmeliğinin 171. Maddesi"
	}
	return data
}
