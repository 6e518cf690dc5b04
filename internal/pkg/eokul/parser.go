// Package eokul parses student registration exports taken from the
// e-Okul management system. The export lays each student out as a
// vertical card of label/value rows starting at a "Okul No" cell, with
// fixed row offsets for the remaining fields.
package eokul

import (
	"regexp"
	"strings"
)

// DefaultGrade is used when the card carries no parseable class info.
const DefaultGrade = "Belirtilmedi"

// Record is one student card lifted from the export grid.
type Record struct {
	Number             string
	Name               string
	Grade              string
	TCNo               string
	FatherName         string
	MotherName         string
	BirthPlaceDate     string
	Province           string
	District           string
	Neighborhood       string
	VolumeNo           string
	FamilyOrderNo      string
	OrderNo            string
	RegistrationType   string
	PreviousSchoolInfo string
	RegistrationDate   string
	ParentName         string
	ExamStatus         string
	BoardingStatus     string
	ScholarshipStatus  string
	Address            string
}

// gradeRe turns "9. Sınıf A Şubesi" style values into "9-A".
var gradeRe = regexp.MustCompile(`(?i)(\d+)\.\s*Sınıf.*?([A-Z])\s*Şubesi`)

// Parse walks the sheet grid and extracts every student card. Cards
// whose school number is already taken, either by an earlier card in
// the same file or per the exists callback, are skipped. exists may be
// nil.
func Parse(rows [][]string, exists func(number string) bool) []Record {
	var records []Record
	seen := make(map[string]bool)

	for i := 0; i < len(rows); i++ {
		if !hasAnchor(rows[i]) {
			continue
		}

		rec := Record{
			Number:         ValueByLabel(at(rows, i), "Okul No"),
			FatherName:     ValueByLabel(at(rows, i+3), "Baba Adı"),
			MotherName:     ValueByLabel(at(rows, i+4), "Anne Adı"),
			BirthPlaceDate: ValueByLabel(at(rows, i+5), "Doğum Yeri"),
		}
		firstName := ValueByLabel(at(rows, i+1), "Adı")
		lastName := ValueByLabel(at(rows, i+2), "Soyadı")
		rec.Name = strings.TrimSpace(firstName + " " + lastName)

		rowTC := at(rows, i+7)
		rec.TCNo = ValueByLabel(rowTC, "T.C. Kimlik No")
		rec.VolumeNo = ValueByLabel(rowTC, "Cilt No")

		rowProv := at(rows, i+8)
		rec.Province = ValueByLabel(rowProv, "İli")
		rec.FamilyOrderNo = ValueByLabel(rowProv, "Aile Sıra No")

		rowDist := at(rows, i+9)
		rec.District = ValueByLabel(rowDist, "İlçesi")
		rec.OrderNo = ValueByLabel(rowDist, "Sıra No")

		rec.Neighborhood = ValueByLabel(at(rows, i+10), "Mahalle")

		rowReg := at(rows, i+13)
		rec.RegistrationType = ValueByLabel(rowReg, "Yeni Kayıt")
		rec.Grade = normalizeGrade(ValueByLabel(rowReg, "Kabul Ed. Sınıf"))

		rowDoc := at(rows, i+14)
		rec.PreviousSchoolInfo = ValueByLabel(rowDoc, "Get. Öğr. Belgesi")
		rec.ExamStatus = ValueByLabel(rowDoc, "Sınavlı")

		rowDate := at(rows, i+15)
		rec.RegistrationDate = ValueByLabel(rowDate, "Tarih / Numarası")
		rec.BoardingStatus = ValueByLabel(rowDate, "Yatılı")

		rowParent := at(rows, i+16)
		rec.ParentName = ValueByLabel(rowParent, "Veli Adı")
		rec.ScholarshipStatus = ValueByLabel(rowParent, "Bursluluk")

		rec.Address = ValueByLabel(at(rows, i+18), "Adresi")

		if rec.Number != "" && rec.Name != "" {
			taken := seen[rec.Number] || (exists != nil && exists(rec.Number))
			if !taken {
				seen[rec.Number] = true
				records = append(records, rec)
			}
		}
		i += 18
	}
	return records
}

// ValueByLabel finds the cell containing labelPart (case-insensitive)
// and returns the next non-empty cell of the row.
func ValueByLabel(row []string, labelPart string) string {
	want := strings.ToLower(labelPart)
	for i, cell := range row {
		if !strings.Contains(strings.ToLower(cell), want) {
			continue
		}
		for _, v := range row[i+1:] {
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		}
		return ""
	}
	return ""
}

func hasAnchor(row []string) bool {
	for _, cell := range row {
		if strings.HasPrefix(strings.TrimSpace(cell), "Okul No") {
			return true
		}
	}
	return false
}

func normalizeGrade(raw string) string {
	if raw == "" {
		return DefaultGrade
	}
	if m := gradeRe.FindStringSubmatch(raw); m != nil {
		return m[1] + "-" + m[2]
	}
	return raw
}

func at(rows [][]string, i int) []string {
	if i < 0 || i >= len(rows) {
		return nil
	}
	return rows[i]
}
