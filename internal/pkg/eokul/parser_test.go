package eokul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// card builds one e-Okul student block at the fixed row offsets.
func card(number, first, last, grade string) [][]string {
	rows := make([][]string, 19)
	rows[0] = []string{"Okul No", "", number}
	rows[1] = []string{"Adı", "", first}
	rows[2] = []string{"Soyadı", "", last}
	rows[3] = []string{"Baba Adı", "", "Mehmet"}
	rows[4] = []string{"Anne Adı", "", "Fatma"}
	rows[5] = []string{"Doğum Yeri ve Tarihi", "", "Ankara / 12.03.2010"}
	rows[7] = []string{"T.C. Kimlik No", "", "12345678901", "Cilt No", "", "42"}
	rows[8] = []string{"İli", "", "Ankara", "Aile Sıra No", "", "7"}
	rows[9] = []string{"İlçesi", "", "Çankaya", "Sıra No", "", "3"}
	rows[10] = []string{"Mahalle/Köy", "", "Bahçelievler"}
	rows[13] = []string{"Yeni Kayıt", "", "Evet", "Kabul Ed. Sınıf", "", grade}
	rows[14] = []string{"Get. Öğr. Belgesi", "", "Var", "Sınavlı", "", "Hayır"}
	rows[15] = []string{"Tarih / Numarası", "", "01.09.2024 / 15", "Yatılı", "", "Hayır"}
	rows[16] = []string{"Veli Adı", "", "Mehmet Yılmaz", "Bursluluk", "", "Yok"}
	rows[18] = []string{"Adresi", "", "Bahçelievler Mah. No:5 Çankaya/Ankara"}
	return rows
}

func TestParseSingleCard(t *testing.T) {
	rows := card("123", "Ayşe", "Yılmaz", "9. Sınıf A Şubesi")

	records := Parse(rows, nil)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "123", rec.Number)
	assert.Equal(t, "Ayşe Yılmaz", rec.Name)
	assert.Equal(t, "9-A", rec.Grade)
	assert.Equal(t, "Mehmet", rec.FatherName)
	assert.Equal(t, "Fatma", rec.MotherName)
	assert.Equal(t, "12345678901", rec.TCNo)
	assert.Equal(t, "42", rec.VolumeNo)
	assert.Equal(t, "Ankara", rec.Province)
	assert.Equal(t, "Çankaya", rec.District)
	assert.Equal(t, "Mehmet Yılmaz", rec.ParentName)
	assert.Equal(t, "Bahçelievler Mah. No:5 Çankaya/Ankara", rec.Address)
}

func TestParseGradeFallbacks(t *testing.T) {
	// No class info at all.
	rows := card("200", "Ali", "Demir", "")
	records := Parse(rows, nil)
	require.Len(t, records, 1)
	assert.Equal(t, DefaultGrade, records[0].Grade)

	// Unrecognized format passes through untouched.
	rows = card("201", "Ali", "Demir", "Hazırlık")
	records = Parse(rows, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "Hazırlık", records[0].Grade)
}

func TestParseMultipleCards(t *testing.T) {
	var rows [][]string
	rows = append(rows, card("1", "Ayşe", "Yılmaz", "9. Sınıf A Şubesi")...)
	rows = append(rows, []string{"", ""})
	rows = append(rows, card("2", "Ali", "Demir", "10. Sınıf B Şubesi")...)

	records := Parse(rows, nil)
	require.Len(t, records, 2)
	assert.Equal(t, "Ayşe Yılmaz", records[0].Name)
	assert.Equal(t, "10-B", records[1].Grade)
}

func TestParseSkipsDuplicates(t *testing.T) {
	var rows [][]string
	rows = append(rows, card("1", "Ayşe", "Yılmaz", "9. Sınıf A Şubesi")...)
	rows = append(rows, card("1", "Kopya", "Kayıt", "9. Sınıf A Şubesi")...)
	rows = append(rows, card("2", "Ali", "Demir", "9. Sınıf A Şubesi")...)

	// Number 2 already lives in the store.
	records := Parse(rows, func(number string) bool { return number == "2" })
	require.Len(t, records, 1)
	assert.Equal(t, "Ayşe Yılmaz", records[0].Name)
}

func TestParseSkipsIncompleteCards(t *testing.T) {
	rows := card("", "Ayşe", "Yılmaz", "9. Sınıf A Şubesi")
	assert.Empty(t, Parse(rows, nil))

	rows = card("5", "", "", "9. Sınıf A Şubesi")
	assert.Empty(t, Parse(rows, nil))
}

func TestValueByLabel(t *testing.T) {
	row := []string{"T.C. Kimlik No", "", "  12345678901 ", "Cilt No", "", "42"}
	assert.Equal(t, "12345678901", ValueByLabel(row, "t.c. kimlik no"))
	assert.Equal(t, "42", ValueByLabel(row, "Cilt No"))
	assert.Equal(t, "", ValueByLabel(row, "Bulunmayan"))
	assert.Equal(t, "", ValueByLabel(nil, "Okul No"))
}
