package models

// Student represents an enrollment record as imported from e-Okul or
// entered manually. Number is the school number and must be unique among
// live students.
type Student struct {
	ID     string `json:"id"`
	Number string `json:"number" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Grade  string `json:"grade"`

	// Identity fields
	TCNo          string `json:"tcNo,omitempty"`
	FatherName    string `json:"fatherName,omitempty"`
	MotherName    string `json:"motherName,omitempty"`
	BirthPlaceDate string `json:"birthPlaceDate,omitempty"`
	Province      string `json:"province,omitempty"`
	District      string `json:"district,omitempty"`
	Neighborhood  string `json:"neighborhood,omitempty"`
	VolumeNo      string `json:"volumeNo,omitempty"`
	FamilyOrderNo string `json:"familyOrderNo,omitempty"`
	OrderNo       string `json:"orderNo,omitempty"`

	// School fields
	RegistrationType   string `json:"registrationType,omitempty"`
	PreviousSchoolInfo string `json:"previousSchoolInfo,omitempty"`
	RegistrationDate   string `json:"registrationDate,omitempty"`
	ParentName         string `json:"parentName,omitempty"`
	ExamStatus         string `json:"examStatus,omitempty"`
	BoardingStatus     string `json:"boardingStatus,omitempty"`
	ScholarshipStatus  string `json:"scholarshipStatus,omitempty"`
	Address            string `json:"address,omitempty"`
	ParentPhone        string `json:"parentPhone,omitempty"`
}

// DeletedStudentName is substituted when an incident references a student
// record that no longer exists. Dangling references are never an error.
const DeletedStudentName = "Silinmiş Öğrenci"

// DeletedStudentPlaceholder returns the stand-in record for a dangling
// studentId reference.
func DeletedStudentPlaceholder(id string) Student {
	return Student{ID: id, Name: DeletedStudentName, Grade: "-", Number: "-"}
}
