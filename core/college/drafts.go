package college

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Id prefixes of generated records.
const (
	StudentIDPrefix   = "S"
	FacultyIDPrefix   = "F"
	StaffIDPrefix     = "ST"
	PlacementIDPrefix = "P"
)

const DateLayout = "2006-01-02"

// NewID returns prefix followed by the unix milliseconds of now.
func NewID(prefix string, now time.Time) string {
	return prefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// FormatDate returns the UTC date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)
)

// parseInt reads the leading integer of s, ignoring whatever follows it.
func parseInt(s string) (int, bool) {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	i, err := strconv.Atoi(m)
	return i, err == nil
}

// parseFloat reads the leading decimal number of s, ignoring whatever follows it.
func parseFloat(s string) (float64, bool) {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	return f, err == nil
}

func intOr(s string, def int) int {
	if i, ok := parseInt(s); ok && i != 0 {
		return i
	}
	return def
}

func floatOr(s string, def float64) float64 {
	if f, ok := parseFloat(s); ok {
		return f
	}
	return def
}

func stringOr(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

// nonEmpty returns nil for blank input.
func nonEmpty(s string) *string {
	if s = strings.TrimSpace(s); s != "" {
		return &s
	}
	return nil
}

func parsedInt(s string) *int {
	if i, ok := parseInt(s); ok {
		return &i
	}
	return nil
}

func parsedFloat(s string) *float64 {
	if f, ok := parseFloat(s); ok {
		return &f
	}
	return nil
}

// StudentDraft holds the raw add/edit student form.
type StudentDraft struct {
	Name       string `form:"name"`
	RollNo     string `form:"rollNo"`
	Program    string `form:"program"`
	Year       string `form:"year"`
	Semester   string `form:"semester"`
	GPA        string `form:"gpa"`
	Attendance string `form:"attendance"`
	Email      string `form:"email"`
	Phone      string `form:"phone"`
	Address    string `form:"address"`
}

func (d StudentDraft) Finalize(now time.Time) Student {
	return Student{
		ID:         NewID(StudentIDPrefix, now),
		Name:       strings.TrimSpace(d.Name),
		RollNo:     strings.TrimSpace(d.RollNo),
		Program:    strings.TrimSpace(d.Program),
		Year:       intOr(d.Year, 1),
		Semester:   intOr(d.Semester, 1),
		GPA:        floatOr(d.GPA, 0),
		Attendance: intOr(d.Attendance, 0),
		Email:      strings.TrimSpace(d.Email),
		Phone:      strings.TrimSpace(d.Phone),
		Address:    strings.TrimSpace(d.Address),
	}
}

func (d StudentDraft) Patch() StudentPatch {
	return StudentPatch{
		Name:       nonEmpty(d.Name),
		RollNo:     nonEmpty(d.RollNo),
		Program:    nonEmpty(d.Program),
		Year:       parsedInt(d.Year),
		Semester:   parsedInt(d.Semester),
		GPA:        parsedFloat(d.GPA),
		Attendance: parsedInt(d.Attendance),
		Email:      nonEmpty(d.Email),
		Phone:      nonEmpty(d.Phone),
		Address:    nonEmpty(d.Address),
	}
}

// FacultyDraft holds the raw add/edit faculty form.
// Courses is a comma separated list of course ids and is only read on edit.
type FacultyDraft struct {
	Name        string `form:"name"`
	Department  string `form:"department"`
	Designation string `form:"designation"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	JoiningDate string `form:"joiningDate"`
	Courses     string `form:"courses"`
}

func (d FacultyDraft) Finalize(now time.Time) Faculty {
	return Faculty{
		ID:          NewID(FacultyIDPrefix, now),
		Name:        strings.TrimSpace(d.Name),
		Department:  strings.TrimSpace(d.Department),
		Designation: strings.TrimSpace(d.Designation),
		Email:       strings.TrimSpace(d.Email),
		Phone:       strings.TrimSpace(d.Phone),
		JoiningDate: stringOr(d.JoiningDate, FormatDate(now)),
		Courses:     []string{},
	}
}

func (d FacultyDraft) Patch() FacultyPatch {
	return FacultyPatch{
		Name:        nonEmpty(d.Name),
		Department:  nonEmpty(d.Department),
		Designation: nonEmpty(d.Designation),
		Email:       nonEmpty(d.Email),
		Phone:       nonEmpty(d.Phone),
		JoiningDate: nonEmpty(d.JoiningDate),
		Courses:     splitList(d.Courses),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// StaffDraft holds the raw add/edit staff form.
type StaffDraft struct {
	Name        string `form:"name"`
	Department  string `form:"department"`
	Designation string `form:"designation"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	JoiningDate string `form:"joiningDate"`
}

func (d StaffDraft) Finalize(now time.Time) Staff {
	return Staff{
		ID:          NewID(StaffIDPrefix, now),
		Name:        strings.TrimSpace(d.Name),
		Department:  strings.TrimSpace(d.Department),
		Designation: strings.TrimSpace(d.Designation),
		Email:       strings.TrimSpace(d.Email),
		Phone:       strings.TrimSpace(d.Phone),
		JoiningDate: stringOr(d.JoiningDate, FormatDate(now)),
	}
}

func (d StaffDraft) Patch() StaffPatch {
	return StaffPatch{
		Name:        nonEmpty(d.Name),
		Department:  nonEmpty(d.Department),
		Designation: nonEmpty(d.Designation),
		Email:       nonEmpty(d.Email),
		Phone:       nonEmpty(d.Phone),
		JoiningDate: nonEmpty(d.JoiningDate),
	}
}

// PlacementDraft holds the raw add-placement form.
type PlacementDraft struct {
	StudentID string `form:"studentId" validate:"required"`
	Company   string `form:"company"`
	Role      string `form:"role"`
	Package   string `form:"package"`
	Status    string `form:"status"`
	OfferDate string `form:"offerDate"`
}

// Finalize copies the name and roll number of the selected student.
func (d PlacementDraft) Finalize(student Student, now time.Time) PlacementRecord {
	return PlacementRecord{
		ID:          NewID(PlacementIDPrefix, now),
		StudentID:   student.ID,
		StudentName: student.Name,
		RollNo:      student.RollNo,
		Company:     strings.TrimSpace(d.Company),
		Role:        strings.TrimSpace(d.Role),
		Package:     strings.TrimSpace(d.Package),
		Status:      stringOr(d.Status, StatusOfferReceived),
		OfferDate:   stringOr(d.OfferDate, FormatDate(now)),
	}
}

// StatusPatch only changes the status of a placement.
func StatusPatch(status string) PlacementPatch {
	return PlacementPatch{Status: nonEmpty(status)}
}
