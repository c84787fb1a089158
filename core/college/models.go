package college

// Record is implemented by the four mutable entity kinds.
type Record interface {
	RecordID() string
}

type Student struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	RollNo     string  `json:"rollNo" yaml:"rollNo"`
	Program    string  `json:"program" yaml:"program"`
	Year       int     `json:"year" yaml:"year"`
	Semester   int     `json:"semester" yaml:"semester"`
	GPA        float64 `json:"gpa" yaml:"gpa"`
	Attendance int     `json:"attendance" yaml:"attendance"`
	Email      string  `json:"email" yaml:"email"`
	Phone      string  `json:"phone" yaml:"phone"`
	Address    string  `json:"address" yaml:"address"`
}

func (s Student) RecordID() string { return s.ID }

// MinAttendance is the attendance percentage required to sit exams.
const MinAttendance = 75

func (s Student) ExamEligible() bool {
	return s.Attendance >= MinAttendance
}

type Faculty struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Department  string   `json:"department" yaml:"department"`
	Designation string   `json:"designation" yaml:"designation"`
	Email       string   `json:"email" yaml:"email"`
	Phone       string   `json:"phone" yaml:"phone"`
	JoiningDate string   `json:"joiningDate" yaml:"joiningDate"`
	Courses     []string `json:"courses" yaml:"courses"` // course ids
}

func (f Faculty) RecordID() string { return f.ID }

// Teaches reports whether courseID is in the faculty's course list.
func (f Faculty) Teaches(courseID string) bool {
	for _, id := range f.Courses {
		if id == courseID {
			return true
		}
	}
	return false
}

type Staff struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Department  string `json:"department" yaml:"department"`
	Designation string `json:"designation" yaml:"designation"`
	Email       string `json:"email" yaml:"email"`
	Phone       string `json:"phone" yaml:"phone"`
	JoiningDate string `json:"joiningDate" yaml:"joiningDate"`
}

func (s Staff) RecordID() string { return s.ID }

// Placement statuses offered by the placement portal.
const (
	StatusOfferReceived = "Offer Received"
	StatusOfferAccepted = "Offer Accepted"
	StatusJoined        = "Joined"
	StatusDeclined      = "Declined"
)

var PlacementStatuses = []string{StatusOfferReceived, StatusOfferAccepted, StatusJoined, StatusDeclined}

// PlacementRecord holds a denormalized copy of the student's name and roll number.
type PlacementRecord struct {
	ID          string `json:"id" yaml:"id"`
	StudentID   string `json:"studentId" yaml:"studentId"`
	StudentName string `json:"studentName" yaml:"studentName"`
	RollNo      string `json:"rollNo" yaml:"rollNo"`
	Company     string `json:"company" yaml:"company"`
	Role        string `json:"role" yaml:"role"`
	Package     string `json:"package" yaml:"package"`
	Status      string `json:"status" yaml:"status"`
	OfferDate   string `json:"offerDate" yaml:"offerDate"`
}

func (p PlacementRecord) RecordID() string { return p.ID }

// Course is static reference data.
type Course struct {
	ID       string `json:"id" yaml:"id"`
	Code     string `json:"code" yaml:"code"`
	Name     string `json:"name" yaml:"name"`
	Credits  int    `json:"credits" yaml:"credits"`
	Semester int    `json:"semester" yaml:"semester"`
}

// Grade is static reference data.
type Grade struct {
	StudentID  string `json:"studentId" yaml:"studentId"`
	CourseID   string `json:"courseId" yaml:"courseId"`
	CourseName string `json:"courseName" yaml:"courseName"`
	CourseCode string `json:"courseCode" yaml:"courseCode"`
	Grade      string `json:"grade" yaml:"grade"`
	Marks      int    `json:"marks" yaml:"marks"`
}
