package college

// Patch replaces some fields of a record. nil fields are left untouched.
type Patch[T Record] interface {
	Apply(T) T
}

type StudentPatch struct {
	Name       *string
	RollNo     *string
	Program    *string
	Year       *int
	Semester   *int
	GPA        *float64
	Attendance *int
	Email      *string
	Phone      *string
	Address    *string
}

var _ Patch[Student] = StudentPatch{} // interface compliance check

func (p StudentPatch) Apply(s Student) Student {
	setString(&s.Name, p.Name)
	setString(&s.RollNo, p.RollNo)
	setString(&s.Program, p.Program)
	setInt(&s.Year, p.Year)
	setInt(&s.Semester, p.Semester)
	if p.GPA != nil {
		s.GPA = *p.GPA
	}
	setInt(&s.Attendance, p.Attendance)
	setString(&s.Email, p.Email)
	setString(&s.Phone, p.Phone)
	setString(&s.Address, p.Address)
	return s
}

type FacultyPatch struct {
	Name        *string
	Department  *string
	Designation *string
	Email       *string
	Phone       *string
	JoiningDate *string
	Courses     []string // nil: untouched
}

var _ Patch[Faculty] = FacultyPatch{}

func (p FacultyPatch) Apply(f Faculty) Faculty {
	setString(&f.Name, p.Name)
	setString(&f.Department, p.Department)
	setString(&f.Designation, p.Designation)
	setString(&f.Email, p.Email)
	setString(&f.Phone, p.Phone)
	setString(&f.JoiningDate, p.JoiningDate)
	if p.Courses != nil {
		f.Courses = append([]string(nil), p.Courses...)
	}
	return f
}

type StaffPatch struct {
	Name        *string
	Department  *string
	Designation *string
	Email       *string
	Phone       *string
	JoiningDate *string
}

var _ Patch[Staff] = StaffPatch{}

func (p StaffPatch) Apply(s Staff) Staff {
	setString(&s.Name, p.Name)
	setString(&s.Department, p.Department)
	setString(&s.Designation, p.Designation)
	setString(&s.Email, p.Email)
	setString(&s.Phone, p.Phone)
	setString(&s.JoiningDate, p.JoiningDate)
	return s
}

type PlacementPatch struct {
	StudentID   *string
	StudentName *string
	RollNo      *string
	Company     *string
	Role        *string
	Package     *string
	Status      *string
	OfferDate   *string
}

var _ Patch[PlacementRecord] = PlacementPatch{}

func (p PlacementPatch) Apply(r PlacementRecord) PlacementRecord {
	setString(&r.StudentID, p.StudentID)
	setString(&r.StudentName, p.StudentName)
	setString(&r.RollNo, p.RollNo)
	setString(&r.Company, p.Company)
	setString(&r.Role, p.Role)
	setString(&r.Package, p.Package)
	setString(&r.Status, p.Status)
	setString(&r.OfferDate, p.OfferDate)
	return r
}

// StringPtr is a helper for building patches.
func StringPtr(s string) *string { return &s }

// IntPtr is a helper for building patches.
func IntPtr(i int) *int { return &i }

// FloatPtr is a helper for building patches.
func FloatPtr(f float64) *float64 { return &f }

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
