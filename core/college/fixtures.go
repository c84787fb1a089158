package college

// Demo dataset the store starts with. Every call returns fresh slices.

func SeedStudents() []Student {
	return []Student{
		{
			ID: "S101", Name: "John Doe", RollNo: "112001", Program: "B.Tech CSE", Year: 3, Semester: 5,
			GPA: 3.8, Attendance: 92, Email: "john.doe@college.edu", Phone: "+91 9876543210",
			Address: "123 College Street, City",
		},
		{
			ID: "S102", Name: "Amit Roy", RollNo: "112002", Program: "B.Tech IT", Year: 3, Semester: 5,
			GPA: 3.6, Attendance: 88, Email: "amit.roy@college.edu", Phone: "+91 9876543211",
			Address: "456 Campus Road, City",
		},
		{
			ID: "S103", Name: "Priya Sharma", RollNo: "112003", Program: "B.Tech CSE", Year: 2, Semester: 3,
			GPA: 3.9, Attendance: 95, Email: "priya.sharma@college.edu", Phone: "+91 9876543212",
			Address: "789 University Ave, City",
		},
		{
			ID: "S104", Name: "Rahul Verma", RollNo: "112004", Program: "B.Tech ECE", Year: 4, Semester: 7,
			GPA: 3.7, Attendance: 90, Email: "rahul.verma@college.edu", Phone: "+91 9876543213",
			Address: "321 Student Lane, City",
		},
	}
}

func SeedCourses() []Course {
	return []Course{
		{ID: "CS301", Code: "CS301", Name: "Database Management Systems", Credits: 4, Semester: 5},
		{ID: "CS302", Code: "CS302", Name: "Operating Systems", Credits: 4, Semester: 5},
		{ID: "CS303", Code: "CS303", Name: "Artificial Intelligence", Credits: 3, Semester: 5},
		{ID: "CS304", Code: "CS304", Name: "Computer Networks", Credits: 4, Semester: 5},
		{ID: "CS305", Code: "CS305", Name: "Software Engineering", Credits: 3, Semester: 5},
	}
}

func SeedGrades() []Grade {
	return []Grade{
		{StudentID: "S101", CourseID: "CS301", CourseName: "DBMS", CourseCode: "CS301", Grade: "A", Marks: 92},
		{StudentID: "S101", CourseID: "CS302", CourseName: "Operating Systems", CourseCode: "CS302", Grade: "B+", Marks: 87},
		{StudentID: "S101", CourseID: "CS303", CourseName: "Artificial Intelligence", CourseCode: "CS303", Grade: "A", Marks: 90},
		{StudentID: "S101", CourseID: "CS304", CourseName: "Computer Networks", CourseCode: "CS304", Grade: "A-", Marks: 89},
		{StudentID: "S102", CourseID: "CS301", CourseName: "DBMS", CourseCode: "CS301", Grade: "B+", Marks: 88},
		{StudentID: "S102", CourseID: "CS302", CourseName: "Operating Systems", CourseCode: "CS302", Grade: "B", Marks: 85},
		{StudentID: "S103", CourseID: "CS301", CourseName: "DBMS", CourseCode: "CS301", Grade: "A", Marks: 94},
		{StudentID: "S104", CourseID: "CS301", CourseName: "DBMS", CourseCode: "CS301", Grade: "A-", Marks: 89},
	}
}

func SeedFaculty() []Faculty {
	return []Faculty{
		{
			ID: "F101", Name: "Dr. Anil Kumar", Department: "Computer Science & Engineering",
			Designation: "Professor", Email: "anil.kumar@college.edu", Phone: "+91 9876543220",
			JoiningDate: "2015-07-15", Courses: []string{"CS301", "CS302"},
		},
		{
			ID: "F102", Name: "Dr. Sunita Patel", Department: "Computer Science & Engineering",
			Designation: "Associate Professor", Email: "sunita.patel@college.edu", Phone: "+91 9876543221",
			JoiningDate: "2017-08-20", Courses: []string{"CS303", "CS305"},
		},
	}
}

func SeedStaff() []Staff {
	return []Staff{
		{
			ID: "ST101", Name: "Ramesh Das", Department: "Accounts", Designation: "Clerk",
			Email: "ramesh.das@college.edu", Phone: "+91 9876543230", JoiningDate: "2019-03-10",
		},
		{
			ID: "ST102", Name: "Kavita Singh", Department: "Library", Designation: "Librarian",
			Email: "kavita.singh@college.edu", Phone: "+91 9876543231", JoiningDate: "2018-06-15",
		},
	}
}

func SeedPlacements() []PlacementRecord {
	return []PlacementRecord{
		{
			ID: "P101", StudentID: "S101", StudentName: "John Doe", RollNo: "112001", Company: "TCS",
			Role: "Software Engineer", Package: "₹7 LPA", Status: StatusOfferReceived, OfferDate: "2024-01-15",
		},
		{
			ID: "P102", StudentID: "S102", StudentName: "Amit Roy", RollNo: "112002", Company: "Infosys",
			Role: "Associate Software Engineer", Package: "₹6.5 LPA", Status: StatusOfferReceived, OfferDate: "2024-01-20",
		},
		{
			ID: "P103", StudentID: "S104", StudentName: "Rahul Verma", RollNo: "112004", Company: "Wipro",
			Role: "Project Engineer", Package: "₹6 LPA", Status: StatusOfferReceived, OfferDate: "2024-02-10",
		},
	}
}

// Dataset is the whole mutable dataset, as dumped by the admin tool.
type Dataset struct {
	Students   []Student         `json:"students" yaml:"students"`
	Faculty    []Faculty         `json:"faculty" yaml:"faculty"`
	Staff      []Staff           `json:"staff" yaml:"staff"`
	Placements []PlacementRecord `json:"placements" yaml:"placements"`
	Courses    []Course          `json:"courses" yaml:"courses"`
	Grades     []Grade           `json:"grades" yaml:"grades"`
}

// Snapshot returns the current collections of the store.
func (svc *Service) Snapshot() Dataset {
	return Dataset{
		Students:   svc.Students(),
		Faculty:    svc.Faculty(),
		Staff:      svc.Staff(),
		Placements: svc.Placements(),
		Courses:    svc.Courses(),
		Grades:     svc.Grades(),
	}
}
