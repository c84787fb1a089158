package college

// Derived joins. They are recomputed on every call and never cached.

// FacultyCourses returns the courses taught by f, in course-list order.
// Unknown and repeated course ids in f are ignored.
func FacultyCourses(f Faculty, courses []Course) []Course {
	out := make([]Course, 0, len(f.Courses))
	for _, c := range courses {
		if f.Teaches(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// SemesterCourses returns the courses offered in semester.
func SemesterCourses(semester int, courses []Course) []Course {
	var out []Course
	for _, c := range courses {
		if c.Semester == semester {
			out = append(out, c)
		}
	}
	return out
}

// FacultyStudents returns the students whose semester matches the semester of any course taught by f.
func FacultyStudents(f Faculty, courses []Course, students []Student) []Student {
	semesters := make(map[int]bool)
	for _, c := range FacultyCourses(f, courses) {
		semesters[c.Semester] = true
	}
	var out []Student
	for _, s := range students {
		if semesters[s.Semester] {
			out = append(out, s)
		}
	}
	return out
}

func StudentGrades(studentID string, grades []Grade) []Grade {
	var out []Grade
	for _, g := range grades {
		if g.StudentID == studentID {
			out = append(out, g)
		}
	}
	return out
}

// StudentPlacement returns the first placement of the student.
func StudentPlacement(studentID string, placements []PlacementRecord) (PlacementRecord, bool) {
	for _, p := range placements {
		if p.StudentID == studentID {
			return p, true
		}
	}
	return PlacementRecord{}, false
}

// FacultyGrade returns the first grade of the student in a course taught by f.
func FacultyGrade(f Faculty, studentID string, grades []Grade) (Grade, bool) {
	for _, g := range grades {
		if g.StudentID == studentID && f.Teaches(g.CourseID) {
			return g, true
		}
	}
	return Grade{}, false
}

// CourseGrade returns the grade of the student in courseID.
func CourseGrade(studentID, courseID string, grades []Grade) (Grade, bool) {
	for _, g := range grades {
		if g.StudentID == studentID && g.CourseID == courseID {
			return g, true
		}
	}
	return Grade{}, false
}
