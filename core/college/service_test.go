package college_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/ccdbms/core/college"
	inmemdb "github.com/trezcool/ccdbms/storage/database/inmem"
)

func newService() *college.Service {
	return college.NewService(inmemdb.Open())
}

func TestService_Students(t *testing.T) {
	svc := newService()
	before := svc.Students()

	svc.AddStudent(college.Student{ID: "S105", Name: "Neha Gupta"})
	assert.Len(t, svc.Students(), len(before)+1)
	s, ok := svc.Student("S105")
	assert.True(t, ok)
	assert.Equal(t, "Neha Gupta", s.Name)

	assert.True(t, svc.UpdateStudent("S101", college.StudentPatch{GPA: college.FloatPtr(3.95)}))
	s, _ = svc.Student("S101")
	want := before[0]
	want.GPA = 3.95
	assert.Equal(t, want, s)

	assert.Equal(t, 1, svc.DeleteStudent("S102"))
	_, ok = svc.Student("S102")
	assert.False(t, ok)
	assert.Len(t, svc.Students(), len(before))

	// snapshots taken earlier are untouched
	assert.Len(t, before, 4)
	assert.Equal(t, 3.8, before[0].GPA)
	assert.Equal(t, "S102", before[1].ID)
}

func TestService_UpdateMiss(t *testing.T) {
	svc := newService()
	before := svc.Faculty()

	assert.False(t, svc.UpdateFaculty("F999", college.FacultyPatch{Name: college.StringPtr("X")}))
	assert.Equal(t, before, svc.Faculty())
	assert.Equal(t, 0, svc.DeleteFaculty("F999"))
	assert.Equal(t, before, svc.Faculty())
}

func TestService_DeleteRemovesAllMatches(t *testing.T) {
	svc := newService()
	svc.AddStaff(college.Staff{ID: "ST101", Name: "Duplicate"})

	assert.Equal(t, 2, svc.DeleteStaff("ST101"))
	assert.Len(t, svc.Staff(), 1)
	_, ok := svc.StaffMember("ST101")
	assert.False(t, ok)
}

func TestService_UpdateFirstMatchOnly(t *testing.T) {
	svc := newService()
	svc.AddPlacement(college.PlacementRecord{ID: "P101", Company: "Duplicate"})

	svc.UpdatePlacement("P101", college.StatusPatch(college.StatusJoined))
	all := svc.Placements()
	assert.Equal(t, college.StatusJoined, all[0].Status)
	assert.Equal(t, "", all[len(all)-1].Status)
}

func TestService_DeleteStudentDoesNotCascade(t *testing.T) {
	svc := newService()
	svc.DeleteStudent("S101")

	p, ok := college.StudentPlacement("S101", svc.Placements())
	assert.True(t, ok)
	assert.Equal(t, "John Doe", p.StudentName)
	assert.Len(t, college.StudentGrades("S101", svc.Grades()), 4)
}

func TestService_Snapshot(t *testing.T) {
	svc := newService()
	ds := svc.Snapshot()
	assert.Len(t, ds.Students, 4)
	assert.Len(t, ds.Faculty, 2)
	assert.Len(t, ds.Staff, 2)
	assert.Len(t, ds.Placements, 3)
	assert.Len(t, ds.Courses, 5)
	assert.Len(t, ds.Grades, 8)
	assert.Equal(t, "75.0", svc.PlacementStats().Rate)
}
