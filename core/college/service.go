package college

type (
	// Collection is one ordered, in-memory entity collection.
	// Mutations replace the whole collection; slices returned by All are never modified afterwards.
	Collection[T Record] interface {
		All() []T
		// Get returns the first record with id.
		Get(id string) (T, bool)
		// Add appends rec without checking for duplicate ids.
		Add(rec T)
		// Update applies fn to the first record with id. It is a no-op when nothing matches.
		Update(id string, fn func(T) T) bool
		// Delete removes every record with id and returns how many were removed.
		Delete(id string) int
	}

	Repository interface {
		Students() Collection[Student]
		Faculty() Collection[Faculty]
		Staff() Collection[Staff]
		Placements() Collection[PlacementRecord]
	}

	// Service is the record store shared by every view.
	// Courses and grades are static reference data and never mutated.
	Service struct {
		repo    Repository
		courses []Course
		grades  []Grade
	}
)

func NewService(repo Repository) *Service {
	return &Service{
		repo:    repo,
		courses: SeedCourses(),
		grades:  SeedGrades(),
	}
}

func (svc *Service) Courses() []Course { return svc.courses }

func (svc *Service) Grades() []Grade { return svc.grades }

// Students

func (svc *Service) Students() []Student { return svc.repo.Students().All() }

func (svc *Service) Student(id string) (Student, bool) { return svc.repo.Students().Get(id) }

func (svc *Service) AddStudent(s Student) { svc.repo.Students().Add(s) }

func (svc *Service) UpdateStudent(id string, p StudentPatch) bool {
	return svc.repo.Students().Update(id, p.Apply)
}

// DeleteStudent does not cascade: placements and grades keep referencing the id.
func (svc *Service) DeleteStudent(id string) int { return svc.repo.Students().Delete(id) }

// Faculty

func (svc *Service) Faculty() []Faculty { return svc.repo.Faculty().All() }

func (svc *Service) FacultyMember(id string) (Faculty, bool) { return svc.repo.Faculty().Get(id) }

func (svc *Service) AddFaculty(f Faculty) { svc.repo.Faculty().Add(f) }

func (svc *Service) UpdateFaculty(id string, p FacultyPatch) bool {
	return svc.repo.Faculty().Update(id, p.Apply)
}

func (svc *Service) DeleteFaculty(id string) int { return svc.repo.Faculty().Delete(id) }

// Staff

func (svc *Service) Staff() []Staff { return svc.repo.Staff().All() }

func (svc *Service) StaffMember(id string) (Staff, bool) { return svc.repo.Staff().Get(id) }

func (svc *Service) AddStaff(s Staff) { svc.repo.Staff().Add(s) }

func (svc *Service) UpdateStaff(id string, p StaffPatch) bool {
	return svc.repo.Staff().Update(id, p.Apply)
}

func (svc *Service) DeleteStaff(id string) int { return svc.repo.Staff().Delete(id) }

// Placements

func (svc *Service) Placements() []PlacementRecord { return svc.repo.Placements().All() }

func (svc *Service) Placement(id string) (PlacementRecord, bool) { return svc.repo.Placements().Get(id) }

func (svc *Service) AddPlacement(p PlacementRecord) { svc.repo.Placements().Add(p) }

func (svc *Service) UpdatePlacement(id string, p PlacementPatch) bool {
	return svc.repo.Placements().Update(id, p.Apply)
}

func (svc *Service) DeletePlacement(id string) int { return svc.repo.Placements().Delete(id) }
