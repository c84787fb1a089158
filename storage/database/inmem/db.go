package inmemdb

import (
	"github.com/trezcool/ccdbms/core/college"
)

type DB struct {
	students   *table[college.Student]
	faculty    *table[college.Faculty]
	staff      *table[college.Staff]
	placements *table[college.PlacementRecord]
}

var _ college.Repository = (*DB)(nil) // interface compliance check

// Open returns a DB seeded with the demo dataset.
func Open() *DB {
	return &DB{
		students:   newTable(college.SeedStudents()),
		faculty:    newTable(college.SeedFaculty()),
		staff:      newTable(college.SeedStaff()),
		placements: newTable(college.SeedPlacements()),
	}
}

// OpenEmpty returns a DB without any record.
func OpenEmpty() *DB {
	return &DB{
		students:   newTable[college.Student](nil),
		faculty:    newTable[college.Faculty](nil),
		staff:      newTable[college.Staff](nil),
		placements: newTable[college.PlacementRecord](nil),
	}
}

func (db *DB) Students() college.Collection[college.Student] { return db.students }

func (db *DB) Faculty() college.Collection[college.Faculty] { return db.faculty }

func (db *DB) Staff() college.Collection[college.Staff] { return db.staff }

func (db *DB) Placements() college.Collection[college.PlacementRecord] { return db.placements }
