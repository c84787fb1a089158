package testutil

import (
	"io"
	"testing"

	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/college"
	"github.com/trezcool/ccdbms/core/session"
	logsvc "github.com/trezcool/ccdbms/services/logger"
	inmemdb "github.com/trezcool/ccdbms/storage/database/inmem"
)

// NewStore returns a store holding the demo dataset.
func NewStore() *college.Service {
	return college.NewService(inmemdb.Open())
}

// NewLogger returns a logger writing nowhere.
func NewLogger(conf *core.Config) core.Logger {
	return logsvc.NewRollbarLogger(logsvc.NewConsoleLogger(io.Discard, conf), conf)
}

func Identity(t *testing.T, role session.Role) session.Identity {
	cred, ok := session.CredentialFor(role)
	if !ok {
		t.Fatalf("Identity(%q) failed: no credential", role)
	}
	return cred.Identity()
}

// CreateStudent adds a student with the given name and roll number.
func CreateStudent(t *testing.T, svc *college.Service, id, name, rollNo string, semester int) college.Student {
	s := college.Student{
		ID:       id,
		Name:     name,
		RollNo:   rollNo,
		Program:  "B.Tech CSE",
		Year:     (semester + 1) / 2,
		Semester: semester,
	}
	svc.AddStudent(s)
	got, ok := svc.Student(id)
	if !ok {
		t.Fatalf("CreateStudent(%q) failed: not found after add", id)
	}
	return got
}
