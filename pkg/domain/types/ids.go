package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// EmployeeID is the unique identifier of an employee record
type EmployeeID string

// TaskID is the unique identifier of a task record
type TaskID string

// FileID is the unique identifier of a file attachment record
type FileID string

// DepartmentID is the unique identifier of a department record
type DepartmentID string

// ProfileID is the unique identifier of an authenticated principal's profile
type ProfileID string

func NewEmployeeID() EmployeeID     { return EmployeeID(uuid.NewString()) }
func NewTaskID() TaskID             { return TaskID(uuid.NewString()) }
func NewFileID() FileID             { return FileID(uuid.NewString()) }
func NewDepartmentID() DepartmentID { return DepartmentID(uuid.NewString()) }
func NewProfileID() ProfileID       { return ProfileID(uuid.NewString()) }

func (id EmployeeID) String() string   { return string(id) }
func (id TaskID) String() string       { return string(id) }
func (id FileID) String() string       { return string(id) }
func (id DepartmentID) String() string { return string(id) }
func (id ProfileID) String() string    { return string(id) }

func (id EmployeeID) Validate() error {
	if id == "" {
		return goerr.New("employee ID is empty")
	}
	return nil
}

func (id TaskID) Validate() error {
	if id == "" {
		return goerr.New("task ID is empty")
	}
	return nil
}

func (id FileID) Validate() error {
	if id == "" {
		return goerr.New("file ID is empty")
	}
	return nil
}

func (id DepartmentID) Validate() error {
	if id == "" {
		return goerr.New("department ID is empty")
	}
	return nil
}

func (id ProfileID) Validate() error {
	if id == "" {
		return goerr.New("profile ID is empty")
	}
	return nil
}
