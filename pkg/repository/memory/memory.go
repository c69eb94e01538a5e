package memory

import (
	"github.com/maham-hq/maham/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	employee   *employeeRepository
	task       *taskRepository
	file       *fileRepository
	department *departmentRepository
	profile    *profileRepository
	sessions   *sessionStore
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		employee:   newEmployeeRepository(),
		task:       newTaskRepository(),
		file:       newFileRepository(),
		department: newDepartmentRepository(),
		profile:    newProfileRepository(),
		sessions:   newSessionStore(),
	}
}

func (m *Memory) Employee() interfaces.EmployeeRepository {
	return m.employee
}

func (m *Memory) Task() interfaces.TaskRepository {
	return m.task
}

func (m *Memory) File() interfaces.FileRepository {
	return m.file
}

func (m *Memory) Department() interfaces.DepartmentRepository {
	return m.department
}

func (m *Memory) Profile() interfaces.ProfileRepository {
	return m.profile
}

func (m *Memory) Close() error {
	return nil
}
