package filter_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/maham-hq/maham/pkg/domain/filter"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

func sampleTasks() []*model.Task {
	return []*model.Task{
		{
			ID:          "t1",
			Title:       "تطوير واجهة المستخدم الجديدة",
			Description: "تصميم وتطوير واجهة مستخدم حديثة",
			AssignedTo:  "أحمد محمد السعيد",
			Priority:    types.TaskPriorityUrgent,
			Status:      types.TaskStatusProgress,
			Department:  "تقنية المعلومات",
		},
		{
			ID:          "t2",
			Title:       "مراجعة السياسات الداخلية",
			Description: "مراجعة وتحديث سياسات الموارد البشرية",
			AssignedTo:  "سارة أحمد العلي",
			Priority:    types.TaskPriorityNormal,
			Status:      types.TaskStatusPending,
			Department:  "الموارد البشرية",
		},
		{
			ID:          "t3",
			Title:       "Quarterly financial report",
			Description: "Collect and analyze Q1 figures",
			AssignedTo:  "محمد علي حسن",
			Priority:    types.TaskPriorityUrgent,
			Status:      types.TaskStatusCompleted,
			Department:  "المالية",
		},
	}
}

func TestTaskQuery(t *testing.T) {
	t.Run("empty query returns full input in original order", func(t *testing.T) {
		tasks := sampleTasks()
		got := filter.Apply(tasks, filter.TaskQuery{}.Match)
		gt.Array(t, got).Length(3)
		gt.Value(t, got[0].ID).Equal(tasks[0].ID)
		gt.Value(t, got[1].ID).Equal(tasks[1].ID)
		gt.Value(t, got[2].ID).Equal(tasks[2].ID)
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		q := filter.TaskQuery{Priority: types.TaskPriorityUrgent}
		once := filter.Apply(sampleTasks(), q.Match)
		twice := filter.Apply(once, q.Match)
		gt.Array(t, twice).Length(len(once))
		for i := range once {
			gt.Value(t, twice[i].ID).Equal(once[i].ID)
		}
	})

	t.Run("search matches title, description, and assignee case-insensitively", func(t *testing.T) {
		byTitle := filter.Apply(sampleTasks(), filter.TaskQuery{Search: "quarterly"}.Match)
		gt.Array(t, byTitle).Length(1)
		gt.Value(t, byTitle[0].ID).Equal(types.TaskID("t3"))

		byDesc := filter.Apply(sampleTasks(), filter.TaskQuery{Search: "سياسات"}.Match)
		gt.Array(t, byDesc).Length(1)
		gt.Value(t, byDesc[0].ID).Equal(types.TaskID("t2"))

		byAssignee := filter.Apply(sampleTasks(), filter.TaskQuery{Search: "سارة"}.Match)
		gt.Array(t, byAssignee).Length(1)
	})

	t.Run("category filters are ANDed", func(t *testing.T) {
		q := filter.TaskQuery{
			Status:   types.TaskStatusProgress,
			Priority: types.TaskPriorityUrgent,
		}
		got := filter.Apply(sampleTasks(), q.Match)
		gt.Array(t, got).Length(1)
		gt.Value(t, got[0].ID).Equal(types.TaskID("t1"))

		q.Department = "المالية"
		gt.Array(t, filter.Apply(sampleTasks(), q.Match)).Length(0)
	})

	t.Run("employee actor only ever sees own tasks", func(t *testing.T) {
		actor := &model.Profile{Name: "سارة أحمد العلي", Role: types.RoleEmployee}

		got := filter.Apply(sampleTasks(), filter.TaskQuery{Actor: actor}.Match)
		gt.Array(t, got).Length(1)
		for _, task := range got {
			gt.Value(t, task.AssignedTo).Equal("سارة أحمد العلي")
		}

		// even with an otherwise-matching search the guard holds
		got = filter.Apply(sampleTasks(), filter.TaskQuery{Actor: actor, Search: "أحمد"}.Match)
		for _, task := range got {
			gt.Value(t, task.AssignedTo).Equal("سارة أحمد العلي")
		}
	})

	t.Run("manager actor sees everything", func(t *testing.T) {
		actor := &model.Profile{Name: "مدير", Role: types.RoleManager}
		got := filter.Apply(sampleTasks(), filter.TaskQuery{Actor: actor}.Match)
		gt.Array(t, got).Length(3)
	})
}

func TestEmployeeQuery(t *testing.T) {
	employees := []*model.Employee{
		{ID: "e1", Name: "أحمد محمد السعيد", Email: "ahmed@company.com", JobTitle: "مطور أول", Department: "تقنية المعلومات"},
		{ID: "e2", Name: "سارة أحمد العلي", Email: "sara@company.com", JobTitle: "أخصائي موارد بشرية", Department: "الموارد البشرية"},
	}

	t.Run("search covers name, email, and job title", func(t *testing.T) {
		gt.Array(t, filter.Apply(employees, filter.EmployeeQuery{Search: "SARA@"}.Match)).Length(1)
		gt.Array(t, filter.Apply(employees, filter.EmployeeQuery{Search: "مطور"}.Match)).Length(1)
		gt.Array(t, filter.Apply(employees, filter.EmployeeQuery{Search: "أحمد"}.Match)).Length(2)
	})

	t.Run("department filter is exact", func(t *testing.T) {
		got := filter.Apply(employees, filter.EmployeeQuery{Department: "الموارد البشرية"}.Match)
		gt.Array(t, got).Length(1)
		gt.Value(t, got[0].ID).Equal(types.EmployeeID("e2"))
	})
}

func TestFileQuery(t *testing.T) {
	files := []*model.FileAttachment{
		{ID: "f1", Name: "Task_Report_Q1_2024.pdf", MimeCategory: types.MimeCategoryPDF, UploadedBy: "أحمد محمد السعيد"},
		{ID: "f2", Name: "UI_Design_Mockups.png", MimeCategory: types.MimeCategoryImage, UploadedBy: "أحمد محمد السعيد"},
		{ID: "f3", Name: "HR_Policy_Draft_v2.docx", MimeCategory: types.MimeCategoryDocument, UploadedBy: "سارة أحمد العلي"},
	}

	t.Run("search covers file name and uploader", func(t *testing.T) {
		gt.Array(t, filter.Apply(files, filter.FileQuery{Search: "mockups"}.Match)).Length(1)
		gt.Array(t, filter.Apply(files, filter.FileQuery{Search: "سارة"}.Match)).Length(1)
	})

	t.Run("category filter is exact", func(t *testing.T) {
		got := filter.Apply(files, filter.FileQuery{Category: types.MimeCategoryImage}.Match)
		gt.Array(t, got).Length(1)
		gt.Value(t, got[0].ID).Equal(types.FileID("f2"))
	})

	t.Run("combined filters are conjunctive", func(t *testing.T) {
		q := filter.FileQuery{Search: "أحمد", Category: types.MimeCategoryPDF}
		got := filter.Apply(files, q.Match)
		gt.Array(t, got).Length(1)
		gt.Value(t, got[0].ID).Equal(types.FileID("f1"))
	})
}
