package model

// DashboardStats aggregates counts shown on the dashboard page.
// OverdueTasks counts tasks that are neither completed nor approved and
// whose deadline has already passed.
type DashboardStats struct {
	TotalTasks      int
	CompletedTasks  int
	InProgressTasks int
	PendingTasks    int
	OverdueTasks    int
	Employees       int
	Departments     int
	Files           int
}
