package models

// StatsResponse 仪表盘统计响应结构体
type StatsResponse struct {
	TotalProjects     int     `json:"total_projects"`
	ActiveProjects    int     `json:"active_projects"`
	CompletedProjects int     `json:"completed_projects"`
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	TotalBudget       float64 `json:"total_budget"`
	AverageProgress   float64 `json:"average_progress"`
}
