package models

// Task 任务模型，归属于某个项目
type Task struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	ProjectID   string  `json:"project_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// TaskUpdate 任务更新请求。全部字段可选，请求中缺失的字段保持原值。
// id、user_id、project_id、created_at 不可通过更新修改
type TaskUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	AssignedTo  *string `json:"assigned_to"`
}

// Merge 浅合并：请求中提供的字段覆盖原值，其余字段保持不变
func (u *TaskUpdate) Merge(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.DueDate != nil {
		t.DueDate = u.DueDate
	}
	if u.AssignedTo != nil {
		t.AssignedTo = u.AssignedTo
	}
}
