package client

import (
	"context"
	"net/http"

	"github.com/rizwanuh/GovtProjectManager/models"
)

// ListProjects 列出当前用户的项目
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject 创建项目
func (c *Client) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	var created models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProject 更新项目，只提交需要修改的字段
func (c *Client) UpdateProject(ctx context.Context, id string, upd models.ProjectUpdate) (*models.Project, error) {
	var updated models.Project
	if err := c.do(ctx, http.MethodPut, "/projects/"+id, upd, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject 删除项目及其全部任务
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil)
}

// ListTasks 列出任务，projectID非空时只返回该项目下的任务
func (c *Client) ListTasks(ctx context.Context, projectID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks"+taskQuery(projectID), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask 创建任务
func (c *Client) CreateTask(ctx context.Context, t models.Task) (*models.Task, error) {
	var created models.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask 更新任务
func (c *Client) UpdateTask(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error) {
	var updated models.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, upd, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask 删除任务
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}

// Stats 获取仪表盘统计
func (c *Client) Stats(ctx context.Context) (*models.StatsResponse, error) {
	var stats models.StatsResponse
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
