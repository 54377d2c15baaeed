package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rizwanuh/GovtProjectManager/models"
	"github.com/rizwanuh/GovtProjectManager/utils"
)

// taskKey 任务记录的键约定，同时编码归属用户和父项目
func taskKey(uid, pid, tid string) string {
	return fmt.Sprintf("tasks:%s:%s:%s", uid, pid, tid)
}

func taskPrefix(uid string) string {
	return fmt.Sprintf("tasks:%s:", uid)
}

func taskProjectPrefix(uid, pid string) string {
	return fmt.Sprintf("tasks:%s:%s:", uid, pid)
}

// TaskService 任务记录的存取服务
type TaskService struct {
	store Store
}

func NewTaskService(store Store) *TaskService {
	return &TaskService{store: store}
}

// List 列出用户的任务，projectID非空时只返回该项目下的任务
func (s *TaskService) List(ctx context.Context, uid, projectID string) ([]models.Task, error) {
	prefix := taskPrefix(uid)
	if projectID != "" {
		prefix = taskProjectPrefix(uid, projectID)
	}

	values, err := s.store.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(values))
	for _, v := range values {
		var t models.Task
		if err := json.Unmarshal(v, &t); err != nil {
			return nil, fmt.Errorf("任务记录解析失败: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Create 创建任务。父项目的存在性由调用方校验
func (s *TaskService) Create(ctx context.Context, uid string, t models.Task) (*models.Task, error) {
	now := nowTimestamp()
	t.ID = utils.GenerateID()
	t.UserID = uid
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.save(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByID 按ID查找任务。任务键中包含项目ID，只有ID时无法直接构造键，
// 需要全量扫描用户的任务后逐条比对。预期单用户任务量很小，接受O(n)成本
func (s *TaskService) FindByID(ctx context.Context, uid, tid string) (*models.Task, error) {
	tasks, err := s.List(ctx, uid, "")
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == tid {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// Update 浅合并更新并刷新updated_at，任务不存在时返回 (nil, nil)
func (s *TaskService) Update(ctx context.Context, uid, tid string, upd models.TaskUpdate) (*models.Task, error) {
	existing, err := s.FindByID(ctx, uid, tid)
	if err != nil || existing == nil {
		return nil, err
	}

	upd.Merge(existing)
	existing.UpdatedAt = nowTimestamp()

	if err := s.save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete 按ID删除任务，返回任务删除前是否存在
func (s *TaskService) Delete(ctx context.Context, uid, tid string) (bool, error) {
	existing, err := s.FindByID(ctx, uid, tid)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := s.store.Del(ctx, taskKey(uid, existing.ProjectID, tid)); err != nil {
		return false, err
	}
	return true, nil
}

func (s *TaskService) save(ctx context.Context, t *models.Task) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("任务记录序列化失败: %w", err)
	}
	return s.store.Set(ctx, taskKey(t.UserID, t.ProjectID, t.ID), data)
}
