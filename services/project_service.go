package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rizwanuh/GovtProjectManager/models"
	"github.com/rizwanuh/GovtProjectManager/utils"
)

// projectKey 项目记录的键约定。所有权直接编码在键里，
// 构造键时绝不允许使用其他用户的ID
func projectKey(uid, pid string) string {
	return fmt.Sprintf("projects:%s:%s", uid, pid)
}

func projectPrefix(uid string) string {
	return fmt.Sprintf("projects:%s:", uid)
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// ProjectService 项目记录的存取服务
type ProjectService struct {
	store Store
}

func NewProjectService(store Store) *ProjectService {
	return &ProjectService{store: store}
}

// List 列出用户的全部项目
func (s *ProjectService) List(ctx context.Context, uid string) ([]models.Project, error) {
	values, err := s.store.GetByPrefix(ctx, projectPrefix(uid))
	if err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(values))
	for _, v := range values {
		var p models.Project
		if err := json.Unmarshal(v, &p); err != nil {
			return nil, fmt.Errorf("项目记录解析失败: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// Get 按ID查找项目，不存在时返回 (nil, nil)
func (s *ProjectService) Get(ctx context.Context, uid, pid string) (*models.Project, error) {
	data, err := s.store.Get(ctx, projectKey(uid, pid))
	if err != nil || data == nil {
		return nil, err
	}

	var p models.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("项目记录解析失败: %w", err)
	}
	return &p, nil
}

// Create 创建项目。ID、归属和时间戳由服务端生成，进度未提供时默认为0
func (s *ProjectService) Create(ctx context.Context, uid string, p models.Project) (*models.Project, error) {
	now := nowTimestamp()
	p.ID = utils.GenerateID()
	p.UserID = uid
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.save(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update 浅合并更新并刷新updated_at，项目不存在时返回 (nil, nil)
func (s *ProjectService) Update(ctx context.Context, uid, pid string, upd models.ProjectUpdate) (*models.Project, error) {
	existing, err := s.Get(ctx, uid, pid)
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

// Delete 删除项目并级联删除该项目下的全部任务。
// 返回项目删除前是否存在，路由层据此决定404
func (s *ProjectService) Delete(ctx context.Context, uid, pid string) (bool, error) {
	existing, err := s.Get(ctx, uid, pid)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := s.store.Del(ctx, projectKey(uid, pid)); err != nil {
		return false, err
	}

	// 级联删除关联任务
	values, err := s.store.GetByPrefix(ctx, taskProjectPrefix(uid, pid))
	if err != nil {
		return false, err
	}
	keys := make([]string, 0, len(values))
	for _, v := range values {
		var t models.Task
		if err := json.Unmarshal(v, &t); err != nil {
			return false, fmt.Errorf("任务记录解析失败: %w", err)
		}
		keys = append(keys, taskKey(uid, pid, t.ID))
	}
	if len(keys) > 0 {
		if err := s.store.MDel(ctx, keys); err != nil {
			return false, err
		}
	}

	return true, nil
}

// SeedSamples 为新用户写入两条示例项目，方便首次登录后就能看到数据
func (s *ProjectService) SeedSamples(ctx context.Context, uid string) ([]models.Project, error) {
	now := time.Now().UTC()
	samples := []models.Project{
		{
			ID:          utils.GenerateID(),
			UserID:      uid,
			Name:        "Website Redesign",
			Description: "Complete overhaul of company website with modern design",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			StartDate:   now.Format(time.RFC3339Nano),
			EndDate:     now.AddDate(0, 0, 30).Format(time.RFC3339Nano),
			Budget:      25000,
			Tags:        []string{"web", "design"},
			Progress:    45,
			CreatedAt:   now.Format(time.RFC3339Nano),
			UpdatedAt:   now.Format(time.RFC3339Nano),
		},
		{
			ID:          utils.GenerateID(),
			UserID:      uid,
			Name:        "Mobile App Development",
			Description: "Create a mobile application for iOS and Android",
			Status:      models.StatusPlanning,
			Priority:    models.PriorityMedium,
			StartDate:   now.AddDate(0, 0, 7).Format(time.RFC3339Nano),
			EndDate:     now.AddDate(0, 0, 90).Format(time.RFC3339Nano),
			Budget:      50000,
			Tags:        []string{"mobile", "app"},
			Progress:    0,
			CreatedAt:   now.Format(time.RFC3339Nano),
			UpdatedAt:   now.Format(time.RFC3339Nano),
		},
	}

	for i := range samples {
		if err := s.save(ctx, &samples[i]); err != nil {
			return nil, err
		}
	}
	return samples, nil
}

func (s *ProjectService) save(ctx context.Context, p *models.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("项目记录序列化失败: %w", err)
	}
	return s.store.Set(ctx, projectKey(p.UserID, p.ID), data)
}
