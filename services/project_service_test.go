package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizwanuh/GovtProjectManager/models"
)

func newProjectFixture() models.Project {
	return models.Project{
		Name:        "X",
		Description: "d",
		Status:      models.StatusPlanning,
		Priority:    models.PriorityMedium,
		StartDate:   "2024-01-01T00:00:00Z",
		EndDate:     "2024-02-01T00:00:00Z",
		Budget:      1000,
		Tags:        []string{"a"},
	}
}

func TestProjectCreateDefaults(t *testing.T) {
	store := NewMemoryStore()
	svc := NewProjectService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", newProjectFixture())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, 0, created.Progress)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, "X", created.Name)
	assert.Equal(t, models.Money(1000), created.Budget)

	// 回读后字段完全一致
	got, err := svc.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestProjectCreateKeepsSuppliedProgress(t *testing.T) {
	svc := NewProjectService(NewMemoryStore())

	p := newProjectFixture()
	p.Progress = 45
	created, err := svc.Create(context.Background(), "u1", p)
	require.NoError(t, err)
	assert.Equal(t, 45, created.Progress)
}

func TestProjectOwnerIsolation(t *testing.T) {
	svc := NewProjectService(NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", newProjectFixture())
	require.NoError(t, err)

	// 其他用户按相同ID查不到记录
	got, err := svc.Get(ctx, "u2", created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	projects, err := svc.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectUpdateShallowMerge(t *testing.T) {
	svc := NewProjectService(NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", newProjectFixture())
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	newStatus := models.StatusInProgress
	updated, err := svc.Update(ctx, "u1", created.ID, models.ProjectUpdate{Status: &newStatus})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, models.StatusInProgress, updated.Status)

	// updated_at必须严格晚于更新前
	before, err := time.Parse(time.RFC3339Nano, created.UpdatedAt)
	require.NoError(t, err)
	after, err := time.Parse(time.RFC3339Nano, updated.UpdatedAt)
	require.NoError(t, err)
	assert.True(t, after.After(before))

	// 其余字段保持不变
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Priority, updated.Priority)
	assert.Equal(t, created.StartDate, updated.StartDate)
	assert.Equal(t, created.EndDate, updated.EndDate)
	assert.Equal(t, created.Budget, updated.Budget)
	assert.Equal(t, created.Tags, updated.Tags)
	assert.Equal(t, created.Progress, updated.Progress)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestProjectUpdateMissing(t *testing.T) {
	store := NewMemoryStore()
	svc := NewProjectService(store)

	name := "Y"
	updated, err := svc.Update(context.Background(), "u1", "missing", models.ProjectUpdate{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, 0, store.Len())
}

func TestProjectDeleteCascades(t *testing.T) {
	store := NewMemoryStore()
	projects := NewProjectService(store)
	tasks := NewTaskService(store)
	ctx := context.Background()

	p1, err := projects.Create(ctx, "u1", newProjectFixture())
	require.NoError(t, err)
	p2, err := projects.Create(ctx, "u1", newProjectFixture())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = tasks.Create(ctx, "u1", models.Task{ProjectID: p1.ID, Title: "t"})
		require.NoError(t, err)
	}
	keep, err := tasks.Create(ctx, "u1", models.Task{ProjectID: p2.ID, Title: "keep"})
	require.NoError(t, err)

	deleted, err := projects.Delete(ctx, "u1", p1.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// p1及其任务全部消失
	got, err := projects.Get(ctx, "u1", p1.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	remaining, err := tasks.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)

	// 另一个项目不受影响
	got, err = projects.Get(ctx, "u1", p2.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestProjectDeleteMissing(t *testing.T) {
	store := NewMemoryStore()
	svc := NewProjectService(store)

	deleted, err := svc.Delete(context.Background(), "u1", "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 0, store.Len())
}

func TestProjectSeedSamples(t *testing.T) {
	svc := NewProjectService(NewMemoryStore())
	ctx := context.Background()

	samples, err := svc.SeedSamples(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "Website Redesign", samples[0].Name)
	assert.Equal(t, 45, samples[0].Progress)
	assert.Equal(t, "Mobile App Development", samples[1].Name)
	assert.Equal(t, 0, samples[1].Progress)
	for _, p := range samples {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "u1", p.UserID)
	}

	projects, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}
