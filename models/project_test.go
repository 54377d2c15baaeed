package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProjectUpdateMerge(t *testing.T) {
	serialNo := "GPM-042"
	p := Project{
		ID:          "p1",
		UserID:      "u1",
		Name:        "X",
		Description: "d",
		Status:      StatusPlanning,
		Priority:    PriorityMedium,
		StartDate:   "2024-01-01T00:00:00Z",
		EndDate:     "2024-02-01T00:00:00Z",
		Budget:      1000,
		Tags:        []string{"a"},
		Progress:    10,
		SerialNo:    &serialNo,
	}

	// 只更新status，其余字段必须原样保留
	newStatus := StatusCompleted
	upd := ProjectUpdate{Status: &newStatus}
	upd.Merge(&p)

	assert.Equal(t, StatusCompleted, p.Status)
	assert.Equal(t, "X", p.Name)
	assert.Equal(t, "d", p.Description)
	assert.Equal(t, PriorityMedium, p.Priority)
	assert.Equal(t, Money(1000), p.Budget)
	assert.Equal(t, []string{"a"}, p.Tags)
	assert.Equal(t, 10, p.Progress)
	require.NotNil(t, p.SerialNo)
	assert.Equal(t, "GPM-042", *p.SerialNo)

	// 提供的字段覆盖原值
	newBudget := Money(2000)
	newProgress := 80
	upd2 := ProjectUpdate{
		Budget:     &newBudget,
		Progress:   &newProgress,
		NameOfWork: strPtr("Runway Extension"),
	}
	upd2.Merge(&p)

	assert.Equal(t, Money(2000), p.Budget)
	assert.Equal(t, 80, p.Progress)
	require.NotNil(t, p.NameOfWork)
	assert.Equal(t, "Runway Extension", *p.NameOfWork)
	// 未提供的字段依旧保留
	assert.Equal(t, StatusCompleted, p.Status)
}

func TestTaskUpdateMerge(t *testing.T) {
	task := Task{
		ID:        "t1",
		UserID:    "u1",
		ProjectID: "p1",
		Title:     "old",
		Status:    "todo",
	}

	upd := TaskUpdate{
		Title:   strPtr("new"),
		DueDate: strPtr("2024-03-01T00:00:00Z"),
	}
	upd.Merge(&task)

	assert.Equal(t, "new", task.Title)
	assert.Equal(t, "todo", task.Status)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2024-03-01T00:00:00Z", *task.DueDate)
	// 不可变字段不受Merge影响
	assert.Equal(t, "p1", task.ProjectID)
}

func TestMoneyUnmarshal(t *testing.T) {
	cases := []struct {
		input    string
		expected Money
	}{
		{`{"budget": 1000}`, 1000},
		{`{"budget": 1000.5}`, 1000.5},
		{`{"budget": "$50,000"}`, 50000},
		{`{"budget": "125000"}`, 125000},
		{`{"budget": ""}`, 0},
		{`{"budget": null}`, 0},
		{`{}`, 0},
	}

	for _, tc := range cases {
		var p Project
		require.NoError(t, json.Unmarshal([]byte(tc.input), &p), "input=%s", tc.input)
		assert.Equal(t, tc.expected, p.Budget, "input=%s", tc.input)
	}
}

func TestMoneyMarshal(t *testing.T) {
	data, err := json.Marshal(Project{Budget: 1000})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"budget":1000`)

	data, err = json.Marshal(Project{Budget: 1000.5})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"budget":1000.5`)
}
