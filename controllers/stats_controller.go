package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rizwanuh/GovtProjectManager/config"
	"github.com/rizwanuh/GovtProjectManager/models"
	"github.com/rizwanuh/GovtProjectManager/services"
)

// StatsController 仪表盘统计控制器
type StatsController struct {
	projects *services.ProjectService
	tasks    *services.TaskService
}

func NewStatsController(projects *services.ProjectService, tasks *services.TaskService) *StatsController {
	return &StatsController{projects: projects, tasks: tasks}
}

// Summary 返回当前用户项目与任务的汇总统计
func (sc *StatsController) Summary(c *gin.Context) {
	uid := c.GetString("uid")

	projects, err := sc.projects.List(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取统计数据失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	tasks, err := sc.tasks.List(c.Request.Context(), uid, "")
	if err != nil {
		config.Logger.Errorw("获取统计数据失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	stats := models.StatsResponse{
		TotalProjects: len(projects),
		TotalTasks:    len(tasks),
	}

	var progressSum int
	for _, p := range projects {
		switch p.Status {
		case models.StatusInProgress:
			stats.ActiveProjects++
		case models.StatusCompleted:
			stats.CompletedProjects++
		}
		stats.TotalBudget += float64(p.Budget)
		progressSum += p.Progress
	}
	if len(projects) > 0 {
		stats.AverageProgress = float64(progressSum) / float64(len(projects))
	}

	for _, t := range tasks {
		if t.Status == models.StatusCompleted {
			stats.CompletedTasks++
		}
	}

	c.JSON(http.StatusOK, stats)
}
