package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rizwanuh/GovtProjectManager/config"
	"github.com/rizwanuh/GovtProjectManager/models"
	"github.com/rizwanuh/GovtProjectManager/services"
)

// TaskController 任务资源控制器
type TaskController struct {
	tasks    *services.TaskService
	projects *services.ProjectService
}

func NewTaskController(tasks *services.TaskService, projects *services.ProjectService) *TaskController {
	return &TaskController{tasks: tasks, projects: projects}
}

// List 列出当前用户的任务，支持 project_id 查询参数过滤
func (tc *TaskController) List(c *gin.Context) {
	uid := c.GetString("uid")
	projectID := c.Query("project_id")

	tasks, err := tc.tasks.List(c.Request.Context(), uid, projectID)
	if err != nil {
		config.Logger.Errorw("获取任务列表失败", "error", err, "uid", uid, "projectID", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Create 创建任务，先校验父项目存在且归属当前用户
func (tc *TaskController) Create(c *gin.Context) {
	uid := c.GetString("uid")

	var t models.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := tc.projects.Get(c.Request.Context(), uid, t.ProjectID)
	if err != nil {
		config.Logger.Errorw("创建任务失败", "error", err, "uid", uid, "projectID", t.ProjectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	created, err := tc.tasks.Create(c.Request.Context(), uid, t)
	if err != nil {
		config.Logger.Errorw("创建任务失败", "error", err, "uid", uid, "projectID", t.ProjectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// Update 浅合并更新任务
func (tc *TaskController) Update(c *gin.Context) {
	uid := c.GetString("uid")
	tid := c.Param("id")

	var upd models.TaskUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := tc.tasks.Update(c.Request.Context(), uid, tid, upd)
	if err != nil {
		config.Logger.Errorw("更新任务失败", "error", err, "uid", uid, "taskID", tid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete 按ID删除任务
func (tc *TaskController) Delete(c *gin.Context) {
	uid := c.GetString("uid")
	tid := c.Param("id")

	deleted, err := tc.tasks.Delete(c.Request.Context(), uid, tid)
	if err != nil {
		config.Logger.Errorw("删除任务失败", "error", err, "uid", uid, "taskID", tid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
