package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rizwanuh/GovtProjectManager/config"
	"github.com/rizwanuh/GovtProjectManager/models"
	"github.com/rizwanuh/GovtProjectManager/services"
)

// ProjectController 项目资源控制器
type ProjectController struct {
	projects *services.ProjectService
}

func NewProjectController(projects *services.ProjectService) *ProjectController {
	return &ProjectController{projects: projects}
}

// List 列出当前用户的全部项目。没有任何项目时先写入两条示例项目再返回，
// 保证新用户首次打开就能看到数据。写入只在空集合时发生，重复调用不会追加
func (pc *ProjectController) List(c *gin.Context) {
	uid := c.GetString("uid")

	projects, err := pc.projects.List(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取项目列表失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to retrieve projects: %v", err)})
		return
	}

	if len(projects) == 0 {
		projects, err = pc.projects.SeedSamples(c.Request.Context(), uid)
		if err != nil {
			config.Logger.Errorw("写入示例项目失败", "error", err, "uid", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to retrieve projects: %v", err)})
			return
		}
	}

	c.JSON(http.StatusOK, projects)
}

// Create 创建项目，回显包含服务端生成字段的完整记录
func (pc *ProjectController) Create(c *gin.Context) {
	uid := c.GetString("uid")

	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := pc.projects.Create(c.Request.Context(), uid, p)
	if err != nil {
		config.Logger.Errorw("创建项目失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create project: %v", err)})
		return
	}

	c.JSON(http.StatusOK, created)
}

// Update 浅合并更新项目
func (pc *ProjectController) Update(c *gin.Context) {
	uid := c.GetString("uid")
	pid := c.Param("id")

	var upd models.ProjectUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := pc.projects.Update(c.Request.Context(), uid, pid, upd)
	if err != nil {
		config.Logger.Errorw("更新项目失败", "error", err, "uid", uid, "projectID", pid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete 删除项目并级联删除关联任务
func (pc *ProjectController) Delete(c *gin.Context) {
	uid := c.GetString("uid")
	pid := c.Param("id")

	deleted, err := pc.projects.Delete(c.Request.Context(), uid, pid)
	if err != nil {
		config.Logger.Errorw("删除项目失败", "error", err, "uid", uid, "projectID", pid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
