package models

// 项目状态枚举
const (
	StatusPlanning   = "Planning"
	StatusInProgress = "In Progress"
	StatusOnHold     = "On Hold"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// 优先级枚举
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Project 项目模型。核心字段使用下划线命名，立项审批相关的扩展字段
// 沿用前端表单的驼峰命名，存储层不解释扩展字段的内容，只负责保存
type Project struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      Money    `json:"budget"`
	Tags        []string `json:"tags"`
	Progress    int      `json:"progress"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`

	// 基本信息
	SerialNo         *string `json:"serialNo,omitempty"`
	NameOfWork       *string `json:"nameOfWork,omitempty"`
	FileNumber       *string `json:"fileNumber,omitempty"`
	DateOfInitiation *string `json:"dateOfInitiation,omitempty"`

	// 项目分类
	SchemeType  *string `json:"schemeType,omitempty"`
	ProjectType *string `json:"projectType,omitempty"`

	// 费用估算
	EstimatedCostExclGST *string `json:"estimatedCostExclGST,omitempty"`
	EstimatedCostInclGST *string `json:"estimatedCostInclGST,omitempty"`
	CapexCostInclGST     *string `json:"capexCostInclGST,omitempty"`
	OpexCostInclGST      *string `json:"opexCostInclGST,omitempty"`

	// 审批信息
	ProposedBy         *string `json:"proposedBy,omitempty"`
	RecommendedBy      *string `json:"recommendedBy,omitempty"`
	ApprovalAccordedBy *string `json:"approvalAccordedBy,omitempty"`
	ApprovalDate       *string `json:"approvalDate,omitempty"`

	// 分部工程
	SubDivisionBeforeAAES *string `json:"subDivisionBeforeAAES,omitempty"`
	SubDivisionAfterAAES  *string `json:"subDivisionAfterAAES,omitempty"`

	// 采购信息
	ModeOfProcurement   *string `json:"modeOfProcurement,omitempty"`
	MethodOfProcurement *string `json:"methodOfProcurement,omitempty"`
	EmdExemptionType    *string `json:"emdExemptionType,omitempty"`

	// 旧版字段（兼容早期表单）
	Manager  *string `json:"manager,omitempty"`
	Category *string `json:"category,omitempty"`
	TeamSize *int    `json:"teamSize,omitempty"`
}

// ProjectUpdate 项目更新请求。全部字段可选，请求中缺失的字段保持原值。
// id、user_id、created_at 不可通过更新修改
type ProjectUpdate struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Priority    *string   `json:"priority"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Budget      *Money    `json:"budget"`
	Tags        *[]string `json:"tags"`
	Progress    *int      `json:"progress"`

	SerialNo         *string `json:"serialNo"`
	NameOfWork       *string `json:"nameOfWork"`
	FileNumber       *string `json:"fileNumber"`
	DateOfInitiation *string `json:"dateOfInitiation"`

	SchemeType  *string `json:"schemeType"`
	ProjectType *string `json:"projectType"`

	EstimatedCostExclGST *string `json:"estimatedCostExclGST"`
	EstimatedCostInclGST *string `json:"estimatedCostInclGST"`
	CapexCostInclGST     *string `json:"capexCostInclGST"`
	OpexCostInclGST      *string `json:"opexCostInclGST"`

	ProposedBy         *string `json:"proposedBy"`
	RecommendedBy      *string `json:"recommendedBy"`
	ApprovalAccordedBy *string `json:"approvalAccordedBy"`
	ApprovalDate       *string `json:"approvalDate"`

	SubDivisionBeforeAAES *string `json:"subDivisionBeforeAAES"`
	SubDivisionAfterAAES  *string `json:"subDivisionAfterAAES"`

	ModeOfProcurement   *string `json:"modeOfProcurement"`
	MethodOfProcurement *string `json:"methodOfProcurement"`
	EmdExemptionType    *string `json:"emdExemptionType"`

	Manager  *string `json:"manager"`
	Category *string `json:"category"`
	TeamSize *int    `json:"teamSize"`
}

// Merge 浅合并：请求中提供的字段覆盖原值，其余字段保持不变
func (u *ProjectUpdate) Merge(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Priority != nil {
		p.Priority = *u.Priority
	}
	if u.StartDate != nil {
		p.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		p.EndDate = *u.EndDate
	}
	if u.Budget != nil {
		p.Budget = *u.Budget
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.Progress != nil {
		p.Progress = *u.Progress
	}
	if u.SerialNo != nil {
		p.SerialNo = u.SerialNo
	}
	if u.NameOfWork != nil {
		p.NameOfWork = u.NameOfWork
	}
	if u.FileNumber != nil {
		p.FileNumber = u.FileNumber
	}
	if u.DateOfInitiation != nil {
		p.DateOfInitiation = u.DateOfInitiation
	}
	if u.SchemeType != nil {
		p.SchemeType = u.SchemeType
	}
	if u.ProjectType != nil {
		p.ProjectType = u.ProjectType
	}
	if u.EstimatedCostExclGST != nil {
		p.EstimatedCostExclGST = u.EstimatedCostExclGST
	}
	if u.EstimatedCostInclGST != nil {
		p.EstimatedCostInclGST = u.EstimatedCostInclGST
	}
	if u.CapexCostInclGST != nil {
		p.CapexCostInclGST = u.CapexCostInclGST
	}
	if u.OpexCostInclGST != nil {
		p.OpexCostInclGST = u.OpexCostInclGST
	}
	if u.ProposedBy != nil {
		p.ProposedBy = u.ProposedBy
	}
	if u.RecommendedBy != nil {
		p.RecommendedBy = u.RecommendedBy
	}
	if u.ApprovalAccordedBy != nil {
		p.ApprovalAccordedBy = u.ApprovalAccordedBy
	}
	if u.ApprovalDate != nil {
		p.ApprovalDate = u.ApprovalDate
	}
	if u.SubDivisionBeforeAAES != nil {
		p.SubDivisionBeforeAAES = u.SubDivisionBeforeAAES
	}
	if u.SubDivisionAfterAAES != nil {
		p.SubDivisionAfterAAES = u.SubDivisionAfterAAES
	}
	if u.ModeOfProcurement != nil {
		p.ModeOfProcurement = u.ModeOfProcurement
	}
	if u.MethodOfProcurement != nil {
		p.MethodOfProcurement = u.MethodOfProcurement
	}
	if u.EmdExemptionType != nil {
		p.EmdExemptionType = u.EmdExemptionType
	}
	if u.Manager != nil {
		p.Manager = u.Manager
	}
	if u.Category != nil {
		p.Category = u.Category
	}
	if u.TeamSize != nil {
		p.TeamSize = u.TeamSize
	}
}
