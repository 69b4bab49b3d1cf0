package model

import (
	"time"
)

// ProjectModel 众筹项目账本记录
type ProjectModel struct {
	Id        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息（创建后不可变）
	Name        string `json:"name" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text"`

	// 创建者地址
	Owner string `json:"owner" gorm:"not null;index"`

	// 众筹信息
	EndDate time.Time `json:"end_date"` // 仅作展示，不参与状态流转
	Target  int64     `json:"target" gorm:"not null"`
	Balance int64     `json:"balance" gorm:"default:0"`

	// 状态
	State ProjectState `json:"state" gorm:"default:'open'"`
}

// ProjectState 项目状态
type ProjectState string

const (
	ProjectStateOpen             ProjectState = "open"               // 进行中
	ProjectStateOpenObjReached   ProjectState = "open_obj_reached"   // 进行中，已达标
	ProjectStateClosedObjReached ProjectState = "closed_obj_reached" // 已关闭，达标
	ProjectStateClosedObjFailed  ProjectState = "closed_obj_failed"  // 已关闭，未达标
)

// Closed 是否处于终止状态
func (s ProjectState) Closed() bool {
	return s == ProjectStateClosedObjReached || s == ProjectStateClosedObjFailed
}

// TableName 自定义表名
func (ProjectModel) TableName() string {
	return "project"
}
