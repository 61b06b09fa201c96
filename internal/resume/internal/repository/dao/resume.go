// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound  = gorm.ErrRecordNotFound
	ErrVersionConflict = errors.New("简历已经被修改")
)

//go:generate mockgen -source=./resume.go -destination=./mocks/resume.mock.go -package=daomocks -typed=true ResumeDAO
type ResumeDAO interface {
	Insert(ctx context.Context, r Resume) (int64, error)
	// Update 只更新 cols 里面的列，expectedUtime 大于 0 的时候校验版本
	Update(ctx context.Context, r Resume, cols []string, expectedUtime int64) error
	Delete(ctx context.Context, uid, id int64) error
	FindById(ctx context.Context, uid, id int64) (Resume, error)
	FindByUid(ctx context.Context, uid int64) ([]Resume, error)
}

type GORMResumeDAO struct {
	db *egorm.Component
}

func NewGORMResumeDAO(db *egorm.Component) ResumeDAO {
	return &GORMResumeDAO{db: db}
}

func (dao *GORMResumeDAO) Insert(ctx context.Context, r Resume) (int64, error) {
	now := time.Now().UnixMilli()
	r.Id = 0
	r.Ctime = now
	r.Utime = now
	err := dao.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (dao *GORMResumeDAO) Update(ctx context.Context, r Resume, cols []string, expectedUtime int64) error {
	r.Utime = time.Now().UnixMilli()
	cols = append(cols, "utime")
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&Resume{}).Where("id = ? AND uid = ?", r.Id, r.Uid)
		if expectedUtime > 0 {
			query = query.Where("utime = ?", expectedUtime)
		}
		res := query.Select(cols).Updates(&r)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		// 没有更新到数据，要区分是不存在还是版本不对
		var cnt int64
		err := tx.Model(&Resume{}).Where("id = ? AND uid = ?", r.Id, r.Uid).Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt == 0 {
			return ErrRecordNotFound
		}
		if expectedUtime > 0 {
			return ErrVersionConflict
		}
		return nil
	})
}

func (dao *GORMResumeDAO) Delete(ctx context.Context, uid, id int64) error {
	res := dao.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&Resume{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (dao *GORMResumeDAO) FindById(ctx context.Context, uid, id int64) (Resume, error) {
	var res Resume
	err := dao.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&res).Error
	return res, err
}

func (dao *GORMResumeDAO) FindByUid(ctx context.Context, uid int64) ([]Resume, error) {
	var res []Resume
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).
		Order("utime DESC, id DESC").Find(&res).Error
	return res, err
}

type Resume struct {
	Id             int64                                   `gorm:"primaryKey;autoIncrement"`
	Uid            int64                                   `gorm:"not null;index:idx_uid_utime,priority:1"`
	Title          string                                  `gorm:"type:varchar(512);not null"`
	PersonalInfo   sqlx.JsonColumn[domain.PersonalInfo]    `gorm:"type:text"`
	Experience     sqlx.JsonColumn[[]domain.Experience]    `gorm:"type:text"`
	Education      sqlx.JsonColumn[[]domain.Education]     `gorm:"type:text"`
	Skills         sqlx.JsonColumn[[]domain.SkillCategory] `gorm:"type:text"`
	Projects       sqlx.JsonColumn[[]domain.Project]       `gorm:"type:text"`
	Certifications sqlx.JsonColumn[[]domain.Certification] `gorm:"type:text"`
	Languages      sqlx.JsonColumn[[]domain.Language]      `gorm:"type:text"`
	Template       string                                  `gorm:"type:varchar(64);not null;default:'modern'"`
	IsPublic       bool                                    `gorm:"not null;default:false"`
	Ctime          int64
	Utime          int64 `gorm:"index:idx_uid_utime,priority:2"`
}

func (Resume) TableName() string {
	return "resumes"
}
