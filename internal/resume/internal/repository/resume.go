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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/repository/dao"
)

var (
	ErrResumeNotFound  = dao.ErrRecordNotFound
	ErrVersionConflict = dao.ErrVersionConflict
)

//go:generate mockgen -source=./resume.go -destination=./mocks/resume.mock.go -package=repomocks -typed=true ResumeRepository
type ResumeRepository interface {
	Create(ctx context.Context, r domain.Resume) (int64, error)
	// Update 只更新 patch 里面出现的字段
	Update(ctx context.Context, uid, id int64, patch domain.Patch) error
	Delete(ctx context.Context, uid, id int64) error
	FindById(ctx context.Context, uid, id int64) (domain.Resume, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.Resume, error)
}

type resumeRepository struct {
	dao dao.ResumeDAO
}

func NewResumeRepository(d dao.ResumeDAO) ResumeRepository {
	return &resumeRepository{dao: d}
}

func (repo *resumeRepository) Create(ctx context.Context, r domain.Resume) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(r))
}

func (repo *resumeRepository) Update(ctx context.Context, uid, id int64, patch domain.Patch) error {
	r := patch.Apply(domain.Resume{Id: id, Uid: uid})
	return repo.dao.Update(ctx, repo.toEntity(r), repo.columns(patch), patch.ExpectedUtime)
}

func (repo *resumeRepository) Delete(ctx context.Context, uid, id int64) error {
	return repo.dao.Delete(ctx, uid, id)
}

func (repo *resumeRepository) FindById(ctx context.Context, uid, id int64) (domain.Resume, error) {
	r, err := repo.dao.FindById(ctx, uid, id)
	if err != nil {
		return domain.Resume{}, err
	}
	return repo.toDomain(r), nil
}

func (repo *resumeRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Resume, error) {
	rs, err := repo.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(rs, func(idx int, src dao.Resume) domain.Resume {
		return repo.toDomain(src)
	}), nil
}

func (repo *resumeRepository) columns(patch domain.Patch) []string {
	cols := make([]string, 0, 10)
	add := func(present bool, col string) {
		if present {
			cols = append(cols, col)
		}
	}
	add(patch.Title != nil, "title")
	add(patch.PersonalInfo != nil, "personal_info")
	add(patch.Experience != nil, "experience")
	add(patch.Education != nil, "education")
	add(patch.Skills != nil, "skills")
	add(patch.Projects != nil, "projects")
	add(patch.Certifications != nil, "certifications")
	add(patch.Languages != nil, "languages")
	add(patch.Template != nil, "template")
	add(patch.IsPublic != nil, "is_public")
	return cols
}

func (repo *resumeRepository) toEntity(r domain.Resume) dao.Resume {
	return dao.Resume{
		Id:             r.Id,
		Uid:            r.Uid,
		Title:          r.Title,
		PersonalInfo:   sqlx.JsonColumn[domain.PersonalInfo]{Valid: true, Val: r.PersonalInfo},
		Experience:     sqlx.JsonColumn[[]domain.Experience]{Valid: true, Val: r.Experience},
		Education:      sqlx.JsonColumn[[]domain.Education]{Valid: true, Val: r.Education},
		Skills:         sqlx.JsonColumn[[]domain.SkillCategory]{Valid: true, Val: r.Skills},
		Projects:       sqlx.JsonColumn[[]domain.Project]{Valid: true, Val: r.Projects},
		Certifications: sqlx.JsonColumn[[]domain.Certification]{Valid: true, Val: r.Certifications},
		Languages:      sqlx.JsonColumn[[]domain.Language]{Valid: true, Val: r.Languages},
		Template:       r.Template,
		IsPublic:       r.IsPublic,
	}
}

func (repo *resumeRepository) toDomain(r dao.Resume) domain.Resume {
	res := domain.Resume{
		Id:             r.Id,
		Uid:            r.Uid,
		Title:          r.Title,
		PersonalInfo:   r.PersonalInfo.Val,
		Experience:     r.Experience.Val,
		Education:      r.Education.Val,
		Skills:         r.Skills.Val,
		Projects:       r.Projects.Val,
		Certifications: r.Certifications.Val,
		Languages:      r.Languages.Val,
		Template:       r.Template,
		IsPublic:       r.IsPublic,
		Ctime:          time.UnixMilli(r.Ctime),
		Utime:          time.UnixMilli(r.Utime),
	}
	res.FillDefaults()
	return res
}
