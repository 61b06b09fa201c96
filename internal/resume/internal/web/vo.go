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

package web

import (
	"time"

	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
)

type Resume struct {
	Id             int64                  `json:"id"`
	Title          string                 `json:"title"`
	PersonalInfo   domain.PersonalInfo    `json:"personalInfo"`
	Experience     []domain.Experience    `json:"experience"`
	Education      []domain.Education     `json:"education"`
	Skills         []domain.SkillCategory `json:"skills"`
	Projects       []domain.Project       `json:"projects"`
	Certifications []domain.Certification `json:"certifications"`
	Languages      []domain.Language      `json:"languages"`
	Template       string                 `json:"template"`
	IsPublic       bool                   `json:"isPublic"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	// Version 更新的时候带回来可以避免覆盖别人的修改
	Version int64 `json:"version"`
}

func newResume(r domain.Resume) Resume {
	return Resume{
		Id:             r.Id,
		Title:          r.Title,
		PersonalInfo:   r.PersonalInfo,
		Experience:     r.Experience,
		Education:      r.Education,
		Skills:         r.Skills,
		Projects:       r.Projects,
		Certifications: r.Certifications,
		Languages:      r.Languages,
		Template:       r.Template,
		IsPublic:       r.IsPublic,
		CreatedAt:      r.Ctime,
		UpdatedAt:      r.Utime,
		Version:        r.Utime.UnixMilli(),
	}
}

// CreateReq 除了标题都是可选的，没有的字段用默认值
type CreateReq struct {
	Title          string                 `json:"title"`
	PersonalInfo   domain.PersonalInfo    `json:"personalInfo"`
	Experience     []domain.Experience    `json:"experience"`
	Education      []domain.Education     `json:"education"`
	Skills         []domain.SkillCategory `json:"skills"`
	Projects       []domain.Project       `json:"projects"`
	Certifications []domain.Certification `json:"certifications"`
	Languages      []domain.Language      `json:"languages"`
	Template       string                 `json:"template"`
	IsPublic       bool                   `json:"isPublic"`
}

func (req CreateReq) toDomain() domain.Resume {
	return domain.Resume{
		Title:          req.Title,
		PersonalInfo:   req.PersonalInfo,
		Experience:     req.Experience,
		Education:      req.Education,
		Skills:         req.Skills,
		Projects:       req.Projects,
		Certifications: req.Certifications,
		Languages:      req.Languages,
		Template:       req.Template,
		IsPublic:       req.IsPublic,
	}
}

// UpdateReq 出现了的字段整体替换，没出现的不动
type UpdateReq struct {
	Title          *string                 `json:"title"`
	PersonalInfo   *domain.PersonalInfo    `json:"personalInfo"`
	Experience     *[]domain.Experience    `json:"experience"`
	Education      *[]domain.Education     `json:"education"`
	Skills         *[]domain.SkillCategory `json:"skills"`
	Projects       *[]domain.Project       `json:"projects"`
	Certifications *[]domain.Certification `json:"certifications"`
	Languages      *[]domain.Language      `json:"languages"`
	Template       *string                 `json:"template"`
	IsPublic       *bool                   `json:"isPublic"`
	Version        int64                   `json:"version"`
}

func (req UpdateReq) toPatch() domain.Patch {
	return domain.Patch{
		Title:          req.Title,
		PersonalInfo:   req.PersonalInfo,
		Experience:     req.Experience,
		Education:      req.Education,
		Skills:         req.Skills,
		Projects:       req.Projects,
		Certifications: req.Certifications,
		Languages:      req.Languages,
		Template:       req.Template,
		IsPublic:       req.IsPublic,
		ExpectedUtime:  req.Version,
	}
}
