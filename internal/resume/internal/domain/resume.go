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

package domain

import (
	"slices"
	"strings"
	"time"
)

const (
	DefaultTitle    = "My Resume"
	DefaultTemplate = "modern"
	copySuffix      = " (Copy)"
)

// Resume 一份简历就是一个文档，列表字段的顺序就是展示顺序
type Resume struct {
	Id             int64           `json:"id"`
	Uid            int64           `json:"-"`
	Title          string          `json:"title"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []SkillCategory `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Template       string          `json:"template"`
	IsPublic       bool            `json:"isPublic"`
	Ctime          time.Time       `json:"createdAt"`
	Utime          time.Time       `json:"updatedAt"`
}

// NewDraft 向导一开始用的空白简历
func NewDraft() Resume {
	r := Resume{Title: DefaultTitle}
	r.FillDefaults()
	return r
}

// FillDefaults 缺省的列表字段一律是空切片，而不是 nil
func (r *Resume) FillDefaults() {
	if r.Template == "" {
		r.Template = DefaultTemplate
	}
	r.Experience = nonNil(r.Experience)
	r.Education = nonNil(r.Education)
	r.Skills = nonNil(r.Skills)
	r.Projects = nonNil(r.Projects)
	r.Certifications = nonNil(r.Certifications)
	r.Languages = nonNil(r.Languages)
}

// ValidTitle 去掉首尾空白之后不能为空
func ValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

// Clone 深拷贝，包括嵌套的 achievements 之类的列表
func (r Resume) Clone() Resume {
	res := r
	res.Experience = cloneEach(r.Experience, Experience.Clone)
	res.Education = cloneEach(r.Education, Education.Clone)
	res.Skills = cloneEach(r.Skills, SkillCategory.Clone)
	res.Projects = cloneEach(r.Projects, Project.Clone)
	res.Certifications = slices.Clone(r.Certifications)
	res.Languages = slices.Clone(r.Languages)
	return res
}

// Duplicate 生成副本，id 和时间戳由存储重新分配，归属于 uid
func (r Resume) Duplicate(uid int64) Resume {
	res := r.Clone()
	res.Id = 0
	res.Uid = uid
	res.Title = r.Title + copySuffix
	res.Ctime = time.Time{}
	res.Utime = time.Time{}
	return res
}

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`
}

type Experience struct {
	Company   string `json:"company"`
	Position  string `json:"position"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	// Current 为 true 的时候展示上忽略 EndDate
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

func (e Experience) Clone() Experience {
	e.Achievements = slices.Clone(e.Achievements)
	return e
}

type Education struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	GPA          string   `json:"gpa"`
	Achievements []string `json:"achievements"`
}

func (e Education) Clone() Education {
	e.Achievements = slices.Clone(e.Achievements)
	return e
}

type SkillCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

func (s SkillCategory) Clone() SkillCategory {
	s.Items = slices.Clone(s.Items)
	return s
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	// Link 演示地址
	Link      string `json:"link"`
	Github    string `json:"github"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (p Project) Clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	return p
}

type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialId string `json:"credentialId"`
	Link         string `json:"link"`
}

type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Patch 更新用，nil 表示不修改，非 nil 则整体替换对应字段
type Patch struct {
	Title          *string
	PersonalInfo   *PersonalInfo
	Experience     *[]Experience
	Education      *[]Education
	Skills         *[]SkillCategory
	Projects       *[]Project
	Certifications *[]Certification
	Languages      *[]Language
	Template       *string
	IsPublic       *bool
	// ExpectedUtime 不为零的时候做乐观锁校验
	ExpectedUtime int64
}

// Apply 把 patch 应用到 r 上，返回新的简历，r 本身不变
func (p Patch) Apply(r Resume) Resume {
	res := r.Clone()
	if p.Title != nil {
		res.Title = *p.Title
	}
	if p.PersonalInfo != nil {
		res.PersonalInfo = *p.PersonalInfo
	}
	if p.Experience != nil {
		res.Experience = cloneEach(*p.Experience, Experience.Clone)
	}
	if p.Education != nil {
		res.Education = cloneEach(*p.Education, Education.Clone)
	}
	if p.Skills != nil {
		res.Skills = cloneEach(*p.Skills, SkillCategory.Clone)
	}
	if p.Projects != nil {
		res.Projects = cloneEach(*p.Projects, Project.Clone)
	}
	if p.Certifications != nil {
		res.Certifications = slices.Clone(*p.Certifications)
	}
	if p.Languages != nil {
		res.Languages = slices.Clone(*p.Languages)
	}
	if p.Template != nil {
		res.Template = *p.Template
	}
	if p.IsPublic != nil {
		res.IsPublic = *p.IsPublic
	}
	res.FillDefaults()
	return res
}

func nonNil[T any](src []T) []T {
	if src == nil {
		return []T{}
	}
	return src
}

func cloneEach[T any](src []T, fn func(T) T) []T {
	if src == nil {
		return nil
	}
	res := make([]T, len(src))
	for i, s := range src {
		res[i] = fn(s)
	}
	return res
}
