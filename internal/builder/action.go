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

package builder

import (
	"slices"

	"github.com/ecodeclub/resume-builder/internal/resume"
)

// Action 向导上的一次操作。所有操作都不会修改传入的 State，
// 被修改的顶层字段一定是新的切片，没动过的条目原样保留
type Action interface {
	// apply 返回新的状态，以及草稿有没有被修改
	apply(st State) (State, bool)
}

// Reduce 纯函数，草稿有修改的时候 Dirty 置为 true
func Reduce(st State, a Action) State {
	res, _ := reduce(st, a)
	return res
}

func reduce(st State, a Action) (State, bool) {
	if a == nil {
		return st, false
	}
	res, edited := a.apply(st)
	if edited {
		res.Dirty = true
	}
	return res, edited
}

type Next struct{}

func (Next) apply(st State) (State, bool) {
	if st.Step < StepTemplateSelection {
		st.Step++
	}
	return st, false
}

type Back struct{}

func (Back) apply(st State) (State, bool) {
	if st.Step > StepPersonalInfo {
		st.Step--
	}
	return st, false
}

// JumpTo 点击步骤条直接跳转，不合法的步骤忽略
type JumpTo struct {
	Step Step
}

func (a JumpTo) apply(st State) (State, bool) {
	if a.Step.Valid() {
		st.Step = a.Step
	}
	return st, false
}

type SetTitle struct {
	Title string
}

func (a SetTitle) apply(st State) (State, bool) {
	st.Draft.Title = a.Title
	return st, true
}

type SetPersonalInfo struct {
	Info resume.PersonalInfo
}

func (a SetPersonalInfo) apply(st State) (State, bool) {
	st.Draft.PersonalInfo = a.Info
	return st, true
}

type SetTemplate struct {
	Template string
}

func (a SetTemplate) apply(st State) (State, bool) {
	st.Draft.Template = a.Template
	return st, true
}

type SetPublic struct {
	Public bool
}

func (a SetPublic) apply(st State) (State, bool) {
	st.Draft.IsPublic = a.Public
	return st, true
}

// 整个字段替换，对应每个小节组件的回调

type SetExperience struct {
	Items []resume.Experience
}

func (a SetExperience) apply(st State) (State, bool) {
	st.Draft.Experience = cloneAll(a.Items, resume.Experience.Clone)
	return st, true
}

type SetEducation struct {
	Items []resume.Education
}

func (a SetEducation) apply(st State) (State, bool) {
	st.Draft.Education = cloneAll(a.Items, resume.Education.Clone)
	return st, true
}

type SetSkills struct {
	Items []resume.SkillCategory
}

func (a SetSkills) apply(st State) (State, bool) {
	st.Draft.Skills = cloneAll(a.Items, resume.SkillCategory.Clone)
	return st, true
}

type SetProjects struct {
	Items []resume.Project
}

func (a SetProjects) apply(st State) (State, bool) {
	st.Draft.Projects = cloneAll(a.Items, resume.Project.Clone)
	return st, true
}

type SetCertifications struct {
	Items []resume.Certification
}

func (a SetCertifications) apply(st State) (State, bool) {
	st.Draft.Certifications = nonNil(slices.Clone(a.Items))
	return st, true
}

type SetLanguages struct {
	Items []resume.Language
}

func (a SetLanguages) apply(st State) (State, bool) {
	st.Draft.Languages = nonNil(slices.Clone(a.Items))
	return st, true
}

// 追加空白条目

type AddExperience struct{}

func (AddExperience) apply(st State) (State, bool) {
	st.Draft.Experience = appendOne(st.Draft.Experience, resume.Experience{Achievements: []string{}})
	return st, true
}

type AddEducation struct{}

func (AddEducation) apply(st State) (State, bool) {
	st.Draft.Education = appendOne(st.Draft.Education, resume.Education{Achievements: []string{}})
	return st, true
}

type AddSkillCategory struct{}

func (AddSkillCategory) apply(st State) (State, bool) {
	st.Draft.Skills = appendOne(st.Draft.Skills, resume.SkillCategory{Items: []string{}})
	return st, true
}

type AddProject struct{}

func (AddProject) apply(st State) (State, bool) {
	st.Draft.Projects = appendOne(st.Draft.Projects, resume.Project{Technologies: []string{}})
	return st, true
}

// 按下标删除，越界忽略

type RemoveExperience struct {
	Index int
}

func (a RemoveExperience) apply(st State) (State, bool) {
	res, ok := removeAt(st.Draft.Experience, a.Index)
	st.Draft.Experience = res
	return st, ok
}

type RemoveEducation struct {
	Index int
}

func (a RemoveEducation) apply(st State) (State, bool) {
	res, ok := removeAt(st.Draft.Education, a.Index)
	st.Draft.Education = res
	return st, ok
}

type RemoveSkillCategory struct {
	Index int
}

func (a RemoveSkillCategory) apply(st State) (State, bool) {
	res, ok := removeAt(st.Draft.Skills, a.Index)
	st.Draft.Skills = res
	return st, ok
}

type RemoveProject struct {
	Index int
}

func (a RemoveProject) apply(st State) (State, bool) {
	res, ok := removeAt(st.Draft.Projects, a.Index)
	st.Draft.Projects = res
	return st, ok
}

// 替换某一个条目

type UpdateExperience struct {
	Index int
	Entry resume.Experience
}

func (a UpdateExperience) apply(st State) (State, bool) {
	res, ok := replaceAt(st.Draft.Experience, a.Index, a.Entry.Clone())
	st.Draft.Experience = res
	return st, ok
}

type UpdateEducation struct {
	Index int
	Entry resume.Education
}

func (a UpdateEducation) apply(st State) (State, bool) {
	res, ok := replaceAt(st.Draft.Education, a.Index, a.Entry.Clone())
	st.Draft.Education = res
	return st, ok
}

type UpdateSkillCategory struct {
	Index int
	Entry resume.SkillCategory
}

func (a UpdateSkillCategory) apply(st State) (State, bool) {
	res, ok := replaceAt(st.Draft.Skills, a.Index, a.Entry.Clone())
	st.Draft.Skills = res
	return st, ok
}

type UpdateProject struct {
	Index int
	Entry resume.Project
}

func (a UpdateProject) apply(st State) (State, bool) {
	res, ok := replaceAt(st.Draft.Projects, a.Index, a.Entry.Clone())
	st.Draft.Projects = res
	return st, ok
}

// Section 有 achievements 的小节
type Section string

const (
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
)

// AddAchievement 给第 Entry 个条目追加一条成就，其它条目不受影响
type AddAchievement struct {
	Section Section
	Entry   int
	Text    string
}

func (a AddAchievement) apply(st State) (State, bool) {
	return editAchievements(st, a.Section, a.Entry, func(src []string) ([]string, bool) {
		return appendOne(src, a.Text), true
	})
}

type SetAchievement struct {
	Section Section
	Entry   int
	Index   int
	Text    string
}

func (a SetAchievement) apply(st State) (State, bool) {
	return editAchievements(st, a.Section, a.Entry, func(src []string) ([]string, bool) {
		return replaceAt(src, a.Index, a.Text)
	})
}

type RemoveAchievement struct {
	Section Section
	Entry   int
	Index   int
}

func (a RemoveAchievement) apply(st State) (State, bool) {
	return editAchievements(st, a.Section, a.Entry, func(src []string) ([]string, bool) {
		return removeAt(src, a.Index)
	})
}

type SetSkillItems struct {
	Index int
	Items []string
}

func (a SetSkillItems) apply(st State) (State, bool) {
	if a.Index < 0 || a.Index >= len(st.Draft.Skills) {
		return st, false
	}
	entry := st.Draft.Skills[a.Index]
	entry.Items = nonNil(slices.Clone(a.Items))
	st.Draft.Skills, _ = replaceAt(st.Draft.Skills, a.Index, entry)
	return st, true
}

type SetTechnologies struct {
	Index int
	Items []string
}

func (a SetTechnologies) apply(st State) (State, bool) {
	if a.Index < 0 || a.Index >= len(st.Draft.Projects) {
		return st, false
	}
	entry := st.Draft.Projects[a.Index]
	entry.Technologies = nonNil(slices.Clone(a.Items))
	st.Draft.Projects, _ = replaceAt(st.Draft.Projects, a.Index, entry)
	return st, true
}

func editAchievements(st State, section Section, idx int,
	fn func(src []string) ([]string, bool)) (State, bool) {
	switch section {
	case SectionExperience:
		if idx < 0 || idx >= len(st.Draft.Experience) {
			return st, false
		}
		entry := st.Draft.Experience[idx]
		achs, ok := fn(entry.Achievements)
		if !ok {
			return st, false
		}
		entry.Achievements = achs
		st.Draft.Experience, _ = replaceAt(st.Draft.Experience, idx, entry)
		return st, true
	case SectionEducation:
		if idx < 0 || idx >= len(st.Draft.Education) {
			return st, false
		}
		entry := st.Draft.Education[idx]
		achs, ok := fn(entry.Achievements)
		if !ok {
			return st, false
		}
		entry.Achievements = achs
		st.Draft.Education, _ = replaceAt(st.Draft.Education, idx, entry)
		return st, true
	}
	return st, false
}

// 下面几个函数都返回新的切片，不修改 src

func appendOne[T any](src []T, v T) []T {
	res := make([]T, 0, len(src)+1)
	res = append(res, src...)
	return append(res, v)
}

func removeAt[T any](src []T, idx int) ([]T, bool) {
	if idx < 0 || idx >= len(src) {
		return src, false
	}
	res := make([]T, 0, len(src)-1)
	res = append(res, src[:idx]...)
	return append(res, src[idx+1:]...), true
}

func replaceAt[T any](src []T, idx int, v T) ([]T, bool) {
	if idx < 0 || idx >= len(src) {
		return src, false
	}
	res := slices.Clone(src)
	res[idx] = v
	return res, true
}

func cloneAll[T any](src []T, fn func(T) T) []T {
	res := make([]T, len(src))
	for i, s := range src {
		res[i] = fn(s)
	}
	return res
}

func nonNil[T any](src []T) []T {
	if src == nil {
		return []T{}
	}
	return src
}
