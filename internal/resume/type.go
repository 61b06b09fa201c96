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

package resume

import (
	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/event"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/service"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/web"
)

type Resume = domain.Resume
type PersonalInfo = domain.PersonalInfo
type Experience = domain.Experience
type Education = domain.Education
type SkillCategory = domain.SkillCategory
type Project = domain.Project
type Certification = domain.Certification
type Language = domain.Language
type Patch = domain.Patch
type Template = domain.Template

type Service = service.Service
type ExportService = service.ExportService
type Handler = web.Handler

type ResumeEvent = event.ResumeEvent

const ResumeTopic = event.ResumeTopic

var (
	ErrResumeNotFound  = service.ErrResumeNotFound
	ErrInvalidTitle    = service.ErrInvalidTitle
	ErrVersionConflict = service.ErrVersionConflict
)

// NewDraft 空白简历，向导从这里开始
func NewDraft() Resume {
	return domain.NewDraft()
}
