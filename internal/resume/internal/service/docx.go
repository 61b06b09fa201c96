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

package service

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
	"github.com/lukasjarosch/go-docx"
)

//go:embed templates/resume.docx
var resumeDocx []byte

// DocxWriter 用占位符填充内置的 docx 模板，不区分样式
type DocxWriter struct{}

func NewDocxWriter() *DocxWriter {
	return &DocxWriter{}
}

const entrySep = "  •  "

func (w *DocxWriter) Write(r domain.Resume) ([]byte, error) {
	doc, err := docx.OpenBytes(resumeDocx)
	if err != nil {
		return nil, fmt.Errorf("打开 docx 模板失败 %w", err)
	}
	defer doc.Close()
	err = doc.ReplaceAll(docxPlaceholders(r))
	if err != nil {
		return nil, fmt.Errorf("替换占位符失败 %w", err)
	}
	var buf bytes.Buffer
	if err = doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("生成 docx 失败 %w", err)
	}
	return buf.Bytes(), nil
}

func docxPlaceholders(r domain.Resume) docx.PlaceholderMap {
	info := r.PersonalInfo
	name := info.FullName
	if name == "" {
		name = r.Title
	}
	return docx.PlaceholderMap{
		"name": name,
		"contact": joinNonEmpty(" | ", info.Email, info.Phone, info.Address,
			info.Linkedin, info.Github, info.Website),
		"summary": info.Summary,
		"experience": strings.Join(slice.Map(r.Experience, func(idx int, e domain.Experience) string {
			return joinNonEmpty(", ", e.Position, e.Company, e.Location,
				period(e.StartDate, e.EndDate, e.Current), e.Description,
				strings.Join(e.Achievements, "; "))
		}), entrySep),
		"education": strings.Join(slice.Map(r.Education, func(idx int, e domain.Education) string {
			return joinNonEmpty(", ", e.Degree, e.Field, e.Institution, e.Location,
				period(e.StartDate, e.EndDate, false), e.GPA,
				strings.Join(e.Achievements, "; "))
		}), entrySep),
		"skills": strings.Join(slice.Map(r.Skills, func(idx int, s domain.SkillCategory) string {
			return s.Category + ": " + strings.Join(s.Items, ", ")
		}), entrySep),
		"projects": strings.Join(slice.Map(r.Projects, func(idx int, p domain.Project) string {
			return joinNonEmpty(", ", p.Name, p.Description,
				strings.Join(p.Technologies, " / "), p.Link, p.Github)
		}), entrySep),
		"certifications": strings.Join(slice.Map(r.Certifications, func(idx int, c domain.Certification) string {
			return joinNonEmpty(", ", c.Name, c.Issuer, c.Date, c.CredentialId)
		}), entrySep),
		"languages": strings.Join(slice.Map(r.Languages, func(idx int, l domain.Language) string {
			return joinNonEmpty(" - ", l.Language, l.Proficiency)
		}), entrySep),
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(slice.FindAll(parts, func(src string) bool {
		return strings.TrimSpace(src) != ""
	}), sep)
}
