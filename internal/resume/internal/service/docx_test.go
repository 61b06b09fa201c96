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
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocxWriter_Write(t *testing.T) {
	data, err := NewDocxWriter().Write(domain.Resume{
		Title: "Backend",
		PersonalInfo: domain.PersonalInfo{
			FullName: "Tom Zhang",
			Email:    "tom@example.com",
			Phone:    "123456",
		},
		Experience: []domain.Experience{
			{Company: "ecodeclub", Position: "Engineer", StartDate: "2021", Current: true,
				Achievements: []string{"Built the resume service"}},
		},
		Skills: []domain.SkillCategory{{Category: "Backend", Items: []string{"Go", "MySQL"}}},
	})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var content string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		content = string(b)
	}
	assert.Contains(t, content, "Tom Zhang")
	assert.Contains(t, content, "tom@example.com | 123456")
	assert.Contains(t, content, "Engineer, ecodeclub, 2021 - Present, Built the resume service")
	assert.Contains(t, content, "Backend: Go, MySQL")
	// 所有占位符都被替换了
	assert.NotContains(t, content, "{name}")
	assert.NotContains(t, content, "{projects}")
}

func TestDocxPlaceholders(t *testing.T) {
	m := docxPlaceholders(domain.Resume{Title: "Untitled"})
	assert.Equal(t, "Untitled", m["name"])
	assert.Equal(t, "", m["contact"])
	assert.Equal(t, "", m["experience"])
	assert.Len(t, m, 9)
}
