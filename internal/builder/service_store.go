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
	"context"

	"github.com/ecodeclub/resume-builder/internal/resume"
)

// ServiceStore 进程内直接调用 resume.Service，uid 固定
type ServiceStore struct {
	svc resume.Service
	uid int64
}

func NewServiceStore(svc resume.Service, uid int64) *ServiceStore {
	return &ServiceStore{svc: svc, uid: uid}
}

func (s *ServiceStore) Get(ctx context.Context, id int64) (resume.Resume, error) {
	return s.svc.Get(ctx, s.uid, id)
}

func (s *ServiceStore) Create(ctx context.Context, r resume.Resume) (resume.Resume, error) {
	return s.svc.Create(ctx, s.uid, r)
}

// Update 向导每次都提交完整的草稿，所以 patch 里的字段全部带上
func (s *ServiceStore) Update(ctx context.Context, id int64, r resume.Resume) (resume.Resume, error) {
	return s.svc.Update(ctx, s.uid, id, fullPatch(r))
}

func fullPatch(r resume.Resume) resume.Patch {
	return resume.Patch{
		Title:          &r.Title,
		PersonalInfo:   &r.PersonalInfo,
		Experience:     &r.Experience,
		Education:      &r.Education,
		Skills:         &r.Skills,
		Projects:       &r.Projects,
		Certifications: &r.Certifications,
		Languages:      &r.Languages,
		Template:       &r.Template,
		IsPublic:       &r.IsPublic,
	}
}
