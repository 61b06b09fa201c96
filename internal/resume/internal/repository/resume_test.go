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
	"testing"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/repository/dao"
	daomocks "github.com/ecodeclub/resume-builder/internal/resume/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResumeRepository_Update(t *testing.T) {
	title := "Go Engineer"
	skills := []domain.SkillCategory{{Category: "Backend", Items: []string{"Go", "MySQL"}}}
	testCases := []struct {
		name     string
		patch    domain.Patch
		wantCols []string
		wantErr  error
		daoErr   error
		check    func(t *testing.T, r dao.Resume)
	}{
		{
			name:     "只更新标题",
			patch:    domain.Patch{Title: &title},
			wantCols: []string{"title"},
			check: func(t *testing.T, r dao.Resume) {
				assert.Equal(t, "Go Engineer", r.Title)
			},
		},
		{
			name:     "标题和技能，带版本号",
			patch:    domain.Patch{Title: &title, Skills: &skills, ExpectedUtime: 123},
			wantCols: []string{"title", "skills"},
			check: func(t *testing.T, r dao.Resume) {
				assert.Equal(t, sqlx.JsonColumn[[]domain.SkillCategory]{Valid: true, Val: skills}, r.Skills)
			},
		},
		{
			name:     "不存在",
			patch:    domain.Patch{Title: &title},
			wantCols: []string{"title"},
			daoErr:   dao.ErrRecordNotFound,
			wantErr:  ErrResumeNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := daomocks.NewMockResumeDAO(ctrl)
			d.EXPECT().Update(gomock.Any(), gomock.Any(), tc.wantCols, tc.patch.ExpectedUtime).
				DoAndReturn(func(ctx context.Context, r dao.Resume, cols []string, expectedUtime int64) error {
					assert.Equal(t, int64(2), r.Id)
					assert.Equal(t, int64(1), r.Uid)
					if tc.check != nil {
						tc.check(t, r)
					}
					return tc.daoErr
				})
			repo := NewResumeRepository(d)
			err := repo.Update(context.Background(), 1, 2, tc.patch)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestResumeRepository_FindById(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockResumeDAO(ctrl)
	d.EXPECT().FindById(gomock.Any(), int64(1), int64(2)).Return(dao.Resume{
		Id:    2,
		Uid:   1,
		Title: "Mine",
		Experience: sqlx.JsonColumn[[]domain.Experience]{
			Valid: true,
			Val:   []domain.Experience{{Company: "A", Achievements: []string{"x"}}},
		},
		Template: "classic",
		Ctime:    1000,
		Utime:    2000,
	}, nil)
	repo := NewResumeRepository(d)
	r, err := repo.FindById(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Resume{
		Id:             2,
		Uid:            1,
		Title:          "Mine",
		Experience:     []domain.Experience{{Company: "A", Achievements: []string{"x"}}},
		Education:      []domain.Education{},
		Skills:         []domain.SkillCategory{},
		Projects:       []domain.Project{},
		Certifications: []domain.Certification{},
		Languages:      []domain.Language{},
		Template:       "classic",
		Ctime:          time.UnixMilli(1000),
		Utime:          time.UnixMilli(2000),
	}, r)
}
