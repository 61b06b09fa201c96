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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/event"
	evtmocks "github.com/ecodeclub/resume-builder/internal/resume/internal/event/mocks"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/repository"
	repomocks "github.com/ecodeclub/resume-builder/internal/resume/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const uid = 101

func TestService_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer)
		input   domain.Resume
		want    domain.Resume
		wantErr error
	}{
		{
			name: "填充默认值",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				producer := evtmocks.NewMockResumeEventProducer(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Resume{
					Uid:            uid,
					Title:          "Backend",
					Experience:     []domain.Experience{},
					Education:      []domain.Education{},
					Skills:         []domain.SkillCategory{},
					Projects:       []domain.Project{},
					Certifications: []domain.Certification{},
					Languages:      []domain.Language{},
					Template:       "modern",
				}).Return(int64(7), nil)
				repo.EXPECT().FindById(gomock.Any(), int64(uid), int64(7)).
					Return(domain.Resume{Id: 7, Uid: uid, Title: "Backend", Template: "modern"}, nil)
				producer.EXPECT().Produce(gomock.Any(), event.ResumeEvent{
					Action: event.ActionCreate, Id: 7, Uid: uid, Utime: time.Time{}.UnixMilli(),
				}).Return(nil)
				return repo, producer
			},
			// 客户端传过来的 id 会被忽略
			input: domain.Resume{Id: 99, Uid: 1, Title: "  Backend "},
			want:  domain.Resume{Id: 7, Uid: uid, Title: "Backend", Template: "modern"},
		},
		{
			name: "标题为空",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer) {
				return repomocks.NewMockResumeRepository(ctrl), evtmocks.NewMockResumeEventProducer(ctrl)
			},
			input:   domain.Resume{Title: "   "},
			wantErr: ErrInvalidTitle,
		},
		{
			name: "消息发送失败不影响结果",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				producer := evtmocks.NewMockResumeEventProducer(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(8), nil)
				repo.EXPECT().FindById(gomock.Any(), int64(uid), int64(8)).
					Return(domain.Resume{Id: 8, Uid: uid, Title: "A"}, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
				return repo, producer
			},
			input: domain.Resume{Title: "A"},
			want:  domain.Resume{Id: 8, Uid: uid, Title: "A"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			got, err := svc.Create(context.Background(), uid, tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_Update(t *testing.T) {
	empty := "  "
	title := " New "
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer)
		patch   domain.Patch
		want    domain.Resume
		wantErr error
	}{
		{
			name: "空标题不会写入存储",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer) {
				return repomocks.NewMockResumeRepository(ctrl), evtmocks.NewMockResumeEventProducer(ctrl)
			},
			patch:   domain.Patch{Title: &empty},
			wantErr: ErrInvalidTitle,
		},
		{
			name: "更新成功",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				producer := evtmocks.NewMockResumeEventProducer(ctrl)
				repo.EXPECT().Update(gomock.Any(), int64(uid), int64(3), gomock.Any()).
					DoAndReturn(func(ctx context.Context, uid, id int64, patch domain.Patch) error {
						assert.Equal(t, "New", *patch.Title)
						return nil
					})
				repo.EXPECT().FindById(gomock.Any(), int64(uid), int64(3)).
					Return(domain.Resume{Id: 3, Uid: uid, Title: "New"}, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, producer
			},
			patch: domain.Patch{Title: &title},
			want:  domain.Resume{Id: 3, Uid: uid, Title: "New"},
		},
		{
			name: "不是自己的简历",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().Update(gomock.Any(), int64(uid), int64(3), gomock.Any()).
					Return(repository.ErrResumeNotFound)
				return repo, evtmocks.NewMockResumeEventProducer(ctrl)
			},
			patch:   domain.Patch{Title: &title},
			wantErr: ErrResumeNotFound,
		},
		{
			name: "版本冲突",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().Update(gomock.Any(), int64(uid), int64(3), gomock.Any()).
					Return(repository.ErrVersionConflict)
				return repo, evtmocks.NewMockResumeEventProducer(ctrl)
			},
			patch:   domain.Patch{Title: &title, ExpectedUtime: 1},
			wantErr: ErrVersionConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			got, err := svc.Update(context.Background(), uid, 3, tc.patch)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockResumeRepository(ctrl)
	producer := evtmocks.NewMockResumeEventProducer(ctrl)
	src := domain.Resume{
		Id:         12,
		Uid:        uid,
		Title:      "Backend",
		Experience: []domain.Experience{{Company: "A", Achievements: []string{"x"}}},
		Template:   "creative",
		Ctime:      time.UnixMilli(10),
		Utime:      time.UnixMilli(20),
	}
	repo.EXPECT().FindById(gomock.Any(), int64(uid), int64(12)).Return(src, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.Resume) (int64, error) {
			assert.Equal(t, int64(0), r.Id)
			assert.Equal(t, int64(uid), r.Uid)
			assert.Equal(t, "Backend (Copy)", r.Title)
			assert.Equal(t, src.Experience, r.Experience)
			assert.Equal(t, "creative", r.Template)
			return 13, nil
		})
	repo.EXPECT().FindById(gomock.Any(), int64(uid), int64(13)).
		Return(domain.Resume{Id: 13, Uid: uid, Title: "Backend (Copy)"}, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.ResumeEvent) error {
			assert.Equal(t, event.ActionDuplicate, evt.Action)
			assert.Equal(t, int64(12), evt.SourceId)
			assert.Equal(t, int64(13), evt.Id)
			return nil
		})
	svc := NewService(repo, producer)
	got, err := svc.Duplicate(context.Background(), uid, 12)
	assert.NoError(t, err)
	assert.Equal(t, int64(13), got.Id)
}

func TestService_DuplicateNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockResumeRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(uid), int64(12)).Return(domain.Resume{}, repository.ErrResumeNotFound)
	svc := NewService(repo, evtmocks.NewMockResumeEventProducer(ctrl))
	_, err := svc.Duplicate(context.Background(), uid, 12)
	assert.ErrorIs(t, err, ErrResumeNotFound)
}

func TestService_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer)
		wantErr error
	}{
		{
			name: "删除成功",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				producer := evtmocks.NewMockResumeEventProducer(ctrl)
				repo.EXPECT().Delete(gomock.Any(), int64(uid), int64(5)).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.ResumeEvent) error {
						assert.Equal(t, event.ActionDelete, evt.Action)
						assert.True(t, evt.Utime > 0)
						return nil
					})
				return repo, producer
			},
		},
		{
			name: "重复删除",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, event.ResumeEventProducer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().Delete(gomock.Any(), int64(uid), int64(5)).Return(repository.ErrResumeNotFound)
				return repo, evtmocks.NewMockResumeEventProducer(ctrl)
			},
			wantErr: ErrResumeNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.Delete(context.Background(), uid, 5)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
