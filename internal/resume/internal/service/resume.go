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
	"strings"
	"time"

	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/event"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrResumeNotFound  = repository.ErrResumeNotFound
	ErrVersionConflict = repository.ErrVersionConflict
	ErrInvalidTitle    = errors.New("简历标题不能为空")
)

// Service 所有的方法都按照 uid 限定范围，别人的简历一律当作不存在
//
//go:generate mockgen -source=./resume.go -destination=../../mocks/resume.mock.go -package=resumemocks -typed=true Service
type Service interface {
	// List 按照更新时间倒序
	List(ctx context.Context, uid int64) ([]domain.Resume, error)
	Get(ctx context.Context, uid, id int64) (domain.Resume, error)
	Create(ctx context.Context, uid int64, r domain.Resume) (domain.Resume, error)
	Update(ctx context.Context, uid, id int64, patch domain.Patch) (domain.Resume, error)
	Delete(ctx context.Context, uid, id int64) error
	Duplicate(ctx context.Context, uid, id int64) (domain.Resume, error)
}

type service struct {
	repo     repository.ResumeRepository
	producer event.ResumeEventProducer
	logger   *elog.Component
}

func NewService(repo repository.ResumeRepository, producer event.ResumeEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Resume, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Get(ctx context.Context, uid, id int64) (domain.Resume, error) {
	return s.repo.FindById(ctx, uid, id)
}

func (s *service) Create(ctx context.Context, uid int64, r domain.Resume) (domain.Resume, error) {
	if !domain.ValidTitle(r.Title) {
		return domain.Resume{}, ErrInvalidTitle
	}
	r.Id = 0
	r.Uid = uid
	r.Title = strings.TrimSpace(r.Title)
	r.FillDefaults()
	id, err := s.repo.Create(ctx, r)
	if err != nil {
		return domain.Resume{}, err
	}
	res, err := s.repo.FindById(ctx, uid, id)
	if err != nil {
		return domain.Resume{}, err
	}
	s.produce(ctx, event.ActionCreate, res, 0)
	return res, nil
}

func (s *service) Update(ctx context.Context, uid, id int64, patch domain.Patch) (domain.Resume, error) {
	if patch.Title != nil {
		if !domain.ValidTitle(*patch.Title) {
			return domain.Resume{}, ErrInvalidTitle
		}
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	err := s.repo.Update(ctx, uid, id, patch)
	if err != nil {
		return domain.Resume{}, err
	}
	res, err := s.repo.FindById(ctx, uid, id)
	if err != nil {
		return domain.Resume{}, err
	}
	s.produce(ctx, event.ActionUpdate, res, 0)
	return res, nil
}

func (s *service) Delete(ctx context.Context, uid, id int64) error {
	err := s.repo.Delete(ctx, uid, id)
	if err != nil {
		return err
	}
	s.produce(ctx, event.ActionDelete, domain.Resume{Id: id, Uid: uid, Utime: time.Now()}, 0)
	return nil
}

func (s *service) Duplicate(ctx context.Context, uid, id int64) (domain.Resume, error) {
	src, err := s.repo.FindById(ctx, uid, id)
	if err != nil {
		return domain.Resume{}, err
	}
	newId, err := s.repo.Create(ctx, src.Duplicate(uid))
	if err != nil {
		return domain.Resume{}, err
	}
	res, err := s.repo.FindById(ctx, uid, newId)
	if err != nil {
		return domain.Resume{}, err
	}
	s.produce(ctx, event.ActionDuplicate, res, id)
	return res, nil
}

// produce 发送失败只记录日志，不影响主流程
func (s *service) produce(ctx context.Context, action string, r domain.Resume, sourceId int64) {
	err := s.producer.Produce(ctx, event.ResumeEvent{
		Action:   action,
		Id:       r.Id,
		Uid:      r.Uid,
		SourceId: sourceId,
		Utime:    r.Utime.UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送简历变更消息失败",
			elog.FieldErr(err),
			elog.String("action", action),
			elog.Int64("id", r.Id),
			elog.Int64("uid", r.Uid))
	}
}
