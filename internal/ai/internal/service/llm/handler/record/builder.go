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

package record

import (
	"context"
	"time"

	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/repository"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler"
	"github.com/gotomicro/ego/core/elog"
)

// saveTimeout 记录和大模型调用用的不是同一个超时
const saveTimeout = 3 * time.Second

type HandlerBuilder struct {
	repo   repository.RecordRepository
	logger *elog.Component
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler(repo repository.RecordRepository) *HandlerBuilder {
	return &HandlerBuilder{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "record"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		r := domain.LLMRecord{
			Tid:            req.Tid,
			Biz:            req.Biz,
			Uid:            req.Uid,
			Input:          req.Input,
			Status:         domain.RecordStatusProcessing,
			PromptTemplate: req.Config.PromptTemplate,
		}
		defer func() {
			// 调用超时或者被取消的时候，失败记录也要落库
			sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
			defer cancel()
			_, err1 := h.repo.Save(sctx, r)
			if err1 != nil {
				h.logger.Error("保存 LLM 访问记录失败", elog.String("tid", req.Tid), elog.FieldErr(err1))
			}
		}()
		resp, err := next.Handle(ctx, req)
		if err != nil {
			r.Status = domain.RecordStatusFailed
			return domain.LLMResponse{}, err
		}
		r.Tokens = resp.Tokens
		r.Amount = resp.Amount
		r.Status = domain.RecordStatusSuccess
		r.Answer = resp.Answer
		return resp, nil
	})
}
