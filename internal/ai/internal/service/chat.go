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
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrEmptyMessage = errors.New("消息不能为空")
	ErrEmptySection = errors.New("小节名字和内容都不能为空")
)

//go:generate mockgen -source=./chat.go -destination=../../mocks/chat.mock.go -package=aimocks -typed=true ChatService
type ChatService interface {
	// SendPrompt 大模型出错的时候不会返回 error，而是返回预设的回复
	SendPrompt(ctx context.Context, uid int64, message string, resume json.RawMessage) (domain.ChatReply, error)
	RequestSectionSuggestions(ctx context.Context, uid int64, section, content string) (domain.Suggestions, error)
}

type chatService struct {
	llmSvc llm.Service
	// 挑选预设回复，测试的时候可以替换掉
	pick   func(n int) int
	now    func() time.Time
	logger *elog.Component
}

func NewChatService(llmSvc llm.Service) ChatService {
	return &chatService{
		llmSvc: llmSvc,
		pick:   rand.IntN,
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

func (s *chatService) SendPrompt(ctx context.Context, uid int64, message string, resume json.RawMessage) (domain.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.ChatReply{}, ErrEmptyMessage
	}
	resp, err := s.llmSvc.Invoke(ctx, domain.LLMRequest{
		Biz:     domain.BizChat,
		Uid:     uid,
		Tid:     shortuuid.New(),
		Input:   []string{message},
		Context: []string{s.resumeContext(resume)},
	})
	if err != nil || strings.TrimSpace(resp.Answer) == "" {
		s.logger.Warn("大模型不可用，使用预设回复", elog.Int64("uid", uid), elog.FieldErr(err))
		return domain.ChatReply{
			Text:       domain.FallbackReply(s.pick(len(domain.FallbackReplies()))),
			Timestamp:  s.now(),
			IsFallback: true,
		}, nil
	}
	return domain.ChatReply{
		Text:      resp.Answer,
		Timestamp: s.now(),
	}, nil
}

func (s *chatService) RequestSectionSuggestions(ctx context.Context, uid int64, section, content string) (domain.Suggestions, error) {
	section = strings.TrimSpace(section)
	if section == "" || strings.TrimSpace(content) == "" {
		return domain.Suggestions{}, ErrEmptySection
	}
	resp, err := s.llmSvc.Invoke(ctx, domain.LLMRequest{
		Biz:     domain.BizSuggestion,
		Uid:     uid,
		Tid:     shortuuid.New(),
		Input:   []string{section},
		Context: []string{section, content},
	})
	if err != nil {
		return domain.Suggestions{}, fmt.Errorf("生成 %s 小节的建议失败 %w", section, err)
	}
	return domain.Suggestions{
		Text:      resp.Answer,
		Section:   section,
		Timestamp: s.now(),
	}, nil
}

// resumeContext 简历格式化成缩进的 JSON，前端没传的时候给一句说明
func (s *chatService) resumeContext(resume json.RawMessage) string {
	trimmed := strings.TrimSpace(string(resume))
	if trimmed == "" || trimmed == "null" {
		return domain.NoResumeContext
	}
	var v any
	if err := json.Unmarshal(resume, &v); err != nil {
		return domain.NoResumeContext
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return domain.NoResumeContext
	}
	return string(data)
}
