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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	repomocks "github.com/ecodeclub/resume-builder/internal/ai/internal/repository/mocks"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/config"
	hdlmocks "github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/mocks"
	aimocks "github.com/ecodeclub/resume-builder/internal/ai/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = 123

func TestChatService_SendPrompt(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) *aimocks.MockService
		message   string
		resume    json.RawMessage
		wantReply domain.ChatReply
		wantErr   error
	}{
		{
			name: "大模型正常回答",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
						assert.Equal(t, domain.BizChat, req.Biz)
						assert.Equal(t, int64(uid), req.Uid)
						assert.NotEmpty(t, req.Tid)
						assert.Equal(t, []string{"Is my summary too long?"}, req.Input)
						assert.Equal(t, []string{"{\n  \"title\": \"Backend\"\n}"}, req.Context)
						return domain.LLMResponse{Answer: "Keep it to three lines.", Tokens: 30}, nil
					})
				return svc
			},
			message:   "  Is my summary too long?  ",
			resume:    json.RawMessage(`{"title":"Backend"}`),
			wantReply: domain.ChatReply{Text: "Keep it to three lines.", Timestamp: now},
		},
		{
			name: "没有简历上下文",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
						assert.Equal(t, []string{domain.NoResumeContext}, req.Context)
						return domain.LLMResponse{Answer: "Sure."}, nil
					})
				return svc
			},
			message:   "hello",
			resume:    json.RawMessage(`null`),
			wantReply: domain.ChatReply{Text: "Sure.", Timestamp: now},
		},
		{
			name: "大模型出错使用预设回复",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{}, errors.New("upstream timeout"))
				return svc
			},
			message: "hello",
			wantReply: domain.ChatReply{
				Text:       "I'm experiencing some technical difficulties. Please try again in a moment.",
				Timestamp:  now,
				IsFallback: true,
			},
		},
		{
			name: "大模型返回空白",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{Answer: "  "}, nil)
				return svc
			},
			message: "hello",
			wantReply: domain.ChatReply{
				Text:       "I'm experiencing some technical difficulties. Please try again in a moment.",
				Timestamp:  now,
				IsFallback: true,
			},
		},
		{
			name: "空消息",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				return aimocks.NewMockService(ctrl)
			},
			message: "   ",
			wantErr: ErrEmptyMessage,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewChatService(tc.mock(ctrl)).(*chatService)
			svc.now = func() time.Time { return now }
			svc.pick = func(n int) int {
				assert.Equal(t, 3, n)
				return 1
			}
			reply, err := svc.SendPrompt(context.Background(), uid, tc.message, tc.resume)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantReply, reply)
		})
	}
}

func TestChatService_FallbackIsOneOfCanned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	llmSvc := aimocks.NewMockService(ctrl)
	llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(domain.LLMResponse{}, errors.New("down")).Times(20)
	svc := NewChatService(llmSvc)
	for i := 0; i < 20; i++ {
		reply, err := svc.SendPrompt(context.Background(), uid, "hi", nil)
		require.NoError(t, err)
		assert.True(t, reply.IsFallback)
		assert.Contains(t, domain.FallbackReplies(), reply.Text)
	}
}

// 完整的简历作为上下文，默认配置下也要交给大模型，不能退化成预设回复
func TestChatService_SendPromptWithFullResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exps := make([]map[string]any, 0, 6)
	for i := 0; i < 6; i++ {
		exps = append(exps, map[string]any{
			"company":     fmt.Sprintf("Company %d", i),
			"position":    "Senior Backend Engineer",
			"location":    "Remote",
			"startDate":   "2019-01",
			"endDate":     "2021-12",
			"description": strings.Repeat("Built and operated high traffic services. ", 5),
			"achievements": []string{
				"Cut p99 latency by 40% by reworking the cache layer",
				"Led the migration of 30 services onto Kubernetes",
				"Mentored four engineers through their first on-call rotations",
			},
		})
	}
	resume, err := json.Marshal(map[string]any{
		"title":      "Backend",
		"experience": exps,
	})
	require.NoError(t, err)
	require.Greater(t, len(resume), 4000)

	repo := repomocks.NewMockConfigRepository(ctrl)
	repo.EXPECT().GetConfig(gomock.Any(), domain.BizChat).
		Return(domain.DefaultConfigs()[domain.BizChat], nil)
	platform := hdlmocks.NewMockHandler(ctrl)
	platform.EXPECT().Handle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
			assert.Contains(t, req.SystemPrompt(), "Company 5")
			return domain.LLMResponse{Answer: "Lead with the latency win."}, nil
		})

	llmSvc := llm.NewLLMService(handler.Chain(platform, config.NewHandler(repo)))
	reply, err := NewChatService(llmSvc).SendPrompt(context.Background(), uid, "help", resume)
	require.NoError(t, err)
	assert.False(t, reply.IsFallback)
	assert.Equal(t, "Lead with the latency win.", reply.Text)
}

func TestChatService_RequestSectionSuggestions(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *aimocks.MockService
		section string
		content string
		want    domain.Suggestions
		wantErr bool
	}{
		{
			name: "成功",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
						assert.Equal(t, domain.BizSuggestion, req.Biz)
						assert.Equal(t, []string{"experience"}, req.Input)
						assert.Equal(t, []string{"experience", "Led a team of 5"}, req.Context)
						return domain.LLMResponse{Answer: "1. Add metrics"}, nil
					})
				return svc
			},
			section: "experience",
			content: "Led a team of 5",
			want:    domain.Suggestions{Text: "1. Add metrics", Section: "experience", Timestamp: now},
		},
		{
			name: "大模型出错",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{}, errors.New("rate limited"))
				return svc
			},
			section: "skills",
			content: "Go",
			wantErr: true,
		},
		{
			name: "缺少内容",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				return aimocks.NewMockService(ctrl)
			},
			section: "skills",
			content: " ",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewChatService(tc.mock(ctrl)).(*chatService)
			svc.now = func() time.Time { return now }
			res, err := svc.RequestSectionSuggestions(context.Background(), uid, tc.section, tc.content)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}
