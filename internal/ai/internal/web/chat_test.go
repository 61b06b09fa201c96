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

package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service"
	aimocks "github.com/ecodeclub/resume-builder/internal/ai/mocks"
	"github.com/ecodeclub/resume-builder/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = 456

func newServer(t *testing.T, svc service.ChatService) *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	NewChatHandler(svc).PrivateRoutes(server.Engine)
	return server
}

func TestChatHandler_Chat(t *testing.T) {
	now := time.UnixMilli(1700000000000).UTC()
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.ChatService
		body     string
		wantCode int
		wantResp test.Result[ChatResp]
	}{
		{
			name: "正常回答",
			mock: func(ctrl *gomock.Controller) service.ChatService {
				svc := aimocks.NewMockChatService(ctrl)
				svc.EXPECT().SendPrompt(gomock.Any(), int64(uid), "help", gomock.Any()).
					DoAndReturn(func(ctx context.Context, uid int64, message string, resume json.RawMessage) (domain.ChatReply, error) {
						assert.JSONEq(t, `{"title":"CV"}`, string(resume))
						return domain.ChatReply{Text: "Sure", Timestamp: now}, nil
					})
				return svc
			},
			body:     `{"message":"help","resumeData":{"title":"CV"}}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[ChatResp]{Data: ChatResp{Message: "Sure", Timestamp: now}},
		},
		{
			name: "预设回复",
			mock: func(ctrl *gomock.Controller) service.ChatService {
				svc := aimocks.NewMockChatService(ctrl)
				svc.EXPECT().SendPrompt(gomock.Any(), int64(uid), "help", gomock.Any()).
					Return(domain.ChatReply{Text: domain.FallbackReply(0), Timestamp: now, IsFallback: true}, nil)
				return svc
			},
			body:     `{"message":"help"}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[ChatResp]{Data: ChatResp{Message: domain.FallbackReply(0), Timestamp: now, IsFallback: true}},
		},
		{
			name: "空消息",
			mock: func(ctrl *gomock.Controller) service.ChatService {
				svc := aimocks.NewMockChatService(ctrl)
				svc.EXPECT().SendPrompt(gomock.Any(), int64(uid), "", gomock.Any()).
					Return(domain.ChatReply{}, service.ErrEmptyMessage)
				return svc
			},
			body:     `{}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[ChatResp]{Code: 420001, Msg: "Message is required"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[test.Result[ChatResp]]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestChatHandler_Suggestions(t *testing.T) {
	now := time.UnixMilli(1700000000000).UTC()
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.ChatService
		req      SuggestionReq
		wantCode int
		wantResp test.Result[SuggestionResp]
	}{
		{
			name: "成功",
			mock: func(ctrl *gomock.Controller) service.ChatService {
				svc := aimocks.NewMockChatService(ctrl)
				svc.EXPECT().RequestSectionSuggestions(gomock.Any(), int64(uid), "skills", "Go").
					Return(domain.Suggestions{Text: "Add Kafka", Section: "skills", Timestamp: now}, nil)
				return svc
			},
			req:      SuggestionReq{Section: "skills", Content: "Go"},
			wantCode: http.StatusOK,
			wantResp: test.Result[SuggestionResp]{Data: SuggestionResp{Suggestions: "Add Kafka", Section: "skills", Timestamp: now}},
		},
		{
			name: "缺少参数",
			mock: func(ctrl *gomock.Controller) service.ChatService {
				svc := aimocks.NewMockChatService(ctrl)
				svc.EXPECT().RequestSectionSuggestions(gomock.Any(), int64(uid), "skills", "").
					Return(domain.Suggestions{}, service.ErrEmptySection)
				return svc
			},
			req:      SuggestionReq{Section: "skills"},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[SuggestionResp]{Code: 420002, Msg: "Section and content are required"},
		},
		{
			name: "大模型出错",
			mock: func(ctrl *gomock.Controller) service.ChatService {
				svc := aimocks.NewMockChatService(ctrl)
				svc.EXPECT().RequestSectionSuggestions(gomock.Any(), int64(uid), "skills", "Go").
					Return(domain.Suggestions{}, errors.New("upstream"))
				return svc
			},
			req:      SuggestionReq{Section: "skills", Content: "Go"},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[SuggestionResp]{Code: 520002, Msg: "Failed to generate suggestions"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodPost, "/chat/suggestions", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[test.Result[SuggestionResp]]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
