//go:build e2e

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

package integration

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/integration/startup"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/web"
	"github.com/ecodeclub/resume-builder/internal/test"
	testioc "github.com/ecodeclub/resume-builder/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 2345

type ChatSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	cache  ecache.Cache
	// 每个测试自己决定大模型怎么回答
	platform handler.HandleFunc
}

func TestChat(t *testing.T) {
	suite.Run(t, new(ChatSuite))
}

func (s *ChatSuite) SetupSuite() {
	module, err := startup.InitModule(handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		return s.platform(ctx, req)
	}))
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.cache = testioc.InitCache()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.clearConfigCache()
}

func (s *ChatSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `llm_records`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `ai_biz_configs`").Error)
	s.clearConfigCache()
}

// clearConfigCache 默认配置也会进缓存，每个测试都要从数据库重新加载
func (s *ChatSuite) clearConfigCache() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := s.cache.Delete(ctx, "ai:config:"+domain.BizChat, "ai:config:"+domain.BizSuggestion)
	require.NoError(s.T(), err)
}

func (s *ChatSuite) TestChat() {
	testCases := []struct {
		name     string
		platform handler.HandleFunc
		req      web.ChatReq
		wantCode int
		after    func(t *testing.T, resp web.ChatResp)
	}{
		{
			name: "默认配置",
			platform: func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				assert.Equal(s.T(), "llama3-8b-8192", req.Config.Model)
				assert.Equal(s.T(), int64(500), req.Config.MaxTokens)
				assert.Contains(s.T(), req.SystemPrompt(), domain.NoResumeContext)
				return domain.LLMResponse{Answer: "Use action verbs.", Tokens: 42}, nil
			},
			req:      web.ChatReq{Message: "Tips?"},
			wantCode: http.StatusOK,
			after: func(t *testing.T, resp web.ChatResp) {
				assert.Equal(t, "Use action verbs.", resp.Message)
				assert.False(t, resp.IsFallback)
				var r dao.LLMRecord
				require.NoError(t, s.db.Where("uid = ?", uid).First(&r).Error)
				assert.Equal(t, domain.RecordStatusSuccess.ToUint8(), r.Status)
				assert.Equal(t, int64(42), r.Tokens)
				assert.Equal(t, domain.BizChat, r.Biz)
				assert.Equal(t, []string{"Tips?"}, r.Input.Val)
				assert.Equal(t, "Use action verbs.", r.Answer.String)
			},
		},
		{
			name: "大模型出错",
			platform: func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{}, errors.New("503 from upstream")
			},
			req:      web.ChatReq{Message: "Tips?"},
			wantCode: http.StatusOK,
			after: func(t *testing.T, resp web.ChatResp) {
				assert.True(t, resp.IsFallback)
				assert.Contains(t, domain.FallbackReplies(), resp.Message)
				var r dao.LLMRecord
				require.NoError(t, s.db.Where("uid = ?", uid).First(&r).Error)
				assert.Equal(t, domain.RecordStatusFailed.ToUint8(), r.Status)
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			s.platform = tc.platform
			req, err := http.NewRequest(http.MethodPost, "/chat", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[test.Result[web.ChatResp]]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan().Data)
		})
	}
}

func (s *ChatSuite) TestSuggestionsWithStoredConfig() {
	err := s.db.Create(&dao.BizConfig{
		Biz:            domain.BizSuggestion,
		Model:          "llama3-70b-8192",
		Temperature:    0.3,
		MaxTokens:      300,
		SystemPrompt:   "Review %[1]s: %[2]s",
		PromptTemplate: "Review my %s",
		Ctime:          1,
		Utime:          1,
	}).Error
	require.NoError(s.T(), err)
	s.platform = func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		assert.Equal(s.T(), "llama3-70b-8192", req.Config.Model)
		assert.Equal(s.T(), "Review skills: Go, MySQL", req.SystemPrompt())
		assert.Equal(s.T(), "Review my skills", req.Prompt())
		return domain.LLMResponse{Answer: "1. Group by category"}, nil
	}

	req, err := http.NewRequest(http.MethodPost, "/chat/suggestions",
		iox.NewJSONReader(web.SuggestionReq{Section: "skills", Content: "Go, MySQL"}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[test.Result[web.SuggestionResp]]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(s.T(), "1. Group by category", res.Suggestions)
	assert.Equal(s.T(), "skills", res.Section)
}

func (s *ChatSuite) TestSuggestionsFailed() {
	s.platform = func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		return domain.LLMResponse{}, errors.New("rate limited")
	}
	req, err := http.NewRequest(http.MethodPost, "/chat/suggestions",
		iox.NewJSONReader(web.SuggestionReq{Section: "skills", Content: "Go"}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[test.Result[any]]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusInternalServerError, recorder.Code)
	assert.Equal(s.T(), "Failed to generate suggestions", recorder.MustScan().Msg)
}
