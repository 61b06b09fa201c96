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

package openai

import (
	"context"
	"errors"
	"math"

	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultBaseURL Groq 提供的是 OpenAI 兼容的接口
const DefaultBaseURL = "https://api.groq.com/openai/v1/"

var ErrEmptyChoices = errors.New("大模型没有返回任何结果")

// Handler 所有兼容 OpenAI chat completions 协议的平台都可以用
type Handler struct {
	client *openai.Client
}

var _ handler.Handler = &Handler{}

func NewHandler(apikey, baseURL string) *Handler {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apikey),
	)
	return &Handler{
		client: client,
	}
}

func (h *Handler) Name() string {
	return "openai"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.client.Chat.Completions.New(ctx, h.buildParams(&req))
	if err != nil {
		return domain.LLMResponse{}, err
	}
	if len(completion.Choices) == 0 {
		return domain.LLMResponse{}, ErrEmptyChoices
	}
	tokens := completion.Usage.TotalTokens
	// 报价是 N/1k token，向上取整
	amt := math.Ceil(float64(tokens*req.Config.Price) / float64(1000))
	return domain.LLMResponse{
		Tokens: tokens,
		Amount: int64(amt),
		Answer: completion.Choices[0].Message.Content,
	}, nil
}

func (h *Handler) buildParams(req *domain.LLMRequest) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if sys := req.SystemPrompt(); sys != "" {
		msgs = append(msgs, textMessage(openai.ChatCompletionMessageParamRoleSystem, sys))
	}
	msgs = append(msgs, textMessage(openai.ChatCompletionMessageParamRoleUser, req.Prompt()))
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(msgs),
		Model:    openai.F(req.Config.Model),
	}
	if req.Config.MaxTokens > 0 {
		params.MaxTokens = openai.F(req.Config.MaxTokens)
	}
	if req.Config.Temperature > 0 {
		params.Temperature = openai.F(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		params.TopP = openai.F(req.Config.TopP)
	}
	return params
}

// textMessage content 必须是字符串，Groq 之类的兼容平台不接受 content part 数组
func textMessage(role openai.ChatCompletionMessageParamRole, content string) openai.ChatCompletionMessageParam {
	return openai.ChatCompletionMessageParam{
		Role:    openai.F(role),
		Content: openai.F[any](content),
	}
}
