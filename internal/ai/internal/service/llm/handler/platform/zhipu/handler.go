package zhipu

import (
	"context"
	"errors"
	"math"

	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler"
	"github.com/yankeguo/zhipu"
)

var ErrEmptyChoices = errors.New("智谱没有返回任何结果")

type Handler struct {
	client *zhipu.Client
}

var _ handler.Handler = &Handler{}

func NewHandler(apikey string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	return &Handler{
		client: client,
	}, nil
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	// 这边它不会调用 next，因为它是最终的出口
	completion, err := h.buildReq(&req).Do(ctx)
	if err != nil {
		return domain.LLMResponse{}, err
	}
	if len(completion.Choices) == 0 {
		return domain.LLMResponse{}, ErrEmptyChoices
	}
	tokens := completion.Usage.TotalTokens
	amt := math.Ceil(float64(tokens*req.Config.Price) / float64(1000))
	return domain.LLMResponse{
		Tokens: tokens,
		Amount: int64(amt),
		Answer: completion.Choices[0].Message.Content,
	}, nil
}

func (h *Handler) buildReq(req *domain.LLMRequest) *zhipu.ChatCompletionService {
	chatReq := h.client.ChatCompletion(req.Config.Model)
	if sys := req.SystemPrompt(); sys != "" {
		chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: sys,
		})
	}
	chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
		Role:    zhipu.RoleUser,
		Content: req.Prompt(),
	})
	if req.Config.Temperature > 0 {
		chatReq = chatReq.SetTemperature(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		chatReq = chatReq.SetTopP(req.Config.TopP)
	}
	return chatReq
}
