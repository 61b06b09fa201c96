package llm

import (
	"context"
	"time"

	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler"
	"github.com/lithammer/shortuuid/v4"
)

// DefaultTimeout 单次调用大模型的超时时间
const DefaultTimeout = 30 * time.Second

//go:generate mockgen -source=./llm.go -destination=../../../mocks/llm.mock.go -package=aimocks -typed=true Service
type Service interface {
	Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)
}

type llmService struct {
	chain   handler.Handler
	timeout time.Duration
}

// NewLLMService root 是组合好的整条链路
func NewLLMService(root handler.Handler) Service {
	return &llmService{
		chain:   root,
		timeout: DefaultTimeout,
	}
}

func (s *llmService) Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	if req.Tid == "" {
		req.Tid = shortuuid.New()
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.chain.Handle(ctx, req)
}
