package handler

import (
	"context"
	"errors"

	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
)

// ErrInputTooLong 输入加上上下文超过了 BizConfig.MaxInput
var ErrInputTooLong = errors.New("输入太长")

//go:generate mockgen -source=./handler.go -destination=./mocks/handler.mock.go -package=hdlmocks -typed=true Handler
type Handler interface {
	Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)
}

type HandleFunc func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)

func (f HandleFunc) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return f(ctx, req)
}

// Builder 中间件，包装下一个 Handler
type Builder interface {
	Next(next Handler) Handler
}

type BuilderFunc func(next Handler) Handler

func (f BuilderFunc) Next(next Handler) Handler {
	return f(next)
}

// CompositionHandler 请求依次经过 builders，最后到达 platform
type CompositionHandler struct {
	chain Handler
}

func NewCompositionHandler(builders []Builder, platform Handler) *CompositionHandler {
	return &CompositionHandler{chain: Chain(platform, builders...)}
}

func (c *CompositionHandler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return c.chain.Handle(ctx, req)
}

// Chain builders[0] 在最外层，nil 跳过
func Chain(platform Handler, builders ...Builder) Handler {
	res := platform
	for i := len(builders) - 1; i >= 0; i-- {
		if builders[i] == nil {
			continue
		}
		res = builders[i].Next(res)
	}
	return res
}
