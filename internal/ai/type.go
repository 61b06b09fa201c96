package ai

import (
	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/web"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type LLMService = llm.Service
type ChatReply = domain.ChatReply
type Suggestions = domain.Suggestions
type ChatService = service.ChatService
type ChatHandler = web.ChatHandler
