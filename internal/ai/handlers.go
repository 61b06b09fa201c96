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

package ai

import (
	"fmt"

	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
)

const (
	ProviderOpenAI = "openai"
	ProviderZhipu  = "zhipu"
)

type LLMConfig struct {
	// Provider openai 或者 zhipu，默认是 openai（Groq 也走这个）
	Provider string `yaml:"provider"`
	OpenAI   struct {
		APIKey  string `yaml:"apikey"`
		BaseURL string `yaml:"baseURL"`
	} `yaml:"openai"`
	Zhipu struct {
		APIKey string `yaml:"apikey"`
	} `yaml:"zhipu"`
}

// InitPlatform platform 就是真正的出口
func InitPlatform() handler.Handler {
	var cfg LLMConfig
	err := econf.UnmarshalKey("llm", &cfg)
	if err != nil {
		panic(err)
	}
	h, err := NewPlatform(cfg)
	if err != nil {
		panic(err)
	}
	return h
}

func NewPlatform(cfg LLMConfig) (handler.Handler, error) {
	switch cfg.Provider {
	case "", ProviderOpenAI:
		return openai.NewHandler(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL), nil
	case ProviderZhipu:
		return zhipu.NewHandler(cfg.Zhipu.APIKey)
	default:
		return nil, fmt.Errorf("未知的大模型平台 %s", cfg.Provider)
	}
}

// InitCompositionHandler log -> cfg -> record -> platform
func InitCompositionHandler(common []handler.Builder, platform handler.Handler) handler.Handler {
	return handler.NewCompositionHandler(common, platform)
}

func InitCommonHandlers(log *log.HandlerBuilder,
	cfg *config.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	return []handler.Builder{log, cfg, record}
}
