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

//go:build wireinject

package startup

import (
	"github.com/ecodeclub/resume-builder/internal/ai"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/repository"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/record"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/web"
	testioc "github.com/ecodeclub/resume-builder/internal/test/ioc"
	"github.com/google/wire"
)

// InitModule platform 由测试传进来，不会真的调用大模型
func InitModule(platform handler.Handler) (*ai.Module, error) {
	wire.Build(
		testioc.InitDB,
		testioc.InitCache,
		dao.NewGORMConfigDAO,
		dao.NewGORMLLMRecordDAO,
		cache.NewConfigCache,
		repository.NewCachedConfigRepository,
		repository.NewRecordRepository,
		log.NewHandler,
		config.NewHandler,
		record.NewHandler,
		ai.InitCommonHandlers,
		ai.InitCompositionHandler,
		llm.NewLLMService,
		service.NewChatService,
		web.NewChatHandler,
		wire.Struct(new(ai.Module), "*"),
	)
	return new(ai.Module), nil
}
