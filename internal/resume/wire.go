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

package resume

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/resume-builder/internal/pkg/pdf"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/event"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/repository"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/service"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, converter pdf.Converter) (*Module, error) {
	wire.Build(
		InitResumeDAO,
		repository.NewResumeRepository,
		event.NewResumeEventProducer,
		service.NewService,
		service.NewRenderer,
		service.NewDocxWriter,
		service.NewExportService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitResumeDAO(db *egorm.Component) dao.ResumeDAO {
	InitTableOnce(db)
	return dao.NewGORMResumeDAO(db)
}
