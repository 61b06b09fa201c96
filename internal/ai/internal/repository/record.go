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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/repository/dao"
)

//go:generate mockgen -source=./record.go -destination=./mocks/record.mock.go -package=repomocks -typed=true RecordRepository
type RecordRepository interface {
	Save(ctx context.Context, r domain.LLMRecord) (int64, error)
}

// recordRepository 每一次调用大模型的流水
type recordRepository struct {
	dao dao.LLMRecordDAO
}

func NewRecordRepository(d dao.LLMRecordDAO) RecordRepository {
	return &recordRepository{dao: d}
}

func (repo *recordRepository) Save(ctx context.Context, r domain.LLMRecord) (int64, error) {
	return repo.dao.Save(ctx, dao.LLMRecord{
		Id:     r.Id,
		Tid:    r.Tid,
		Uid:    r.Uid,
		Biz:    r.Biz,
		Tokens: r.Tokens,
		Amount: r.Amount,
		Input: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   r.Input,
		},
		Status:         r.Status.ToUint8(),
		PromptTemplate: sqlx.NewNullString(r.PromptTemplate),
		Answer:         sqlx.NewNullString(r.Answer),
	})
}
