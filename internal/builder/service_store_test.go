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

package builder

import (
	"context"
	"testing"

	"github.com/ecodeclub/resume-builder/internal/resume"
	resumemocks "github.com/ecodeclub/resume-builder/internal/resume/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServiceStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	const uid = int64(2051)
	svc := resumemocks.NewMockService(ctrl)
	draft := resume.NewDraft()
	draft.Title = "Backend"
	draft.Experience = []resume.Experience{{Company: "A"}}

	svc.EXPECT().Create(gomock.Any(), uid, draft).Return(resume.Resume{Id: 1, Title: "Backend"}, nil)
	svc.EXPECT().Get(gomock.Any(), uid, int64(1)).Return(resume.Resume{Id: 1, Title: "Backend"}, nil)
	svc.EXPECT().Update(gomock.Any(), uid, int64(1), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid, id int64, patch resume.Patch) (resume.Resume, error) {
			// 草稿整体提交，每个字段都要带上
			require.NotNil(t, patch.Title)
			require.NotNil(t, patch.Experience)
			require.NotNil(t, patch.IsPublic)
			assert.Equal(t, "Backend", *patch.Title)
			assert.Equal(t, "A", (*patch.Experience)[0].Company)
			assert.Equal(t, int64(0), patch.ExpectedUtime)
			return patch.Apply(resume.Resume{Id: id}), nil
		})

	store := NewServiceStore(svc, uid)
	created, err := store.Create(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Id)

	got, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Backend", got.Title)

	updated, err := store.Update(context.Background(), 1, draft)
	require.NoError(t, err)
	assert.Equal(t, "modern", updated.Template)
	assert.Equal(t, []resume.Experience{{Company: "A"}}, updated.Experience)
}
