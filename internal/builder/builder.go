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
	"errors"
	"fmt"
	"sync"

	"github.com/ecodeclub/resume-builder/internal/resume"
)

var (
	ErrSaveInFlight      = errors.New("上一次保存还没有结束")
	ErrNotAtTemplateStep = errors.New("只有在选择模板这一步才能确认")
)

type Step int

const (
	StepPersonalInfo Step = iota
	StepExperience
	StepEducation
	StepSkills
	StepProjects
	StepTemplateSelection
)

var stepNames = [...]string{
	"Personal Info", "Experience", "Education", "Skills", "Projects", "Template",
}

func (s Step) Valid() bool {
	return s >= StepPersonalInfo && s <= StepTemplateSelection
}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// Steps 所有步骤，按照顺序
func Steps() []Step {
	return []Step{StepPersonalInfo, StepExperience, StepEducation,
		StepSkills, StepProjects, StepTemplateSelection}
}

// Store 向导只关心这三个操作，可以是远程的 HTTP 接口，也可以直接是 resume.Service
//
//go:generate mockgen -source=./builder.go -destination=./mocks/store.mock.go -package=buildermocks -typed=true Store
type Store interface {
	Get(ctx context.Context, id int64) (resume.Resume, error)
	Create(ctx context.Context, r resume.Resume) (resume.Resume, error)
	Update(ctx context.Context, id int64, r resume.Resume) (resume.Resume, error)
}

// State 向导的全部状态，值类型，每次变更都产生新的 State
type State struct {
	Step  Step
	Draft resume.Resume
	// Dirty 草稿有没有保存过的修改
	Dirty bool
	// Saving 保存请求进行中，这个时候不允许再次保存
	Saving bool
	// Preview 确认之后进入只读的预览
	Preview bool
	// LastErr 最近一次保存失败的原因
	LastErr error
}

func NewState() State {
	return State{
		Step:  StepPersonalInfo,
		Draft: resume.NewDraft(),
	}
}

// Wizard 持有一份 State，保存请求进行期间可以继续编辑
type Wizard struct {
	mu    sync.Mutex
	store Store
	state State
	// rev 每次修改草稿加一，用来判断保存期间有没有新的修改
	rev int64
}

func NewWizard(store Store) *Wizard {
	return &Wizard{
		store: store,
		state: NewState(),
	}
}

// Load 编辑模式，只拉一次。失败的时候保留默认草稿
func (w *Wizard) Load(ctx context.Context, id int64) error {
	r, err := w.store.Get(ctx, id)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state.LastErr = err
		return err
	}
	r.FillDefaults()
	w.state.Draft = r
	w.state.Dirty = false
	w.rev++
	return nil
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	res := w.state
	res.Draft = res.Draft.Clone()
	return res
}

// Dispatch 应用一个动作，返回新的状态
func (w *Wizard) Dispatch(a Action) State {
	w.mu.Lock()
	defer w.mu.Unlock()
	next, edited := reduce(w.state, a)
	if edited {
		w.rev++
	}
	w.state = next
	res := w.state
	res.Draft = res.Draft.Clone()
	return res
}

// Save 没有 id 就创建，有 id 就更新，任何一步都可以保存。
// 失败的时候草稿和步骤都不变
func (w *Wizard) Save(ctx context.Context) (State, error) {
	w.mu.Lock()
	if w.state.Saving {
		w.mu.Unlock()
		return w.State(), ErrSaveInFlight
	}
	w.state.Saving = true
	draft := w.state.Draft.Clone()
	rev := w.rev
	w.mu.Unlock()

	var (
		saved resume.Resume
		err   error
	)
	if draft.Id == 0 {
		saved, err = w.store.Create(ctx, draft)
	} else {
		saved, err = w.store.Update(ctx, draft.Id, draft)
	}

	w.mu.Lock()
	w.state.Saving = false
	if err != nil {
		w.state.LastErr = err
		w.mu.Unlock()
		return w.State(), err
	}
	w.state.LastErr = nil
	if rev == w.rev {
		saved.FillDefaults()
		w.state.Draft = saved
		w.state.Dirty = false
	} else {
		// 保存期间又改了草稿，只拿回 id 和时间戳，草稿继续是脏的
		w.state.Draft.Id = saved.Id
		w.state.Draft.Ctime = saved.Ctime
		w.state.Draft.Utime = saved.Utime
	}
	w.mu.Unlock()
	return w.State(), nil
}

// Confirm 选择模板之后确认，保存成功就进入预览
func (w *Wizard) Confirm(ctx context.Context) (State, error) {
	w.mu.Lock()
	step := w.state.Step
	w.mu.Unlock()
	if step != StepTemplateSelection {
		return w.State(), ErrNotAtTemplateStep
	}
	if _, err := w.Save(ctx); err != nil {
		return w.State(), err
	}
	w.mu.Lock()
	w.state.Preview = true
	w.mu.Unlock()
	return w.State(), nil
}
