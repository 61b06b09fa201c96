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

package event

import "strconv"

const ResumeTopic = "resume_events"

const (
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionDuplicate = "duplicate"
)

// ResumeEvent 简历发生变更，只带标识，消费者需要详情自己查
type ResumeEvent struct {
	Action string `json:"action"`
	Id     int64  `json:"id"`
	Uid    int64  `json:"uid"`
	// 复制的时候是源简历的 id
	SourceId int64 `json:"sourceId,omitempty"`
	Utime    int64 `json:"utime"`
}

// Key 同一个用户的事件进同一个分区，保证有序
func (e ResumeEvent) Key() string {
	return strconv.FormatInt(e.Uid, 10)
}
