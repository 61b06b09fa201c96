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

package errs

var (
	ResumeNotFound  = ErrorCode{Code: 419001, Msg: "Resume not found"}
	InvalidTitle    = ErrorCode{Code: 419002, Msg: "Resume title is required"}
	InvalidParam    = ErrorCode{Code: 419003, Msg: "Invalid parameter"}
	VersionConflict = ErrorCode{Code: 419004, Msg: "Resume was modified by another request"}

	SystemError = ErrorCode{Code: 519001, Msg: "Server error"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
