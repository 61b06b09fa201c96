package test

import (
	"encoding/json"
	"net/http/httptest"
)

// JSONResponseRecorder 把响应体直接反序列化为 T
type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() JSONResponseRecorder[T] {
	return JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

func (r JSONResponseRecorder[T]) Scan() (T, error) {
	var t T
	err := json.NewDecoder(r.Body).Decode(&t)
	return t, err
}

func (r JSONResponseRecorder[T]) MustScan() T {
	t, err := r.Scan()
	if err != nil {
		panic(err)
	}
	return t
}

// Result 和 ginx.Result 对应，Data 是具体的类型
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
