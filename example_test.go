// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package requestid_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"rivaas.dev/requestid"
	"rivaas.dev/requestid/middleware"
	"rivaas.dev/requestid/tracegen"
	"rivaas.dev/requestid/ulidgen"
)

func ExampleCounter() {
	gen := requestid.NewCounter()

	for range 3 {
		id, _ := gen.Generate(nil)
		fmt.Println(id)
	}
	// Output:
	// 0
	// 1
	// 2
}

func ExampleCounter_Clone() {
	gen := requestid.NewCounter(requestid.WithStart(100))
	clone := gen.Clone()

	a, _ := gen.Generate(nil)
	b, _ := clone.Generate(nil)
	fmt.Println(a, b)
	// Output: 100 101
}

func ExampleNew() {
	_, err := requestid.New("bad\nid")
	fmt.Println(err)
	// Output: requestid: invalid character '\n' at index 3 in "bad\nid"
}

func ExampleFirstOf() {
	// Use the trace ID when the request is traced, otherwise a ULID.
	gen := requestid.FirstOf(tracegen.New(), ulidgen.New())

	id, ok := gen.Generate(httptest.NewRequest(http.MethodGet, "/", nil))
	fmt.Println(ok, len(id.String()))
	// Output: true 26
}

func Example_middleware() {
	handler := middleware.New(
		middleware.WithGenerator(requestid.NewCounter()),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Println("handling", middleware.Get(r))
	}))

	for range 2 {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		fmt.Println("header", w.Header().Get(middleware.DefaultHeader))
	}
	// Output:
	// handling 0
	// header 0
	// handling 1
	// header 1
}
