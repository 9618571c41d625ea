// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
)

// maxRequestBytes bounds a single JSON-RPC request body. The largest request
// carries one signed transaction, which is well under a kilobyte.
const maxRequestBytes = 1 << 20

// NewHandler serves the exported methods of [service] as JSON-RPC 2.0 calls
// named "[name].method" (lower camel case).
func NewHandler(service any, name string) (http.Handler, error) {
	s := rpc.NewServer()
	// Content type parameters are stripped before the codec lookup, so this
	// also matches "application/json; charset=UTF-8".
	s.RegisterCodec(json.NewCodec(), "application/json")
	if err := s.RegisterService(service, name); err != nil {
		return nil, fmt.Errorf("failed to register %s service: %w", name, err)
	}
	return http.MaxBytesHandler(s, maxRequestBytes), nil
}
