// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type EchoArgs struct {
	Value string `json:"value"`
}

type EchoReply struct {
	Value string `json:"value"`
}

type echoService struct{}

func (*echoService) Echo(_ *http.Request, args *EchoArgs, reply *EchoReply) error {
	reply.Value = args.Value
	return nil
}

type rpcResponse struct {
	Result *EchoReply `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
		value       string
		code        int
		result      string
		errContains string
	}{
		{
			name:        "echo",
			method:      http.MethodPost,
			contentType: "application/json",
			value:       "pong",
			code:        http.StatusOK,
			result:      "pong",
		},
		{
			name:        "charset parameter",
			method:      http.MethodPost,
			contentType: "application/json;charset=UTF-8",
			value:       "pong",
			code:        http.StatusOK,
			result:      "pong",
		},
		{
			name:        "get",
			method:      http.MethodGet,
			contentType: "application/json",
			code:        http.StatusMethodNotAllowed,
		},
		{
			name:        "unknown content type",
			method:      http.MethodPost,
			contentType: "text/plain",
			code:        http.StatusUnsupportedMediaType,
		},
		{
			name:        "body too large",
			method:      http.MethodPost,
			contentType: "application/json",
			value:       strings.Repeat("a", maxRequestBytes),
			code:        http.StatusOK,
			errContains: "request body too large",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			handler, err := NewHandler(&echoService{}, "test")
			require.NoError(err)

			body, err := json.Marshal(map[string]any{
				"jsonrpc": "2.0",
				"id":      1,
				"method":  "test.echo",
				"params":  EchoArgs{Value: tt.value},
			})
			require.NoError(err)
			req := httptest.NewRequest(tt.method, "/", bytes.NewReader(body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			require.Equal(tt.code, w.Code)
			if tt.code != http.StatusOK {
				return
			}

			var resp rpcResponse
			require.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.errContains != "" {
				require.NotNil(resp.Error)
				require.Contains(resp.Error.Message, tt.errContains)
				return
			}
			require.Nil(resp.Error)
			require.Equal(tt.result, resp.Result.Value)
		})
	}
}

func TestHandlerRejectsServiceWithoutMethods(t *testing.T) {
	_, err := NewHandler(&struct{}{}, "empty")
	require.Error(t, err)
}
