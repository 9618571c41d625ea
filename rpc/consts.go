// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

const (
	Name            = "cpamm"
	BaseURL         = "/ext"
	JSONRPCEndpoint = BaseURL + "/" + Name
)
