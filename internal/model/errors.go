package model

import "errors"

var (
	// ErrConfiguration marks a missing or malformed startup setting.
	ErrConfiguration = errors.New("configuration error")
	// ErrRPC marks a transport failure or an error payload returned by the node.
	ErrRPC = errors.New("rpc error")
	// ErrFilesystem marks a failure to create or read an output file.
	ErrFilesystem = errors.New("filesystem error")
)
