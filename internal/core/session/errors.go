package session

import "errors"

var (
	// ErrInvalidName は表示名が空の場合に返却されます。
	ErrInvalidName = errors.New("session: invalid name")
	// ErrInvalidRole は権限が不正な場合に返却されます。
	ErrInvalidRole = errors.New("session: invalid role")
	// ErrNotAuthenticated はログイン前の操作で返却されます。
	ErrNotAuthenticated = errors.New("session: not authenticated")
)
