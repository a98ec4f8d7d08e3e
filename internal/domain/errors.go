package domain

import "errors"

var (
	ErrNoSession         = errors.New("no session")
	ErrUnauthorized      = errors.New("session is invalid or expired")
	ErrForbidden         = errors.New("connected account lacks permission for this action")
	ErrRequestTimeout    = errors.New("request timed out")
	ErrCodeAlreadyUsed   = errors.New("authorization code already exchanged")
	ErrNoReplyGenerated  = errors.New("no reply generated")
	ErrDuplicateToolName = errors.New("duplicate tool name")
)
