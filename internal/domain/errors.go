package domain

import "errors"

var (
	ErrUnknownMode        = errors.New("unknown game mode")
	ErrPromptPoolTooSmall = errors.New("prompt pool too small")
	ErrRecordNotFound     = errors.New("record not found")
)
