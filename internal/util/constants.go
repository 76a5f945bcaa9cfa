package util

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)
