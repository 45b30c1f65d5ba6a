package constants

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)
