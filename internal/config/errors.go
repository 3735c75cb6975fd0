package config

import "errors"

var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")
	ErrInvalidSessionConfigs = errors.New("invalid session configs")
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configs")
)
