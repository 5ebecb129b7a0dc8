package main

import "github.com/NethermindEth/starknet-pedersen/pkg/log"

// SetLoggerFactory replaces the constructor of the command logger and
// returns a function restoring the previous one.
func SetLoggerFactory(f func(log.LogLevel) (*log.Log, error)) (restore func()) {
	prev := newLogger
	newLogger = f
	return func() {
		newLogger = prev
	}
}
