// Package slog provides logging decorators for xhsimport services.
package slog
