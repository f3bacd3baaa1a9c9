// Package config loads environment-driven settings (.env supported).
package config
