//go:build !console

package config

const buildPlatform = PlatformDesktop
