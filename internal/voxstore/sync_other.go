//go:build !unix

package voxstore

func syncDir(string) error { return nil }
