package domain

import "errors"

var (
	// ErrEventFetch indicates that the event could not be retrieved from Conference Hall
	ErrEventFetch = errors.New("event fetch failed")

	// ErrInvalidPatch indicates that a patch file could not be read or applied
	ErrInvalidPatch = errors.New("invalid patch")

	// ErrInvalidAddon indicates that an add-on file could not be read
	ErrInvalidAddon = errors.New("invalid add-on")

	// ErrDownload indicates that a remote file could not be downloaded
	ErrDownload = errors.New("download failed")

	// ErrInvalidKey indicates that an entity key cannot be used as a file name
	ErrInvalidKey = errors.New("invalid key")
)
