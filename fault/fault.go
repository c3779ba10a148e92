// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrAssetAlreadyExists           = ExistsError("IoT asset already exists")
	ErrAssetNotFound                = NotFoundError("IoT asset does not exist")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrConfigurationFileNotFound    = NotFoundError("configuration file not found")
	ErrConfigurationNotTable        = InvalidError("configuration must return a table")
	ErrDatabaseIsNewer              = ProcessError("database version is newer than this program")
	ErrDatabaseIsInconsistent       = ProcessError("database version is inconsistent")
	ErrHashAlreadyExists            = ExistsError("hash already exists")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidIpAddress             = InvalidError("invalid IP address")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidPrivateKeyFile        = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile         = InvalidError("invalid public key file")
	ErrInvalidRecord                = RecordError("stored value is not a valid record")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrInvalidUTF8                  = InvalidError("field is not valid UTF-8")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingIdentifier            = InvalidError("identifier is required")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrQueueFull                    = ProcessError("queue full")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrTransactionAlreadyInUse      = ProcessError("transaction already in use")
	ErrTransactionNotInUse          = ProcessError("transaction not in use")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }

// IdentifiedError - an error instance together with the identifier
// (asset id, fingerprint, MAC address, hash or key) that caused it
type IdentifiedError struct {
	Err        error
	Identifier string
}

// Identify - attach an identifier to an error instance
func Identify(err error, identifier string) error {
	if nil == err {
		return nil
	}
	return &IdentifiedError{
		Err:        err,
		Identifier: identifier,
	}
}

func (e *IdentifiedError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Identifier)
}

func (e *IdentifiedError) Unwrap() error {
	return e.Err
}

// stable codes for reporting across a process boundary
const (
	CodeAlreadyExists = "ASSET_ALREADY_EXISTS"
	CodeNotFound      = "ASSET_NOT_FOUND"
	CodeDecodeFailed  = "ASSET_DECODE_FAILED"
	CodeInvalid       = "INVALID_ARGUMENT"
	CodeInternal      = "INTERNAL"
)

// Code - map an error to its stable code, empty string for nil
func Code(e error) string {
	switch {
	case nil == e:
		return ""
	case IsErrExists(e):
		return CodeAlreadyExists
	case IsErrNotFound(e):
		return CodeNotFound
	case IsErrRecord(e):
		return CodeDecodeFailed
	case IsErrInvalid(e):
		return CodeInvalid
	default:
		return CodeInternal
	}
}

// CodedError - an error prefixed with its stable code
type CodedError struct {
	Code string
	Err  error
}

// Coded - wrap an error for return across a process boundary
func Coded(err error) error {
	if nil == err {
		return nil
	}
	var c *CodedError
	if errors.As(err, &c) {
		return err
	}
	return &CodedError{
		Code: Code(err),
		Err:  err,
	}
}

func (e *CodedError) Error() string {
	return e.Code + ": " + e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}
