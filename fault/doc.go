// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Errors that concern a particular asset, hash or key are wrapped
// with Identify so that the caller sees the offending identifier
// while the class of the error is still detectable with IsErrXXX.
package fault
