// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrUnauthorized       = errors.New("ErrUnauthorized")
	ErrRoundInProgress    = errors.New("ErrRoundInProgress")
	ErrNoActiveRound      = errors.New("ErrNoActiveRound")
	ErrAlreadyGuessed     = errors.New("ErrAlreadyGuessed")
	ErrNotReadyToSettle   = errors.New("ErrNotReadyToSettle")
	ErrNothingToReset     = errors.New("ErrNothingToReset")
	ErrZeroStake          = errors.New("ErrZeroStake")
	ErrOwnerCannotPlay    = errors.New("ErrOwnerCannotPlay")
	ErrNotInitialized     = errors.New("ErrNotInitialized")
	ErrAlreadyInitialized = errors.New("ErrAlreadyInitialized")
	ErrCorruptState       = errors.New("ErrCorruptState")
	ErrNumberRange        = errors.New("ErrNumberRange")
	ErrBonusTooLarge      = errors.New("ErrBonusTooLarge")
)
