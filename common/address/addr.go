// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"encoding/json"
)

// Addr is a validated address. The zero value is the empty address and
// is never produced by ParseAddr.
type Addr struct {
	s string
}

// ParseAddr validates a base58check address.
func ParseAddr(s string) (Addr, error) {
	if err := CheckAddress(s); err != nil {
		return Addr{}, err
	}
	return Addr{s: s}, nil
}

// MustParseAddr panics on an invalid address. For constants and tests.
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}

// PubKeyToAddr derives the address of a public key.
func PubKeyToAddr(pub []byte) Addr {
	return Addr{s: PubKeyToAddress(pub).String()}
}

// ExecAddr is the custody address of an executor.
func ExecAddr(name string) Addr {
	return Addr{s: ExecAddress(name)}
}

func (a Addr) String() string {
	return a.s
}

// IsZero reports whether a is the empty address.
func (a Addr) IsZero() bool {
	return a.s == ""
}

// MarshalJSON encodes the address as a string.
func (a Addr) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.s)
}

// UnmarshalJSON validates the decoded string.
func (a *Addr) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*a = Addr{}
		return nil
	}
	v, err := ParseAddr(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
