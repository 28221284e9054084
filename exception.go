// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package optional

// EmptyValueAccess is the panic payload used by Unwrap and Expect when
// called on an absent Optional. Message is empty for Unwrap and carries
// the caller's diagnostic for Expect.
type EmptyValueAccess struct {
	Message string
}

func (e EmptyValueAccess) Error() string {
	if e.Message == "" {
		return "optional: access of empty value"
	}
	return "optional: access of empty value: " + e.Message
}
