// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strconv"

// Round returns v correctly rounded to the given number of decimal places.
// The decision is taken on the exact binary value, so 0.00705 (stored as
// 0.0070499999...) rounds down to 0.007 and exact ties go to even.
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
