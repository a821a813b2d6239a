// SPDX-License-Identifier: GPL-2.0-or-later

package math

import "golang.org/x/exp/constraints"

func Clamp[K constraints.Ordered](min, val, max K) K {
	if min > val {
		return min
	} else if max < val {
		return max
	}
	return val
}

func Min[K constraints.Ordered](a, b K) K {
	if a < b {
		return a
	}
	return b
}

func Max[K constraints.Ordered](a, b K) K {
	if a > b {
		return a
	}
	return b
}

func Abs[K constraints.Signed | constraints.Float](a K) K {
	if a < 0 {
		return -a
	}
	return a
}
