// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog is where console output goes. Until a console is attached
// everything ends up in the standard logger.
package conlog

import (
	"log"
)

var p func(string, ...interface{}) = log.Printf

// SetPrintf redirects the output, nil restores the standard logger.
func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = log.Printf
	}
	p = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}
