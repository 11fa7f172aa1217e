// Package util provides logging helpers, file system locations and text
// layout functions shared by the other packages.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}
