// Package clock abstracts time.Now so use cases can be tested with a fixed time.
package clock
