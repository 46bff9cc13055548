// Package mail sends plain-text email. SMTP delivers for real; Log writes the
// message to the application log for local runs.
package mail
