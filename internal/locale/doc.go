// Package locale provides the user-visible strings shared by every host.
package locale
