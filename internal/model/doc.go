// Package model defines the data shared between the loading button and its
// hosts: the button state enum, the per-frame visual state, and the record of
// an external operation the host runs while the button animates.
package model
