// Package tui is the terminal host for the loading button. It renders the
// button into a grid of character cells and drives its animation from
// bubbletea tick messages.
package tui
